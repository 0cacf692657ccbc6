package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/config"
	"github.com/alexr/huntboard/internal/db"
	"github.com/alexr/huntboard/internal/types"
)

// stubStore implements Store through per-method function fields so each test
// wires only what its handler touches.
type stubStore struct {
	createUser        func(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	getUserByEmail    func(ctx context.Context, email string) (*db.User, error)
	getProfile        func(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	listSkills        func(ctx context.Context, userID uuid.UUID) ([]types.Skill, error)
	getJob            func(ctx context.Context, id uuid.UUID) (*types.Job, error)
	setJobMatchScore  func(ctx context.Context, jobID uuid.UUID, score int) error
	listContacts      func(ctx context.Context, userID uuid.UUID) ([]types.Contact, error)
	getApplication    func(ctx context.Context, id uuid.UUID) (*types.Application, error)
	updateApplication func(ctx context.Context, id uuid.UUID, record audit.Record) error
}

func (s *stubStore) CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error) {
	return s.createUser(ctx, name, email, passwordHash)
}

func (s *stubStore) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	return s.getUserByEmail(ctx, email)
}

func (s *stubStore) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	return s.getProfile(ctx, userID)
}

func (s *stubStore) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	return s.listSkills(ctx, userID)
}

func (s *stubStore) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	return s.getJob(ctx, id)
}

func (s *stubStore) SetJobMatchScore(ctx context.Context, jobID uuid.UUID, score int) error {
	return s.setJobMatchScore(ctx, jobID, score)
}

func (s *stubStore) ListContacts(ctx context.Context, userID uuid.UUID) ([]types.Contact, error) {
	return s.listContacts(ctx, userID)
}

func (s *stubStore) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	return s.getApplication(ctx, id)
}

func (s *stubStore) UpdateApplication(ctx context.Context, id uuid.UUID, record audit.Record) error {
	return s.updateApplication(ctx, id, record)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:               8080,
		DatabaseURL:        "postgres://localhost/huntboard_test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		BcryptCost:         10,
	}
}

// newTestServer builds a Server without the outer middleware stack so tests
// can call handlers directly.
func newTestServer(store Store) *Server {
	cfg := testConfig()
	return &Server{
		store:      store,
		auditor:    audit.NewAuditor(audit.NewLogger(nil)),
		jwtService: NewJWTService(cfg),
		hasher:     config.NewPasswordHasher(cfg),
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&stubStore{})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}
