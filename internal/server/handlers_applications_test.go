package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/server/middleware"
	"github.com/alexr/huntboard/internal/types"
)

func patchRequest(userID uuid.UUID, appID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/applications/"+appID, strings.NewReader(body))
	req.SetPathValue("id", appID)
	if userID != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

// appFixture returns a stub store holding one application plus a pointer to
// the record the store received on update.
func appFixture(app *types.Application) (*stubStore, *audit.Record) {
	received := &audit.Record{}
	store := &stubStore{
		getApplication: func(_ context.Context, id uuid.UUID) (*types.Application, error) {
			if id == app.ID {
				return app, nil
			}
			return nil, nil
		},
		updateApplication: func(_ context.Context, _ uuid.UUID, record audit.Record) error {
			*received = record
			return nil
		},
	}
	return store, received
}

func TestHandleUpdateApplication_ForwardStage(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, received := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), `{"stage":"INTERVIEW"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[UpdateApplicationResponse](t, rec)
	assert.Empty(t, resp.Warning)
	// Absent fields are dropped by the sanitizer; only stage reaches the store.
	assert.Equal(t, audit.Record{"stage": "INTERVIEW"}, *received)
}

func TestHandleUpdateApplication_BackwardsStageWarns(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageInterview}
	store, _ := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), `{"stage":"APPLIED"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[UpdateApplicationResponse](t, rec)
	assert.Equal(t, "Moving backwards from INTERVIEW to APPLIED - this is unusual", resp.Warning)
}

func TestHandleUpdateApplication_UnknownStageRejected(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, received := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), `{"stage":"GHOSTED"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, *received, "rejected update must not reach the store")
}

func TestHandleUpdateApplication_NullClearsField(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, received := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	body := `{"notes":"  spoke with recruiter  ","applied_at":null}`
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), body))

	require.Equal(t, http.StatusOK, rec.Code)
	// Strings arrive trimmed, explicit null survives as nil, absent fields
	// are gone entirely.
	assert.Equal(t, audit.Record{
		"notes":      "spoke with recruiter",
		"applied_at": nil,
	}, *received)
}

func TestHandleUpdateApplication_TimestampParsed(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, received := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	body := `{"next_follow_up_at":"2026-09-15T09:00:00Z"}`
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), body))

	require.Equal(t, http.StatusOK, rec.Code)
	want := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, audit.Record{"next_follow_up_at": want}, *received)
}

func TestHandleUpdateApplication_BadTimestamp(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, _ := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), `{"applied_at":"next tuesday"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateApplication_UnknownField(t *testing.T) {
	userID := uuid.New()
	app := &types.Application{ID: uuid.New(), UserID: userID, JobID: uuid.New(), Stage: types.StageApplied}
	store, _ := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(userID, app.ID.String(), `{"salary":90000}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["error"], "Unknown field: salary")
}

func TestHandleUpdateApplication_OtherUsersApplication(t *testing.T) {
	app := &types.Application{ID: uuid.New(), UserID: uuid.New(), JobID: uuid.New(), Stage: types.StageApplied}
	store, _ := appFixture(app)
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(uuid.New(), app.ID.String(), `{"notes":"x"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleUpdateApplication_InvalidID(t *testing.T) {
	s := newTestServer(&stubStore{})

	rec := httptest.NewRecorder()
	s.handleUpdateApplication(rec, patchRequest(uuid.New(), "not-a-uuid", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
