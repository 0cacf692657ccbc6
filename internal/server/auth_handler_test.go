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

	"github.com/alexr/huntboard/internal/db"
	"github.com/alexr/huntboard/internal/types"
)

func registerRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
}

func TestHandleRegister_Success(t *testing.T) {
	var storedHash string
	store := &stubStore{
		getUserByEmail: func(_ context.Context, email string) (*db.User, error) {
			return nil, nil
		},
		createUser: func(_ context.Context, name, email, passwordHash string) (*db.User, error) {
			storedHash = passwordHash
			return &db.User{
				ID:           uuid.New(),
				Name:         name,
				Email:        email,
				PasswordHash: passwordHash,
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			}, nil
		},
	}
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleRegister(rec, registerRequest(`{"name":"Alex","email":"Alex@Example.com","password":"supersecret"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeJSON[types.AuthResponse](t, rec)
	assert.Equal(t, "alex@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, s.hasher.Verify("supersecret", storedHash))

	claims, err := s.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.GetUserID())
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	existing := &db.User{ID: uuid.New(), Email: "alex@example.com"}
	store := &stubStore{
		getUserByEmail: func(_ context.Context, email string) (*db.User, error) {
			return existing, nil
		},
	}
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleRegister(rec, registerRequest(`{"name":"Alex","email":"alex@example.com","password":"supersecret"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["error"], "already registered")
}

func TestHandleRegister_InvalidRequest(t *testing.T) {
	s := newTestServer(&stubStore{})

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"name":`},
		{name: "short password", body: `{"name":"Alex","email":"alex@example.com","password":"short"}`},
		{name: "bad email", body: `{"name":"Alex","email":"nope","password":"supersecret"}`},
		{name: "missing name", body: `{"email":"alex@example.com","password":"supersecret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.handleRegister(rec, registerRequest(tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleLogin_Success(t *testing.T) {
	s := newTestServer(nil)
	hash, err := s.hasher.Hash("supersecret")
	require.NoError(t, err)

	user := &db.User{ID: uuid.New(), Name: "Alex", Email: "alex@example.com", PasswordHash: hash}
	s.store = &stubStore{
		getUserByEmail: func(_ context.Context, email string) (*db.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ALEX@example.com","password":"supersecret"}`))
	s.handleLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[types.AuthResponse](t, rec)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	s := newTestServer(nil)
	hash, err := s.hasher.Hash("supersecret")
	require.NoError(t, err)

	user := &db.User{ID: uuid.New(), Email: "alex@example.com", PasswordHash: hash}
	s.store = &stubStore{
		getUserByEmail: func(_ context.Context, _ string) (*db.User, error) {
			return user, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"alex@example.com","password":"wrongwrong"}`))
	s.handleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleLogin_UnknownEmail(t *testing.T) {
	s := newTestServer(&stubStore{
		getUserByEmail: func(_ context.Context, _ string) (*db.User, error) {
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ghost@example.com","password":"supersecret"}`))
	s.handleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
