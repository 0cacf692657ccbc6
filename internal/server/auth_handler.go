package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/db"
	"github.com/alexr/huntboard/internal/types"
)

// handleRegister creates a new user account and returns a bearer token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	ctx := r.Context()
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil {
		err := &ErrEmailAlreadyExists{Email: req.Email}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.auditor.AuditUser(audit.Record{
		"id":    user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
	})

	s.respondWithToken(w, http.StatusCreated, user)
}

// handleLogin verifies credentials and returns a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		authErr := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(authErr), authErr.Error())
		return
	}

	s.respondWithToken(w, http.StatusOK, user)
}

func (s *Server) respondWithToken(w http.ResponseWriter, status int, user *db.User) {
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	s.jsonResponse(w, status, types.AuthResponse{
		User: &types.User{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
		Token: token,
	})
}
