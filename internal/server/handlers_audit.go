package server

import (
	"net/http"
	"strconv"

	"github.com/alexr/huntboard/internal/audit"
)

// AuditLogResponse lists retained audit log entries.
type AuditLogResponse struct {
	Entries []audit.Entry `json:"entries"`
	Count   int           `json:"count"`
}

// handleAuditLog returns recent audit log entries, optionally filtered by
// level.
func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		s.errorResponse(w, http.StatusBadRequest, "Invalid level: "+level)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries := s.auditor.Log().Entries(level, limit)
	s.jsonResponse(w, http.StatusOK, AuditLogResponse{Entries: entries, Count: len(entries)})
}
