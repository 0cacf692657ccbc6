package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/server/middleware"
	"github.com/alexr/huntboard/internal/types"
)

// applicationFields are the application fields a PATCH may touch. Fields
// absent from the request body are marked Undefined so the sanitizer drops
// them; explicit JSON nulls survive as nil and clear the column.
var applicationFields = []string{
	"stage",
	"applied_at",
	"next_follow_up_at",
	"contact_name",
	"contact_email",
	"notes",
}

// timestampFields are the fields parsed as RFC 3339 timestamps.
var timestampFields = map[string]bool{
	"applied_at":        true,
	"next_follow_up_at": true,
}

// UpdateApplicationResponse returns the updated application plus any stage
// transition warning. A warning never blocks the update; the caller decides
// how to surface it.
type UpdateApplicationResponse struct {
	Application *types.Application `json:"application"`
	Warning     string             `json:"warning,omitempty"`
}

// handleUpdateApplication applies a partial update to an application. A
// stage change is validated first and rejected outright only when a stage
// is outside the pipeline enumeration; unusual transitions go through with
// a warning.
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	ctx := r.Context()
	app, err := s.store.GetApplication(ctx, appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if app == nil || app.UserID != userID {
		notFound := &ErrNotFound{Kind: "application", ID: appID}
		s.errorResponse(w, HTTPStatus(notFound), "Application not found")
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	for key := range body {
		if !isApplicationField(key) {
			s.errorResponse(w, http.StatusBadRequest, "Unknown field: "+key)
			return
		}
	}

	record, err := buildUpdateRecord(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var warning string
	if rawStage, present := body["stage"]; present {
		stageStr, ok := rawStage.(string)
		if !ok {
			s.errorResponse(w, http.StatusBadRequest, "stage must be a string")
			return
		}
		to := types.Stage(stageStr)
		outcome := s.auditor.AuditStageChange(appID.String(), app.Stage, to)
		if !outcome.Passed {
			transitionErr := &ErrInvalidStageTransition{From: app.Stage, To: to}
			s.errorResponse(w, HTTPStatus(transitionErr), transitionErr.Error())
			return
		}
		if len(outcome.Warnings) > 0 {
			warning = outcome.Warnings[0]
		}
	}

	sanitized := audit.SanitizeForDatabase(record)
	if err := s.store.UpdateApplication(ctx, appID, sanitized); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	updated, err := s.store.GetApplication(ctx, appID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, UpdateApplicationResponse{
		Application: updated,
		Warning:     warning,
	})
}

// buildUpdateRecord maps the decoded request body onto an audit.Record
// covering every patchable field: absent fields become Undefined, JSON
// nulls stay nil, and timestamp strings are parsed.
func buildUpdateRecord(body map[string]any) (audit.Record, error) {
	record := make(audit.Record, len(applicationFields))
	for _, field := range applicationFields {
		value, present := body[field]
		if !present {
			record[field] = audit.Undefined
			continue
		}
		if value == nil {
			record[field] = nil
			continue
		}
		if timestampFields[field] {
			raw, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be an RFC 3339 timestamp or null", field)
			}
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("%s must be an RFC 3339 timestamp or null", field)
			}
			record[field] = ts
			continue
		}
		record[field] = value
	}
	return record, nil
}

func isApplicationField(name string) bool {
	for _, field := range applicationFields {
		if field == name {
			return true
		}
	}
	return false
}
