package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/alexr/huntboard/internal/matching"
	"github.com/alexr/huntboard/internal/server/middleware"
)

// MatchResponse is the fit-score payload for a job.
type MatchResponse struct {
	JobID uuid.UUID            `json:"job_id"`
	Match matching.MatchResult `json:"match"`
}

// handleJobMatch computes the authenticated user's fit score for one of
// their tracked jobs and stores it on the job row.
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	ctx := r.Context()
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil || job.UserID != userID {
		notFound := &ErrNotFound{Kind: "job", ID: jobID}
		s.errorResponse(w, HTTPStatus(notFound), "Job not found")
		return
	}

	// Profile may be nil; scoring proceeds on skills alone.
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	skills, err := s.store.ListSkills(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := matching.ComputeMatchScore(profile, skills, job)

	if err := s.store.SetJobMatchScore(ctx, job.ID, result.Score); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{JobID: job.ID, Match: result})
}
