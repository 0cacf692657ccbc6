package server

import (
	"net/http"
	"sort"

	"github.com/alexr/huntboard/internal/network"
	"github.com/alexr/huntboard/internal/server/middleware"
	"github.com/alexr/huntboard/internal/types"
)

// RankedContact pairs a contact with its relevance score for a target
// company.
type RankedContact struct {
	Contact   types.Contact `json:"contact"`
	Relevance int           `json:"relevance"`
}

// RankContactsResponse lists a user's contacts ranked by relevance.
type RankContactsResponse struct {
	Company  string          `json:"company"`
	Contacts []RankedContact `json:"contacts"`
}

// handleRankContacts ranks the authenticated user's network contacts by
// relevance to the target company.
func (s *Server) handleRankContacts(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	company := r.URL.Query().Get("company")
	if company == "" {
		s.errorResponse(w, http.StatusBadRequest, "company query parameter is required")
		return
	}

	contacts, err := s.store.ListContacts(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranked := make([]RankedContact, 0, len(contacts))
	for _, c := range contacts {
		ranked = append(ranked, RankedContact{
			Contact:   c,
			Relevance: network.ScoreContactForOpportunity(c, company),
		})
	}
	// Highest relevance first; ties keep the store's name ordering.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	s.jsonResponse(w, http.StatusOK, RankContactsResponse{Company: company, Contacts: ranked})
}
