package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexr/huntboard/internal/server/middleware"
	"github.com/alexr/huntboard/internal/types"
)

func rankRequest(userID uuid.UUID, query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/contacts/rank"+query, nil)
	if userID != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandleRankContacts_SortsByRelevance(t *testing.T) {
	userID := uuid.New()
	five := 5
	contacts := []types.Contact{
		{Name: "Distant", Company: "Other Corp", Strength: nil},
		{Name: "Insider", Company: "Acme", Strength: &five, HiringSignal: true},
		{Name: "Adjacent", Company: "Acme Labs", Strength: &five},
	}
	store := &stubStore{
		listContacts: func(_ context.Context, id uuid.UUID) ([]types.Contact, error) {
			require.Equal(t, userID, id)
			return contacts, nil
		},
	}
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleRankContacts(rec, rankRequest(userID, "?company=Acme"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[RankContactsResponse](t, rec)
	assert.Equal(t, "Acme", resp.Company)
	require.Len(t, resp.Contacts, 3)
	assert.Equal(t, "Insider", resp.Contacts[0].Contact.Name)
	assert.Equal(t, "Adjacent", resp.Contacts[1].Contact.Name)
	assert.Equal(t, "Distant", resp.Contacts[2].Contact.Name)
	assert.GreaterOrEqual(t, resp.Contacts[0].Relevance, resp.Contacts[1].Relevance)
	assert.GreaterOrEqual(t, resp.Contacts[1].Relevance, resp.Contacts[2].Relevance)
}

func TestHandleRankContacts_MissingCompany(t *testing.T) {
	s := newTestServer(&stubStore{})

	rec := httptest.NewRecorder()
	s.handleRankContacts(rec, rankRequest(uuid.New(), ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRankContacts_Unauthorized(t *testing.T) {
	s := newTestServer(&stubStore{})

	rec := httptest.NewRecorder()
	s.handleRankContacts(rec, rankRequest(uuid.Nil, "?company=Acme"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleRankContacts_EmptyNetwork(t *testing.T) {
	store := &stubStore{
		listContacts: func(_ context.Context, _ uuid.UUID) ([]types.Contact, error) {
			return nil, nil
		},
	}
	s := newTestServer(store)

	rec := httptest.NewRecorder()
	s.handleRankContacts(rec, rankRequest(uuid.New(), "?company=Acme"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[RankContactsResponse](t, rec)
	assert.Empty(t, resp.Contacts)
}
