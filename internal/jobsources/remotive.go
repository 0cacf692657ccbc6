package jobsources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/alexr/huntboard/internal/types"
)

const remotiveAPIURL = "https://remotive.com/api/remote-jobs"

// Remotive fetches remote jobs from the Remotive public API. All Remotive
// postings are remote by definition.
type Remotive struct {
	client  *http.Client
	baseURL string
}

// NewRemotive creates a Remotive source with a sensible request timeout.
func NewRemotive() *Remotive {
	return &Remotive{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: remotiveAPIURL,
	}
}

// NewRemotiveWithBaseURL creates a Remotive source against a custom API
// endpoint. Used by tests.
func NewRemotiveWithBaseURL(baseURL string, client *http.Client) *Remotive {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Remotive{client: client, baseURL: baseURL}
}

// Name implements Source.
func (r *Remotive) Name() string { return "remotive" }

type remotiveJob struct {
	ID                        int    `json:"id"`
	URL                       string `json:"url"`
	Title                     string `json:"title"`
	CompanyName               string `json:"company_name"`
	JobType                   string `json:"job_type"`
	CandidateRequiredLocation string `json:"candidate_required_location"`
	Description               string `json:"description"`
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// Fetch implements Source.
func (r *Remotive) Fetch(ctx context.Context, search string) ([]Posting, error) {
	endpoint, err := url.Parse(r.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remotive base URL: %w", err)
	}
	if search != "" {
		q := endpoint.Query()
		q.Set("search", search)
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build remotive request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remotive fetch failed: status %d", resp.StatusCode)
	}

	var payload remotiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode remotive response: %w", err)
	}

	postings := make([]Posting, 0, len(payload.Jobs))
	for _, j := range payload.Jobs {
		location := j.CandidateRequiredLocation
		if location == "" {
			location = "Remote"
		}
		postings = append(postings, Posting{
			Source:      r.Name(),
			ExternalID:  strconv.Itoa(j.ID),
			SourceURL:   j.URL,
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    location,
			WorkMode:    types.WorkModeRemote,
			JobType:     j.JobType,
			Description: j.Description,
		})
	}
	return postings, nil
}
