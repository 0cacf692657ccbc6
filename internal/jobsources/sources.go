// Package jobsources fetches job postings from external job board APIs and
// normalizes them into the shared job model.
package jobsources

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alexr/huntboard/internal/types"
)

// Posting is a job fetched from an external source, normalized for import.
type Posting struct {
	Source      string         `json:"source"`
	ExternalID  string         `json:"external_id"`
	SourceURL   string         `json:"source_url"`
	Title       string         `json:"title"`
	Company     string         `json:"company"`
	Location    string         `json:"location,omitempty"`
	WorkMode    types.WorkMode `json:"work_mode,omitempty"`
	JobType     string         `json:"job_type,omitempty"`
	Description string         `json:"description,omitempty"`
}

// Source fetches postings matching a search term.
type Source interface {
	Name() string
	Fetch(ctx context.Context, search string) ([]Posting, error)
}

// FetchAll queries every source concurrently and merges the results,
// ordered by source name then external ID so output is stable. One failing
// source fails the whole fetch.
func FetchAll(ctx context.Context, sources []Source, search string) ([]Posting, error) {
	var mu sync.Mutex
	var all []Posting

	g, ctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		g.Go(func() error {
			postings, err := src.Fetch(ctx, search)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			mu.Lock()
			all = append(all, postings...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Source != all[j].Source {
			return all[i].Source < all[j].Source
		}
		return all[i].ExternalID < all[j].ExternalID
	})
	return all, nil
}
