// Package types provides type definitions for the domain records shared
// across the huntboard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// WorkMode is the closed set of work arrangements a job posting can declare.
type WorkMode string

// Work modes.
const (
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeHybrid WorkMode = "HYBRID"
	WorkModeOnsite WorkMode = "ONSITE"
)

// Valid reports whether the work mode is a member of the closed set.
func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeRemote, WorkModeHybrid, WorkModeOnsite:
		return true
	}
	return false
}

// Profile holds a job-seeker's search preferences. Both fields are
// comma-separated lists and may be empty.
type Profile struct {
	UserID           uuid.UUID `json:"user_id"`
	DesiredTitles    string    `json:"desired_titles,omitempty"`
	DesiredWorkModes string    `json:"desired_work_modes,omitempty"`
}

// Skill is a single named skill on a user's profile. Level and years are
// stored for display; scoring consumes only the name.
type Skill struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Level  string    `json:"level,omitempty"`
	Years  int       `json:"years,omitempty"`
}

// Job is a tracked job posting. WorkMode is empty when the posting does not
// declare one.
type Job struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	Location     string    `json:"location,omitempty"`
	WorkMode     WorkMode  `json:"work_mode,omitempty"`
	Description  string    `json:"description,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	URL          string    `json:"url,omitempty"`
	MatchScore   *int      `json:"match_score,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Contact is a person in the user's network. Strength is a 1-5 relationship
// rating; nil means unknown and scoring falls back to the default of 3.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Title        string    `json:"title,omitempty"`
	Email        string    `json:"email,omitempty"`
	Strength     *int      `json:"strength,omitempty"`
	Tags         string    `json:"tags,omitempty"`
	HiringSignal bool      `json:"hiring_signal,omitempty"`
}

// Application tracks progress against one job posting.
type Application struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	JobID          uuid.UUID  `json:"job_id"`
	Stage          Stage      `json:"stage"`
	AppliedAt      *time.Time `json:"applied_at,omitempty"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at,omitempty"`
	ContactName    string     `json:"contact_name,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
