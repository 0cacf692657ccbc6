package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alexr/huntboard/internal/types"
)

// GetJob fetches a job posting by ID. Returns (nil, nil) when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	var j types.Job
	var workMode *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, COALESCE(company, ''), COALESCE(location, ''),
		        work_mode, COALESCE(description, ''), COALESCE(requirements, ''),
		        COALESCE(url, ''), match_score, created_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location,
		&workMode, &j.Description, &j.Requirements, &j.URL, &j.MatchScore, &j.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	if workMode != nil {
		j.WorkMode = types.WorkMode(*workMode)
	}
	return &j, nil
}

// ListJobs returns a user's tracked jobs, newest first.
func (db *DB) ListJobs(ctx context.Context, userID uuid.UUID) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(company, ''), COALESCE(location, ''),
		        work_mode, COALESCE(description, ''), COALESCE(requirements, ''),
		        COALESCE(url, ''), match_score, created_at
		 FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var j types.Job
		var workMode *string
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location,
			&workMode, &j.Description, &j.Requirements, &j.URL, &j.MatchScore, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if workMode != nil {
			j.WorkMode = types.WorkMode(*workMode)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob inserts a job posting and returns its ID. An empty work mode is
// stored as NULL.
func (db *DB) CreateJob(ctx context.Context, job *types.Job) (uuid.UUID, error) {
	var workMode *string
	if job.WorkMode != "" {
		mode := string(job.WorkMode)
		workMode = &mode
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (user_id, title, company, location, work_mode, description, requirements, url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		job.UserID, job.Title, job.Company, job.Location, workMode,
		job.Description, job.Requirements, job.URL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// SetJobMatchScore stores a computed fit score on the job row.
func (db *DB) SetJobMatchScore(ctx context.Context, jobID uuid.UUID, score int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET match_score = $1 WHERE id = $2`,
		score, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to set match score: %w", err)
	}
	return nil
}
