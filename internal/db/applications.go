package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alexr/huntboard/internal/audit"
	"github.com/alexr/huntboard/internal/types"
)

// applicationColumns is the fixed set of application fields a sanitized
// update may touch, in the order they appear in the UPDATE statement.
var applicationColumns = []string{
	"stage",
	"applied_at",
	"next_follow_up_at",
	"contact_name",
	"contact_email",
	"notes",
}

// GetApplication fetches an application by ID. Returns (nil, nil) when not
// found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	var a types.Application
	var stage string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, stage, applied_at, next_follow_up_at,
		        COALESCE(contact_name, ''), COALESCE(contact_email, ''), COALESCE(notes, ''),
		        created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.UserID, &a.JobID, &stage, &a.AppliedAt, &a.NextFollowUpAt,
		&a.ContactName, &a.ContactEmail, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	a.Stage = types.Stage(stage)
	return &a, nil
}

// ListApplications returns a user's applications, most recently updated
// first.
func (db *DB) ListApplications(ctx context.Context, userID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_id, stage, applied_at, next_follow_up_at,
		        COALESCE(contact_name, ''), COALESCE(contact_email, ''), COALESCE(notes, ''),
		        created_at, updated_at
		 FROM applications WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		var a types.Application
		var stage string
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &stage, &a.AppliedAt, &a.NextFollowUpAt,
			&a.ContactName, &a.ContactEmail, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		a.Stage = types.Stage(stage)
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}
	return apps, nil
}

// CreateApplication inserts a new application starting at the given stage
// and returns its ID.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, stage, contact_name, contact_email, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		app.UserID, app.JobID, string(app.Stage), app.ContactName, app.ContactEmail, app.Notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// UpdateApplication applies a sanitized field map to an application row.
// Only whitelisted columns are touched; fields absent from the record stay
// untouched and explicit nils become SQL NULL, so the sanitizer's
// missing/null/value distinction flows through to the database.
func (db *DB) UpdateApplication(ctx context.Context, id uuid.UUID, record audit.Record) error {
	query, args, err := buildApplicationUpdate(id, record)
	if err != nil {
		return err
	}
	if query == "" {
		return nil // nothing to update
	}

	tag, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// buildApplicationUpdate renders the dynamic UPDATE for a sanitized record.
// Returns an empty query when the record touches no known column.
func buildApplicationUpdate(id uuid.UUID, record audit.Record) (string, []any, error) {
	var sets []string
	var args []any

	for _, col := range applicationColumns {
		value, ok := record[col]
		if !ok {
			continue
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	for key := range record {
		if !isApplicationColumn(key) {
			return "", nil, fmt.Errorf("unknown application field: %s", key)
		}
	}

	if len(sets) == 0 {
		return "", nil, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE applications SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)
	return query, args, nil
}

func isApplicationColumn(name string) bool {
	for _, col := range applicationColumns {
		if col == name {
			return true
		}
	}
	return false
}
