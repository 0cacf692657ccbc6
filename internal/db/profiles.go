package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alexr/huntboard/internal/types"
)

// GetProfile fetches a user's search preferences. Returns (nil, nil) when
// the user has not set up a profile; callers score without preference
// bonuses in that case.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, COALESCE(desired_titles, ''), COALESCE(desired_work_modes, '')
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.DesiredTitles, &p.DesiredWorkModes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile creates or replaces a user's search preferences.
func (db *DB) UpsertProfile(ctx context.Context, profile *types.Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, desired_titles, desired_work_modes)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET desired_titles = EXCLUDED.desired_titles,
		     desired_work_modes = EXCLUDED.desired_work_modes`,
		profile.UserID, profile.DesiredTitles, profile.DesiredWorkModes,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ListSkills returns all skills on a user's profile.
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, COALESCE(level, ''), COALESCE(years, 0)
		 FROM skills WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.Years); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skills: %w", err)
	}
	return skills, nil
}

// AddSkill adds a named skill to a user's profile and returns its ID.
func (db *DB) AddSkill(ctx context.Context, skill *types.Skill) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, level, years)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		skill.UserID, skill.Name, skill.Level, skill.Years,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to add skill: %w", err)
	}
	return id, nil
}
