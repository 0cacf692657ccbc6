package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexr/huntboard/internal/types"
)

// ListContacts returns a user's network contacts ordered by name.
func (db *DB) ListContacts(ctx context.Context, userID uuid.UUID) ([]types.Contact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, COALESCE(company, ''), COALESCE(title, ''),
		        COALESCE(email, ''), strength, COALESCE(tags, ''), COALESCE(hiring_signal, false)
		 FROM contacts WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Company, &c.Title,
			&c.Email, &c.Strength, &c.Tags, &c.HiringSignal); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}
	return contacts, nil
}

// CreateContact inserts a network contact and returns its ID.
func (db *DB) CreateContact(ctx context.Context, contact *types.Contact) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contacts (user_id, name, company, title, email, strength, tags, hiring_signal)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		contact.UserID, contact.Name, contact.Company, contact.Title,
		contact.Email, contact.Strength, contact.Tags, contact.HiringSignal,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return id, nil
}
