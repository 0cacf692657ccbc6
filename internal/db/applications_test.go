package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexr/huntboard/internal/audit"
)

func TestBuildApplicationUpdate_SingleField(t *testing.T) {
	id := uuid.New()

	query, args, err := buildApplicationUpdate(id, audit.Record{"stage": "APPLIED"})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE applications SET stage = $1, updated_at = NOW() WHERE id = $2", query)
	assert.Equal(t, []any{"APPLIED", id}, args)
}

func TestBuildApplicationUpdate_ColumnOrderIsFixed(t *testing.T) {
	id := uuid.New()

	query, args, err := buildApplicationUpdate(id, audit.Record{
		"notes":        "followed up",
		"stage":        "INTERVIEW",
		"contact_name": "Sam",
	})

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE applications SET stage = $1, contact_name = $2, notes = $3, updated_at = NOW() WHERE id = $4",
		query)
	assert.Equal(t, []any{"INTERVIEW", "Sam", "followed up", id}, args)
}

func TestBuildApplicationUpdate_NilBecomesArg(t *testing.T) {
	id := uuid.New()

	query, args, err := buildApplicationUpdate(id, audit.Record{"applied_at": nil})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE applications SET applied_at = $1, updated_at = NOW() WHERE id = $2", query)
	require.Len(t, args, 2)
	assert.Nil(t, args[0])
}

func TestBuildApplicationUpdate_UnknownField(t *testing.T) {
	_, _, err := buildApplicationUpdate(uuid.New(), audit.Record{"salary": 90000})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown application field: salary")
}

func TestBuildApplicationUpdate_EmptyRecord(t *testing.T) {
	query, args, err := buildApplicationUpdate(uuid.New(), audit.Record{})

	require.NoError(t, err)
	assert.Empty(t, query)
	assert.Nil(t, args)
}
