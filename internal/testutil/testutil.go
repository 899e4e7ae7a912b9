package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcards/internal/db"
)

// NewTestDB opens a private in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.OpenMemory(context.Background())
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
