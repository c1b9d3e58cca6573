// Package testutil provides shared test helpers: an in-memory migrated
// database and a deterministic random source.
package testutil

import (
	"context"
	"math/rand"
	"testing"

	"github.com/drdebit/aalp-sub001/internal/storage"
)

// SetupTestDB creates a new in-memory SQLite database, runs migrations,
// and registers cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SeededRNG returns a deterministic random source so tests that exercise
// random draws stay reproducible.
func SeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
