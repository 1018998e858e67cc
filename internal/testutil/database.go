// Package testutil provides shared test helpers for poclass packages: an
// isolated session database and canned classification responses.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/storage"
)

// TestDB is a migrated in-memory session database.
type TestDB struct {
	Store *storage.SQLiteStorage
	t     *testing.T
}

// SetupTestDB creates a new in-memory session database. It automatically
// handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t)
//	db.SeedLastResult(responses.NewBuilder(t).WithRaw(responses.Structured).Build())
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Store: store,
		t:     t,
	}
}

// SeedLastResult stores r as the last result or fails the test.
func (db *TestDB) SeedLastResult(r result.DisplayedResult) {
	db.t.Helper()
	if err := db.Store.SaveLastResult(context.Background(), r); err != nil {
		db.t.Fatalf("failed to seed last result: %v", err)
	}
}

// MustLoadLastResult returns the stored last result or fails the test.
func (db *TestDB) MustLoadLastResult() result.DisplayedResult {
	db.t.Helper()
	r, err := db.Store.LoadLastResult(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load last result: %v", err)
	}
	return r
}
