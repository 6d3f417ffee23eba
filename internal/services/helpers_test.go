package services

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/seed"
)

// newSeededDB opens a file-backed SQLite database in a temp dir and loads
// the fixture dataset. Each test gets its own copy.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite(filepath.Join(t.TempDir(), "news.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := seed.Seed(context.Background(), db, seed.TestData()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
