// Package testutil opens throwaway in-memory databases for store and HTTP tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	coursemodel "github.com/tpo-jperez9/Project-9-Rest-API/pkg/core/course/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite returns a migrated in-memory database with foreign keys enforced.
// The pool is pinned to one connection: every new :memory: connection would
// otherwise see its own empty database.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := coursemodel.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
