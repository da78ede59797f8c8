// Package storage owns the local durable store: a single SQLite database
// holding the serialized user directory, the session slot, and media blobs.
//
// The database handle is an explicitly owned resource: callers obtain it via
// InitDatabase and pass it to the repositories. Initialization is idempotent;
// goose skips migrations that have already been applied.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"github.com/dmitrijs2005/photostudio/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// migrateMu serializes concurrent initializations; goose configuration is
// package-global.
var migrateMu sync.Mutex

// RunMigrations applies any pending schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (or creates) the database at dsn and brings its schema
// up to date. Safe to call repeatedly; each call returns a fresh handle over
// the same file.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %w", common.ErrStorageUnavailable, err)
	}

	// Serialized access: the core assumes one logical writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: apply pragma: %w", common.ErrStorageUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: run migrations: %w", common.ErrStorageUnavailable, err)
	}

	return db, nil
}
