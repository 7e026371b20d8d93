// Package storage opens the local session store: an SQLite file migrated
// with goose, or a process-local map when no path is configured.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gownshop/internal/client/migrations"
	"github.com/dmitrijs2005/gownshop/internal/client/repositories/keyvalue"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage bundles the repositories the client persists into.
type Storage struct {
	KeyValue keyvalue.Repository
	db       *sql.DB
}

// RunMigrations applies the embedded migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite file at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open returns a Storage backed by the SQLite file at path. An empty path
// keeps everything in memory.
func Open(ctx context.Context, path string) (*Storage, error) {
	if path == "" {
		return &Storage{KeyValue: keyvalue.NewMemoryRepository()}, nil
	}

	db, err := InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("init session store %q: %w", path, err)
	}
	return &Storage{KeyValue: keyvalue.NewSQLiteRepository(db), db: db}, nil
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
