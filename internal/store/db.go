// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // SQLite driver for database/sql
)

//go:embed migrations/*.sql
var dbMigrations embed.FS

// NewDB opens a SQLite database and configures it. The database hosts the
// content snapshot row and the session table.
func NewDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Single writer, snapshot-sized writes: keep the pool small.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate runs all pending database migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(dbMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// SQLiteBackend stores the snapshot blob in a single row of a key-value
// table, keyed by StorageKey.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend creates a SQLite snapshot backend over an already
// opened and migrated database.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

// Load reads the snapshot row.
func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT data FROM content_snapshots WHERE key = ?`, StorageKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return data, nil
}

// Save upserts the snapshot row.
func (b *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO content_snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		StorageKey, data)
	if err != nil {
		return fmt.Errorf("writing snapshot row: %w", err)
	}
	return nil
}
