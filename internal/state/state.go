// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package state keeps the local pipeline state between runs: per-channel
// checkpoints, the statistics snapshot and the run log.  State lives in an
// SQLite database.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	// Driver is the database driver name.
	Driver = "sqlite"
	dbTag  = "db"
)

// DefFilename is the default state database filename.
const DefFilename = "tgcorpus.sqlite"

var dbInitCommands = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
}

// ErrClosed is returned when the database is used after Close.
var ErrClosed = errors.New("state database is closed")

// DB is the state database.
type DB struct {
	conn *sqlx.DB
	lg   *slog.Logger
}

// Option configures the DB.
type Option func(*DB)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(db *DB) {
		if lg != nil {
			db.lg = lg
		}
	}
}

// Open opens the state database at dsn, creating it if it does not exist,
// and brings the schema up to date.  A database that can not be read or
// migrated is an error, it is never reset silently.
func Open(ctx context.Context, dsn string, opts ...Option) (*DB, error) {
	conn, err := sqlx.Open(Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	// one writer, one run at a time, and in-memory databases must stick to
	// a single connection.
	conn.SetMaxOpenConns(1)

	db, err := New(ctx, conn, opts...)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open state %s: %w", dsn, err)
	}
	return db, nil
}

// New wraps an existing connection and brings the schema up to date.
func New(ctx context.Context, conn *sqlx.DB, opts ...Option) (*DB, error) {
	db := &DB{conn: conn, lg: slog.Default()}
	for _, opt := range opts {
		opt(db)
	}
	if err := conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := initDB(ctx, conn); err != nil {
		return nil, err
	}
	if err := Migrate(ctx, conn.DB, db.lg.Enabled(ctx, slog.LevelDebug)); err != nil {
		return nil, err
	}
	return db, nil
}

// initDB runs the initialisation commands on the database.
func initDB(ctx context.Context, conn *sqlx.DB) error {
	for _, q := range dbInitCommands {
		if _, err := conn.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("initDB: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	return err
}

func (db *DB) ensureOpen() error {
	if db == nil || db.conn == nil {
		return ErrClosed
	}
	return nil
}
