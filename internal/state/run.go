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

package state

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rusq/tagops"
)

// Run is the record of a single collect run.
type Run struct {
	ID        int64     `db:"ID,omitempty"`
	CreatedAt time.Time `db:"CREATED_AT,omitempty"`
	UpdatedAt time.Time `db:"UPDATED_AT,omitempty"`
	Mode      string    `db:"MODE"`
	Channels  string    `db:"CHANNELS"`
	Sentences int       `db:"SENTENCES"`
	Uploaded  bool      `db:"UPLOADED"`
	Finished  bool      `db:"FINISHED"`
}

var runCols = tagops.Tags(Run{}, dbTag)

// BeginRun records the start of the run and returns its ID.
func (db *DB) BeginRun(ctx context.Context, mode string, channels []string) (int64, error) {
	if err := db.ensureOpen(); err != nil {
		return 0, err
	}
	res, err := db.conn.ExecContext(ctx,
		db.conn.Rebind("INSERT INTO RUN (MODE, CHANNELS) VALUES (?, ?)"),
		mode, strings.Join(channels, ","),
	)
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	return res.LastInsertId()
}

// FinishRun marks the run as finished.
func (db *DB) FinishRun(ctx context.Context, id int64, sentences int, uploaded bool) error {
	if err := db.ensureOpen(); err != nil {
		return err
	}
	res, err := db.conn.ExecContext(ctx,
		db.conn.Rebind("UPDATE RUN SET UPDATED_AT = CURRENT_TIMESTAMP, SENTENCES = ?, UPLOADED = ?, FINISHED = TRUE WHERE ID = ?"),
		sentences, uploaded, id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("finish run: %w", err)
	} else if n == 0 {
		return fmt.Errorf("finish run %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// LastRun returns the most recent run.
func (db *DB) LastRun(ctx context.Context) (*Run, error) {
	if err := db.ensureOpen(); err != nil {
		return nil, err
	}
	r := new(Run)
	stmt := "SELECT " + strings.Join(runCols, ",") + " FROM RUN ORDER BY ID DESC LIMIT 1"
	if err := db.conn.QueryRowxContext(ctx, stmt).StructScan(r); err != nil {
		return nil, fmt.Errorf("last run: %w", err)
	}
	return r, nil
}
