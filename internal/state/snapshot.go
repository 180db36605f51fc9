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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rusq/tagops"
)

// Snapshot is the dataset statistics recorded on the previous report.
type Snapshot struct {
	SentenceCount int64     `db:"SENTENCE_COUNT"`
	TokenCount    int64     `db:"TOKEN_COUNT"`
	SizeBytes     int64     `db:"SIZE_BYTES"`
	UpdatedAt     time.Time `db:"UPDATED_AT,omitempty"`
}

var snapshotCols = tagops.Tags(Snapshot{}, dbTag)

// LoadSnapshot returns the last saved snapshot.  If there is none, it
// returns the zero snapshot and false.
func (db *DB) LoadSnapshot(ctx context.Context) (Snapshot, bool, error) {
	if err := db.ensureOpen(); err != nil {
		return Snapshot{}, false, err
	}
	var s Snapshot
	stmt := "SELECT " + strings.Join(snapshotCols, ",") + " FROM STATS_SNAPSHOT WHERE ID = 1"
	if err := db.conn.QueryRowxContext(ctx, stmt).StructScan(&s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}
	return s, true, nil
}

// SaveSnapshot overwrites the saved snapshot.
func (db *DB) SaveSnapshot(ctx context.Context, s Snapshot) error {
	if err := db.ensureOpen(); err != nil {
		return err
	}
	const stmt = `INSERT INTO STATS_SNAPSHOT (ID, SENTENCE_COUNT, TOKEN_COUNT, SIZE_BYTES) VALUES (1, ?, ?, ?)
ON CONFLICT(ID) DO UPDATE SET
	SENTENCE_COUNT = excluded.SENTENCE_COUNT,
	TOKEN_COUNT = excluded.TOKEN_COUNT,
	SIZE_BYTES = excluded.SIZE_BYTES,
	UPDATED_AT = CURRENT_TIMESTAMP`
	if _, err := db.conn.ExecContext(ctx, db.conn.Rebind(stmt), s.SentenceCount, s.TokenCount, s.SizeBytes); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
