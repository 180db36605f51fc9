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

// Checkpoint is the last accepted message ID of the channel.
type Checkpoint struct {
	Channel   string    `db:"CHANNEL"`
	LastID    int64     `db:"LAST_ID"`
	UpdatedAt time.Time `db:"UPDATED_AT,omitempty"`
}

var checkpointCols = tagops.Tags(Checkpoint{}, dbTag)

// Load returns the last accepted message ID for the channel, or 0 if the
// channel was never seen.
func (db *DB) Load(ctx context.Context, channel string) (int64, error) {
	if err := db.ensureOpen(); err != nil {
		return 0, err
	}
	var id int64
	err := db.conn.QueryRowxContext(ctx, db.conn.Rebind("SELECT LAST_ID FROM CHECKPOINT WHERE CHANNEL = ?"), channel).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("load checkpoint %q: %w", channel, err)
	}
	return id, nil
}

// Save stores the last accepted message ID for the channel.  Other channels
// are not touched.  The stored value never decreases: saving an ID lower
// than the current one is a no-op.
func (db *DB) Save(ctx context.Context, channel string, id int64) error {
	if err := db.ensureOpen(); err != nil {
		return err
	}
	if channel == "" {
		return errors.New("save checkpoint: empty channel")
	}
	if id < 0 {
		return fmt.Errorf("save checkpoint %q: negative id %d", channel, id)
	}
	const stmt = `INSERT INTO CHECKPOINT (CHANNEL, LAST_ID) VALUES (?, ?)
ON CONFLICT(CHANNEL) DO UPDATE SET
	LAST_ID = MAX(LAST_ID, excluded.LAST_ID),
	UPDATED_AT = CURRENT_TIMESTAMP`
	if _, err := db.conn.ExecContext(ctx, db.conn.Rebind(stmt), channel, id); err != nil {
		return fmt.Errorf("save checkpoint %q: %w", channel, err)
	}
	db.lg.DebugContext(ctx, "checkpoint saved", "channel", channel, "id", id)
	return nil
}

// Checkpoints returns all checkpoints, ordered by channel.
func (db *DB) Checkpoints(ctx context.Context) ([]Checkpoint, error) {
	if err := db.ensureOpen(); err != nil {
		return nil, err
	}
	var cc []Checkpoint
	stmt := "SELECT " + strings.Join(checkpointCols, ",") + " FROM CHECKPOINT ORDER BY CHANNEL"
	if err := db.conn.SelectContext(ctx, &cc, stmt); err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	return cc, nil
}
