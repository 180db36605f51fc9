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

package telegram

import (
	"context"
	"fmt"
	"runtime/trace"

	"github.com/gotd/td/tg"

	"github.com/kaa-nlp/tgcorpus/internal/network"
	"github.com/kaa-nlp/tgcorpus/types"
)

// History calls fn for each page of the channel messages with ID greater
// than after, oldest first.  Messages within the page are sorted by ID.
// Pages may contain messages without text.
func (c *Client) History(ctx context.Context, channel string, after int64, fn func([]types.RawMessage) error) error {
	ctx, task := trace.NewTask(ctx, "History")
	defer task.End()

	trace.Logf(ctx, "channel", "%s after %d", channel, after)

	peer, err := c.resolve(ctx, channel)
	if err != nil {
		return err
	}

	var (
		limit  = c.limits.Request.BatchSize
		cursor = after
		pages  int
	)
	for {
		// offset_id points one past the cursor, and the negative add_offset
		// turns the window towards the newer messages.
		req := &tg.MessagesGetHistoryRequest{
			Peer:      peer,
			OffsetID:  int(cursor) + 1,
			AddOffset: -limit,
			Limit:     limit,
			MinID:     int(cursor),
		}
		var res tg.MessagesMessagesClass
		if err := network.Throttled(ctx, c.lim, c.limits.Request.Timeout, func(ctx context.Context) error {
			var err error
			res, err = c.api.MessagesGetHistory(ctx, req)
			return err
		}); err != nil {
			return fmt.Errorf("history %s after %d: %w", channel, cursor, err)
		}
		msgs, maxID := convert(res, channel, cursor)
		if maxID <= cursor {
			c.lg.DebugContext(ctx, "history done", "channel", channel, "pages", pages, "last_id", cursor)
			return nil
		}
		pages++
		if len(msgs) > 0 {
			types.SortMessages(msgs)
			if err := fn(msgs); err != nil {
				return err
			}
		}
		cursor = maxID
	}
}

// convert returns the text messages with ID greater than after, and the
// maximum message ID on the page, including the service messages.
func convert(res tg.MessagesMessagesClass, channel string, after int64) ([]types.RawMessage, int64) {
	var mm []tg.MessageClass
	switch r := res.(type) {
	case *tg.MessagesMessages:
		mm = r.Messages
	case *tg.MessagesMessagesSlice:
		mm = r.Messages
	case *tg.MessagesChannelMessages:
		mm = r.Messages
	default:
		// not modified
		return nil, after
	}
	var (
		out   = make([]types.RawMessage, 0, len(mm))
		maxID = after
	)
	for _, m := range mm {
		id := int64(m.GetID())
		if id <= after {
			continue
		}
		maxID = max(maxID, id)
		msg, ok := m.(*tg.Message)
		if !ok {
			continue
		}
		out = append(out, types.RawMessage{ID: id, Text: msg.Message, Channel: channel})
	}
	return out, maxID
}
