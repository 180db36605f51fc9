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

package tgcorpus

import (
	"context"
	"fmt"
	"runtime/trace"

	"github.com/kaa-nlp/tgcorpus/normalize"
)

// Result is the result of the collection run.
type Result struct {
	Channels []ChannelResult
	// Batch is the sentences of all channels, in channel order.
	Batch []string
	// Stats is the normaliser statistics for all channels.
	Stats normalize.Stats
}

// Failed returns the number of failed channels.
func (r *Result) Failed() int {
	var n int
	for _, cr := range r.Channels {
		if cr.Err != nil {
			n++
		}
	}
	return n
}

// Collect fetches the channels one by one and returns the batch of clean
// sentences.  A channel that fails to fetch is logged and skipped, its
// checkpoint stays intact.  Checkpoint errors are returned, as is the
// context cancellation.
//
// In the tail mode, the checkpoints are ignored on read, but still saved,
// so that the next incremental run continues after the tail.
func (s *Session) Collect(ctx context.Context, channels []string) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Collect")
	defer task.End()

	var (
		res  = new(Result)
		tail = s.cfg.tailCap()
	)
	for _, ch := range channels {
		var after int64
		if s.cfg.Mode != ModeTail {
			var err error
			after, err = s.cp.Load(ctx, ch)
			if err != nil {
				return res, fmt.Errorf("load checkpoint %s: %w", ch, err)
			}
		}
		cr, err := s.fetch(ctx, ch, after, tail)
		if err != nil {
			if ctx.Err() != nil {
				return res, context.Cause(ctx)
			}
			s.lg.WarnContext(ctx, "channel fetch failed, skipping", "channel", ch, "error", err)
			res.Channels = append(res.Channels, ChannelResult{Channel: ch, After: after, Mark: after, Err: err})
			continue
		}
		if cr.Mark > after {
			if err := s.cp.Save(ctx, ch, cr.Mark); err != nil {
				return res, fmt.Errorf("save checkpoint %s: %w", ch, err)
			}
		}
		s.lg.InfoContext(ctx, "channel done", "channel", ch, "sentences", len(cr.Sentences), "last_id", cr.Mark)
		res.Channels = append(res.Channels, cr)
		res.Batch = append(res.Batch, cr.Sentences...)
		res.Stats.Merge(cr.Stats)
	}
	return res, nil
}
