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
	"runtime/trace"

	"github.com/kaa-nlp/tgcorpus/normalize"
	"github.com/kaa-nlp/tgcorpus/types"
)

// ChannelResult is the result of fetching one channel.
type ChannelResult struct {
	Channel string
	// After is the checkpoint the fetch resumed after.
	After int64
	// Mark is the maximum accepted message ID, or After, if nothing was
	// accepted.
	Mark int64
	// Messages is the number of new messages seen.
	Messages  int
	Sentences []string
	Stats     normalize.Stats
	// Err is the fetch error, if the channel failed.
	Err error
}

// Fetch returns the clean sentences from the channel messages with ID
// greater than after, in the order they were posted, and the ID of the last
// accepted message.  If nothing was accepted, the mark equals after.  If
// keep is positive, only the last keep sentences are returned.
func (s *Session) Fetch(ctx context.Context, channel string, after int64, keep int) ([]string, int64, error) {
	cr, err := s.fetch(ctx, channel, after, keep)
	if err != nil {
		return nil, after, err
	}
	return cr.Sentences, cr.Mark, nil
}

func (s *Session) fetch(ctx context.Context, channel string, after int64, keep int) (ChannelResult, error) {
	ctx, task := trace.NewTask(ctx, "fetch")
	defer task.End()

	cr := ChannelResult{
		Channel: channel,
		After:   after,
		Mark:    after,
	}
	err := s.msgr.History(ctx, channel, after, func(mm []types.RawMessage) error {
		for _, m := range mm {
			if m.ID <= after {
				continue
			}
			cr.Messages++
			if !m.HasText() {
				continue
			}
			sent, reason := s.norm.Check(m.Text)
			cr.Stats.Add(reason)
			if reason != normalize.Accepted {
				continue
			}
			cr.Sentences = append(cr.Sentences, sent)
			cr.Mark = max(cr.Mark, m.ID)
		}
		return nil
	})
	if err != nil {
		return ChannelResult{}, err
	}
	if keep > 0 && len(cr.Sentences) > keep {
		cr.Sentences = cr.Sentences[len(cr.Sentences)-keep:]
	}
	s.lg.DebugContext(ctx, "fetched", "channel", channel, "after", after, "mark", cr.Mark, "messages", cr.Messages, "stats", cr.Stats)
	return cr, nil
}
