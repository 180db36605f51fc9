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

package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/kaa-nlp/tgcorpus"
	"github.com/kaa-nlp/tgcorpus/types"
)

// ProgressBar returns the spinner with the unknown total.  In the debug mode
// it is silent, so that it does not garble the log output.
func ProgressBar(ctx context.Context, lg *slog.Logger, opts ...progressbar.Option) *progressbar.ProgressBar {
	fullopts := append([]progressbar.Option{
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(8),
		progressbar.OptionSetWriter(os.Stderr),
	}, opts...)

	pb := newProgressBar(progressbar.NewOptions(
		-1,
		fullopts...),
		lg.Enabled(ctx, slog.LevelDebug),
	)
	_ = pb.RenderBlank()
	return pb
}

func newProgressBar(pb *progressbar.ProgressBar, debug bool) *progressbar.ProgressBar {
	if debug {
		return progressbar.DefaultSilent(0)
	}
	return pb
}

// progressMessenger counts the fetched messages on the progress bar.
type progressMessenger struct {
	tgcorpus.Messenger
	pb *progressbar.ProgressBar
}

// WithProgress wraps the messenger so that each page of messages advances
// the progress bar, and the bar description shows the current channel.
func WithProgress(m tgcorpus.Messenger, pb *progressbar.ProgressBar) tgcorpus.Messenger {
	return &progressMessenger{Messenger: m, pb: pb}
}

func (m *progressMessenger) History(ctx context.Context, channel string, after int64, fn func([]types.RawMessage) error) error {
	m.pb.Describe(channel)
	return m.Messenger.History(ctx, channel, after, func(page []types.RawMessage) error {
		_ = m.pb.Add(len(page))
		return fn(page)
	})
}
