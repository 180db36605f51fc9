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

// Package stats renders the dataset statistics into the README template and
// keeps the snapshot of the previous report to compute the growth.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strconv"
	"strings"
	"time"

	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/internal/state"
)

// TokensPerSentence is the rough estimate of the number of tokens in a
// sentence.  The token count is not measured.
const TokensPerSentence = 10

// TimeFormat is the format of the last update time.
const TimeFormat = "2006-01-02 15:04 UTC"

//go:generate mockgen -source stats.go -destination mock_stats_test.go -package stats

// InfoGetter returns the dataset statistics from the host.
type InfoGetter interface {
	DatasetInfo(ctx context.Context) (hub.DatasetInfo, error)
}

// SnapshotStore keeps the snapshot of the previous report.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (state.Snapshot, bool, error)
	SaveSnapshot(ctx context.Context, s state.Snapshot) error
}

// Reporter produces the statistics report.
type Reporter struct {
	ig  InfoGetter
	ss  SnapshotStore
	now func() time.Time
	lg  *slog.Logger
}

// Option is the reporter option.
type Option func(*Reporter)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(r *Reporter) {
		if lg != nil {
			r.lg = lg
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		if now != nil {
			r.now = now
		}
	}
}

// NewReporter creates a new reporter.
func NewReporter(ig InfoGetter, ss SnapshotStore, opts ...Option) *Reporter {
	r := &Reporter{
		ig:  ig,
		ss:  ss,
		now: time.Now,
		lg:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Values are the template values.
type Values struct {
	LastUpdated  time.Time
	Current      state.Snapshot
	Previous     state.Snapshot
	SizeReadable string
}

// Report fetches the current dataset statistics, compares them with the
// previous snapshot, saves the new snapshot and returns the rendered
// template.  Missing previous snapshot counts as zeros.
func (r *Reporter) Report(ctx context.Context, tmpl string) (string, state.Snapshot, error) {
	ctx, task := trace.NewTask(ctx, "Report")
	defer task.End()

	info, err := r.ig.DatasetInfo(ctx)
	if err != nil {
		return "", state.Snapshot{}, fmt.Errorf("dataset info: %w", err)
	}
	cur := state.Snapshot{
		SentenceCount: info.NumExamples,
		TokenCount:    info.NumExamples * TokensPerSentence,
		SizeBytes:     info.SizeBytes,
	}
	prev, ok, err := r.ss.LoadSnapshot(ctx)
	if err != nil {
		return "", state.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if !ok {
		r.lg.InfoContext(ctx, "no previous snapshot, growth is counted from zero")
	}
	if err := r.ss.SaveSnapshot(ctx, cur); err != nil {
		return "", state.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	v := Values{
		LastUpdated:  r.now(),
		Current:      cur,
		Previous:     prev,
		SizeReadable: ReadableSize(cur.SizeBytes),
	}
	r.lg.DebugContext(ctx, "report", "sentences", cur.SentenceCount, "tokens", cur.TokenCount, "size", v.SizeReadable)
	return Render(tmpl, v), cur, nil
}

// Render substitutes the placeholders in the template with the values.
// Unknown placeholders are left as is.
func Render(tmpl string, v Values) string {
	r := strings.NewReplacer(
		"{{ last_updated }}", v.LastUpdated.UTC().Format(TimeFormat),
		"{{ sentence_count }}", strconv.FormatInt(v.Current.SentenceCount, 10),
		"{{ token_count }}", strconv.FormatInt(v.Current.TokenCount, 10),
		"{{ size_readable }}", v.SizeReadable,
		"{{ sentence_diff }}", Diff(v.Current.SentenceCount, v.Previous.SentenceCount),
		"{{ token_diff }}", Diff(v.Current.TokenCount, v.Previous.TokenCount),
		"{{ size_diff }}", Diff(v.Current.SizeBytes, v.Previous.SizeBytes),
	)
	return r.Replace(tmpl)
}
