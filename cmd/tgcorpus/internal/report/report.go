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

// Package report implements the "tgcorpus report" command.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/bootstrap"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
	"github.com/kaa-nlp/tgcorpus/internal/state"
	"github.com/kaa-nlp/tgcorpus/internal/stats"
)

var CmdReport = &base.Command{
	UsageLine: "tgcorpus report [flags]",
	Short:     "updates the README with the dataset statistics",
	Long: `
Report reads the dataset statistics from the repository, compares them with
the statistics saved by the previous report, and fills the placeholders in
the README template:

    {{ last_updated }}    {{ sentence_count }}    {{ sentence_diff }}
    {{ token_count }}     {{ token_diff }}
    {{ size_readable }}   {{ size_diff }}

The template is overwritten with the result, unless -o is given.  The
statistics are saved for the next report even if the template has none of
the placeholders.
`,
	FlagMask:   cfg.OmitTelegramFlags,
	PrintFlags: true,
}

var (
	fTemplate string
	fOutput   string
)

func init() {
	CmdReport.Run = runReport
	CmdReport.Flag.StringVar(&fTemplate, "template", "README.md", "README template `file`")
	CmdReport.Flag.StringVar(&fOutput, "o", "", "output `file` (default: overwrite the template)")
}

func runReport(ctx context.Context, cmd *base.Command, args []string) error {
	hc, err := bootstrap.Hub()
	if err != nil {
		return err
	}
	db, err := bootstrap.StateDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	r := stats.NewReporter(hc, db, stats.WithLogger(slog.Default()))
	out := fOutput
	if out == "" {
		out = fTemplate
	}
	snap, err := report(ctx, r, fTemplate, out)
	if err != nil {
		return err
	}
	printSnapshot(os.Stdout, snap)
	return nil
}

// report renders the template file in into the file out.
func report(ctx context.Context, r *stats.Reporter, in, out string) (state.Snapshot, error) {
	tmpl, err := os.ReadFile(in)
	if err != nil {
		return state.Snapshot{}, base.NewError(base.SInvalidParameters, fmt.Errorf("template: %w", err))
	}
	text, snap, err := r.Report(ctx, string(tmpl))
	if err != nil {
		return state.Snapshot{}, err
	}
	if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
		return snap, fmt.Errorf("write %s: %w", out, err)
	}
	slog.InfoContext(ctx, "report written", "filename", out)
	return snap, nil
}

func printSnapshot(w io.Writer, s state.Snapshot) {
	fmt.Fprintf(w, "Updated README: %s sentences, %s tokens, %s total\n",
		humanize.Comma(s.SentenceCount), humanize.Comma(s.TokenCount), stats.ReadableSize(s.SizeBytes))
}
