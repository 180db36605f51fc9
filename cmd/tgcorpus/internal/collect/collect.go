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

// Package collect implements the "tgcorpus collect" command.
package collect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/trace"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rusq/fsadapter"

	"github.com/kaa-nlp/tgcorpus"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/bootstrap"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
	"github.com/kaa-nlp/tgcorpus/normalize"
	"github.com/kaa-nlp/tgcorpus/translit"
)

var CmdCollect = &base.Command{
	UsageLine: "tgcorpus collect [flags] [channel ...]",
	Short:     "collects new sentences and uploads them",
	Long: `
Collect fetches the new messages of each channel, turns them into clean
Latin script Karakalpak sentences and uploads the batch to the dataset
repository, replacing the corpus file there.

Channels are given as usernames, with or without "@", or as t.me links.  If
none are given, the channels from the config file are used.

In the incremental mode (default), each channel is read from the message
after the last one collected before.  In the tail mode, each channel is read
from the beginning, and only the last -tail sentences are kept.

A channel that fails to fetch is reported and skipped, the rest of the
channels are collected.  If there are no new sentences, nothing is uploaded.
`,
	PrintFlags:  true,
	RequireAuth: true,
}

type flags struct {
	mode     string
	tail     int
	noUpload bool
	output   string
}

var cmdFlags flags

func init() {
	CmdCollect.Run = runCollect
	CmdCollect.Flag.StringVar(&cmdFlags.mode, "mode", "", "collection `mode`: incremental or tail (default: from the config)")
	CmdCollect.Flag.IntVar(&cmdFlags.tail, "tail", 0, "number of sentences to keep per channel in the tail mode (default: from the config)")
	CmdCollect.Flag.BoolVar(&cmdFlags.noUpload, "no-upload", false, "do not upload, only collect and save the checkpoints")
	CmdCollect.Flag.StringVar(&cmdFlags.output, "o", "", "`location` (directory or ZIP file) for the local copy of the corpus file")
}

// runStore is the state the collect run needs.
type runStore interface {
	tgcorpus.CheckpointStore
	BeginRun(ctx context.Context, mode string, channels []string) (int64, error)
	FinishRun(ctx context.Context, id int64, sentences int, uploaded bool) error
}

func runCollect(ctx context.Context, cmd *base.Command, args []string) error {
	channels := cfg.Pipeline.Channels
	if len(args) > 0 {
		channels = args
	}
	var up tgcorpus.Uploader
	if !cmdFlags.noUpload {
		hc, err := bootstrap.Hub()
		if err != nil {
			return err
		}
		up = hc
	}

	db, err := bootstrap.StateDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	cl, err := bootstrap.Telegram(bootstrap.Session())
	if err != nil {
		return err
	}

	opts, closeFS, err := sessionOptions(cmdFlags)
	if err != nil {
		return err
	}
	defer closeFS()

	return cl.Run(ctx, func(ctx context.Context) error {
		pb := bootstrap.ProgressBar(ctx, slog.Default())
		sum, err := collect(ctx, bootstrap.WithProgress(cl, pb), up, db, channels, opts...)
		_ = pb.Finish()
		if sum != nil {
			sum.Repo = cfg.HFRepo
			sum.Print(os.Stdout)
		}
		return err
	})
}

// sessionOptions returns the session options from the config file and the
// flags.
func sessionOptions(f flags) ([]tgcorpus.Option, func(), error) {
	opts := []tgcorpus.Option{
		tgcorpus.WithLogger(slog.Default()),
		tgcorpus.WithNormalizer(normalize.New(cfg.Pipeline.Normalize, translit.KarakalpakLatin)),
		tgcorpus.WithConfig(cfg.Pipeline.Corpus),
		tgcorpus.WithConfig(tgcorpus.Config{Mode: tgcorpus.Mode(f.mode), Tail: f.tail}),
	}
	if f.output == "" {
		return opts, func() {}, nil
	}
	fsa, err := fsadapter.New(f.output)
	if err != nil {
		return nil, nil, base.NewError(base.SInitializationError, fmt.Errorf("output %s: %w", f.output, err))
	}
	closeFS := func() {
		if err := fsa.Close(); err != nil {
			slog.Error("failed to close the output", "location", f.output, "error", err)
		}
	}
	return append(opts, tgcorpus.WithFilesystem(fsa)), closeFS, nil
}

// collect runs the collection and, if the uploader is set, publishes the
// batch.  The run is recorded in the state.  Summary is returned even on
// error, if the collection started.
func collect(ctx context.Context, msgr tgcorpus.Messenger, up tgcorpus.Uploader, st runStore, channels []string, opts ...tgcorpus.Option) (*Summary, error) {
	ctx, task := trace.NewTask(ctx, "collect")
	defer task.End()

	sess, err := tgcorpus.New(msgr, up, st, opts...)
	if err != nil {
		return nil, base.NewError(base.SInvalidParameters, err)
	}
	mode := sess.Config().Mode
	runID, err := st.BeginRun(ctx, string(mode), channels)
	if err != nil {
		return nil, base.NewError(base.SInitializationError, err)
	}
	lg := slog.With("run_id", runID, "mode", mode)
	lg.InfoContext(ctx, "collecting", "channels", strings.Join(channels, ","))

	res, err := sess.Collect(ctx, channels)
	sum := &Summary{Mode: mode, Result: res}
	if err != nil {
		return sum, err
	}
	lg.InfoContext(ctx, "collected", "sentences", len(res.Batch), "failed_channels", res.Failed(), "stats", res.Stats)

	var uploaded bool
	if up == nil {
		if sum.Local, err = sess.SaveLocal(ctx, res.Batch); err != nil {
			return sum, err
		}
	} else {
		ur, err := sess.Publish(ctx, res.Batch)
		sum.Upload = &ur
		if err != nil {
			return sum, err
		}
		uploaded = !ur.Skipped
	}
	if err := st.FinishRun(ctx, runID, len(res.Batch), uploaded); err != nil {
		return sum, err
	}
	return sum, nil
}

// Summary is the run summary printed to the user.
type Summary struct {
	Mode   tgcorpus.Mode
	Result *tgcorpus.Result
	Upload *tgcorpus.UploadResult
	Local  string
	Repo   string
}

// Print writes the summary to w.
func (s *Summary) Print(w io.Writer) {
	if s.Result == nil {
		return
	}
	res := s.Result
	fmt.Fprintf(w, "Mode: %s\n", s.Mode)
	for _, cr := range res.Channels {
		if cr.Err != nil {
			fmt.Fprintf(w, "  %-24s FAILED: %s\n", cr.Channel, cr.Err)
			continue
		}
		fmt.Fprintf(w, "  %-24s %s sentences from %s messages, last id %d\n",
			cr.Channel, humanize.Comma(int64(len(cr.Sentences))), humanize.Comma(int64(cr.Messages)), cr.Mark)
	}
	fmt.Fprintf(w, "Sentences: %s accepted, %s rejected\n",
		humanize.Comma(int64(res.Stats.Accepted())), humanize.Comma(int64(res.Stats.Rejected())))
	if s.Local != "" {
		fmt.Fprintf(w, "Local copy: %s\n", s.Local)
	}
	switch {
	case s.Upload == nil:
		fmt.Fprintln(w, "Upload: disabled")
	case s.Upload.Skipped:
		fmt.Fprintln(w, "Upload: skipped, no new sentences")
	default:
		fmt.Fprintf(w, "Upload: %s (%s) to %s", s.Upload.Path, humanize.Bytes(uint64(s.Upload.Bytes)), s.Repo)
		if oid := s.Upload.Commit.CommitOID; oid != "" {
			fmt.Fprintf(w, ", commit %s", oid)
		}
		fmt.Fprintln(w)
	}
}
