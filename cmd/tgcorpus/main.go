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

// Command tgcorpus collects the clean Karakalpak sentences from Telegram
// channels and publishes them to the dataset repository.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/collect"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/config"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/help"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/login"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/report"
)

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

func init() {
	loadSecrets(secrets)

	base.Tgcorpus.Commands = []*base.Command{
		login.CmdLogin,
		collect.CmdCollect,
		report.CmdReport,
		config.CmdConfig,
	}
	base.Usage = mainUsage
}

func main() {
	flag.Usage = base.Usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
	}
	if args[0] == "help" {
		if err := help.Help(os.Stdout, args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			base.SetExitStatus(int(base.StatusOf(err)))
		}
		base.Exit()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if err := invoke(ctx, args); err != nil {
		code := base.StatusOf(err)
		slog.Error(err.Error(), "status", code)
		base.SetExitStatus(int(code))
	}
	stop()
	base.Exit()
}

func mainUsage() {
	_ = help.PrintUsage(os.Stderr, base.Tgcorpus)
	base.SetExitStatus(int(base.SHelpRequested))
	base.Exit()
}

// invoke finds the command in args, parses its flags, initialises the
// instruments and runs it.
func invoke(ctx context.Context, args []string) error {
	cmd, args, err := lookup(base.Tgcorpus, args)
	if err != nil {
		return err
	}
	if !cmd.Runnable() {
		_ = help.PrintUsage(os.Stderr, cmd)
		return base.NewError(base.SInvalidParameters, fmt.Errorf("%s: missing subcommand", cmd.LongName()))
	}
	cmd.Flag.Usage = func() { cmd.Usage() }
	cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
	if err := cmd.Flag.Parse(args); err != nil {
		return base.NewError(base.SInvalidParameters, err)
	}
	args = cmd.Flag.Args()

	if _, err := initLog(cfg.LogFile, cfg.JSONHandler, cfg.Verbose); err != nil {
		return base.NewError(base.SInitializationError, err)
	}
	base.AtExit(initTrace(cfg.TraceFile))

	if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
		return base.NewError(base.SInvalidParameters, err)
	}
	if cmd.RequireAuth {
		// fail before anything touches the network.
		if err := cfg.Check(cfg.TelegramCreds()); err != nil {
			return base.NewError(base.SInvalidParameters, err)
		}
	}
	slog.DebugContext(ctx, "running", "command", cmd.LongName(), "args", args)
	return cmd.Run(ctx, cmd, args)
}

// lookup walks the command tree along args and returns the command and the
// rest of args.
func lookup(root *base.Command, args []string) (*base.Command, []string, error) {
	cmd := root
	for len(args) > 0 && len(cmd.Commands) > 0 {
		sub := cmd.Lookup(args[0])
		if sub == nil {
			helpArg := ""
			if ln := cmd.LongName(); ln != "" {
				helpArg = " " + ln
			}
			return nil, nil, base.NewError(base.SInvalidParameters,
				fmt.Errorf("tgcorpus %s: unknown command\nRun 'tgcorpus help%s' for usage", strings.TrimSpace(cmd.LongName()+" "+args[0]), helpArg))
		}
		cmd, args = sub, args[1:]
	}
	return cmd, args, nil
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
