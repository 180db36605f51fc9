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

// Package config implements the "tgcorpus config" command.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/trace"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
)

var CmdConfig = &base.Command{
	UsageLine: "tgcorpus config",
	Short:     "pipeline configuration",
	Long: `
Config command creates and checks the pipeline configuration file.  The file
is in TOML format and holds the channel list, the normaliser word lists, the
collection mode, the request limits and the dataset repository settings.
`,
	Commands: []*base.Command{
		CmdConfigNew,
		CmdConfigCheck,
	},
}

var CmdConfigNew = &base.Command{
	UsageLine: "tgcorpus config new [flags] <filename>",
	Short:     "creates a new config with the default values",
	Long: `
Creates a new configuration file containing the default values, for example:

    tgcorpus config new tgcorpus.toml

If the extension is omitted, ".toml" is appended to the filename.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var CmdConfigCheck = &base.Command{
	UsageLine: "tgcorpus config check <filename>",
	Short:     "validates the config",
	Long: `
Checks the config for unknown keys and ensures that the values are within the
allowed boundaries:

    tgcorpus config check tgcorpus.toml
`,
	FlagMask: cfg.OmitAll,
}

var fNewOverwrite bool

func init() {
	CmdConfigNew.Run = runConfigNew
	CmdConfigNew.Flag.BoolVar(&fNewOverwrite, "y", false, "confirm the overwrite of the existing config")
	CmdConfigCheck.Run = runConfigCheck
}

func runConfigNew(ctx context.Context, cmd *base.Command, args []string) error {
	_, task := trace.NewTask(ctx, "runConfigNew")
	defer task.End()

	if len(args) == 0 {
		return base.NewError(base.SInvalidParameters, errors.New("config file name must be specified"))
	}
	filename := maybeFixExt(args[0])
	if !shouldOverwrite(filename, fNewOverwrite) {
		return base.NewError(base.SInvalidParameters, fmt.Errorf("file or directory exists: %q, use -y flag to overwrite (will not overwrite directory)", filename))
	}
	if err := save(filename, cfg.DefFile); err != nil {
		return fmt.Errorf("error writing the config %q: %w", filename, err)
	}
	fmt.Printf("Your new config is ready: %q\n", filename)
	return nil
}

func runConfigCheck(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return base.NewError(base.SInvalidParameters, errors.New("config filename must be specified"))
	}
	filename := args[0]
	f, err := os.Open(filename)
	if err != nil {
		return base.NewError(base.SInvalidParameters, err)
	}
	defer f.Close()
	if _, err := cfg.ReadFile(f); err != nil {
		return base.NewError(base.SInvalidParameters, fmt.Errorf("config file %q not OK: %w", filename, err))
	}
	fmt.Printf("Config file %q: OK\n", filename)
	return nil
}

func save(filename string, p cfg.File) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := cfg.WriteFile(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func shouldOverwrite(filename string, override bool) bool {
	fi, err := os.Stat(filename)
	if fi != nil && fi.IsDir() {
		return false
	}
	return err != nil || override
}

func maybeFixExt(filename string) string {
	if filepath.Ext(filename) != ".toml" {
		return filename + ".toml"
	}
	return filename
}
