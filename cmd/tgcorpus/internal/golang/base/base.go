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

// Package base defines shared basic pieces of the tgcorpus command.
//
// The command subsystem is based on golang's `go` command implementation, which
// is BSD-licensed:
//
//	Copyright 2017 The Go Authors. All rights reserved.
//	Use of this source code is governed by a BSD-style
//	license that can be found in the LICENSE file.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
)

const rootName = "tgcorpus"

// Command is a tgcorpus subcommand, or a group of subcommands when Run is
// nil (i.e. "tgcorpus config").
type Command struct {
	// Run executes the command with the arguments left after flag parsing.
	// A returned *Error sets the exit status.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is "tgcorpus <name> [flags] [args]".  The words before the
	// first flag or argument make the command name.
	UsageLine string
	// Short is the help list entry.
	Short string
	// Long is the "tgcorpus help <name>" text.
	Long string

	// Flag holds the command flags.  The base flags (logging, cache and
	// state locations, credentials) are added to it before parsing.
	Flag flag.FlagSet
	// FlagMask omits the base flags the command has no use for, i.e. the
	// report command never talks to Telegram and omits its flags.
	FlagMask cfg.FlagMask
	// PrintFlags appends the flag defaults to the help text.
	PrintFlags bool
	// RequireAuth makes the command fail with the missing Telegram
	// credentials listed before it runs.
	RequireAuth bool

	// Commands are the subcommands, in help order.
	Commands []*Command
}

var Tgcorpus = &Command{
	UsageLine: rootName,
	Long:      `Tgcorpus collects clean Karakalpak sentences from public Telegram channels and publishes them to a dataset repository.`,
	// Commands initialised in main.
}

var exitStatus = 0
var exitMu sync.Mutex

// SetExitStatus sets the exit status, if n is greater than the current one.
func SetExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

// ExitStatus returns the current exit status.
func ExitStatus() int {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

var atExitFuncs []func()

// AtExit registers f to be called on Exit.
func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

// Exit runs the exit functions and exits with the current exit status.
func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(ExitStatus())
}

// Runnable is false for command groups.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// LongName returns the command path without the program name, i.e.
// "config new".  It is empty for the root command.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == rootName {
		return ""
	}
	return strings.TrimPrefix(name, rootName+" ")
}

// Name returns the last word of LongName, i.e. "new".
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Lookup returns the subcommand with the given name, or nil.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name {
			return sub
		}
	}
	return nil
}

// Usage prints the root usage.  Set by main.
var Usage func()

// Usage prints the command usage line and exits with
// SInvalidParameters.
func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run '%s help %s' for details.\n", rootName, c.LongName())
	SetExitStatus(int(SInvalidParameters))
	Exit()
}
