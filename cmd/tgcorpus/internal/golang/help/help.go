// This package is based on the Golang source code with some modifications.
//
// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help implements "tgcorpus help" command.
package help

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
)

// PrintUsage prints the usage of the command with subcommands.
func PrintUsage(w io.Writer, cmd *base.Command) error {
	bw := bufio.NewWriter(w)
	if err := tmpl(bw, usageTemplate, cmd); err != nil {
		return err
	}
	return bw.Flush()
}

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data any) error {
	t := template.New("top")
	t.Funcs(template.FuncMap{"trim": strings.TrimSpace, "capitalize": capitalize})
	template.Must(t.Parse(text))
	ew := &errWriter{w: w}
	err := t.Execute(ew, data)
	if ew.err != nil {
		return fmt.Errorf("writing output: %w", ew.err)
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + s[n:]
}

// An errWriter wraps a writer, recording whether a write error occurred.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Help implements the 'help' command.
func Help(w io.Writer, args []string) error {
	cmd := base.Tgcorpus
Args:
	for i, arg := range args {
		for _, sub := range cmd.Commands {
			if sub.Name() == arg {
				cmd = sub
				continue Args
			}
		}

		// helpSuccess is the help command using as many args as possible that would succeed.
		helpSuccess := "tgcorpus help"
		if i > 0 {
			helpSuccess += " " + strings.Join(args[:i], " ")
		}
		return base.NewError(base.SInvalidParameters, fmt.Errorf("tgcorpus help %s: unknown help topic. Run '%s'", strings.Join(args, " "), helpSuccess))
	}

	if len(cmd.Commands) > 0 {
		return PrintUsage(w, cmd)
	}
	if err := tmpl(w, helpTemplate, cmd); err != nil {
		return err
	}
	if cmd.PrintFlags {
		fmt.Fprintln(w, "\nFlags:")
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		fs.SetOutput(w)
		cmd.Flag.VisitAll(func(f *flag.Flag) {
			fs.Var(f.Value, f.Name, f.Usage)
		})
		cfg.SetBaseFlags(fs, cmd.FlagMask)
		fs.PrintDefaults()
	}
	return nil
}
