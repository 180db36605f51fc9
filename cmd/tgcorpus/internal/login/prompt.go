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

package login

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// termPrompter asks for the login code and the password on the terminal.
type termPrompter struct {
	r *bufio.Reader
	w io.Writer
	// readPassword reads the password without echo, if the input is a
	// terminal.
	readPassword func() (string, error)
}

func newTermPrompter(in *os.File, w io.Writer) *termPrompter {
	p := &termPrompter{r: bufio.NewReader(in), w: w}
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		p.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(w)
			return string(b), err
		}
	}
	return p
}

var errEmpty = errors.New("empty input")

// Code asks for the login code.
func (p *termPrompter) Code(ctx context.Context) (string, error) {
	return p.ask(ctx, "Enter the login code: ")
}

// Password asks for the two factor authentication password.
func (p *termPrompter) Password(ctx context.Context) (string, error) {
	if p.readPassword == nil {
		return p.ask(ctx, "Enter the password: ")
	}
	fmt.Fprint(p.w, "Enter the password: ")
	pw, err := p.readPassword()
	if err != nil {
		return "", err
	}
	if pw == "" {
		return "", errEmpty
	}
	return pw, nil
}

func (p *termPrompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errEmpty
	}
	return line, nil
}
