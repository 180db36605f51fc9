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

// Package login implements the "tgcorpus login" command.
package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gotd/td/session"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/bootstrap"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
)

var CmdLogin = &base.Command{
	UsageLine: "tgcorpus login [flags]",
	Short:     "establishes the Telegram session",
	Long: `
Login establishes the Telegram user session and stores it encrypted in the
cache directory.  It must be run once, interactively, before the first
collection.

The application id and hash are obtained on https://my.telegram.org and
passed in the TG_API_ID and TG_API_HASH environment variables, the phone
number in TG_PHONE.  The login code sent by Telegram is asked on the
terminal, as is the two factor authentication password, unless TG_PASSWORD
is set.

If the session already exists, you are asked whether to replace it.  Use
-y to replace it without asking.
`,
	FlagMask:    cfg.OmitHubFlags | cfg.OmitConfigFlag,
	PrintFlags:  true,
	RequireAuth: true,
}

var fForce bool

func init() {
	CmdLogin.Run = runLogin
	CmdLogin.Flag.BoolVar(&fForce, "y", false, "replace the existing session without asking")
}

// sessionResetter is the session storage that can be reset.
type sessionResetter interface {
	session.Storage
	Reset() error
}

func runLogin(ctx context.Context, cmd *base.Command, args []string) error {
	st := bootstrap.Session()
	if ok, err := replaceSession(ctx, st, fForce, base.YesNo); err != nil {
		return base.NewError(base.SInitializationError, err)
	} else if !ok {
		return base.ErrOpCancelled
	}
	cl, err := bootstrap.Telegram(st)
	if err != nil {
		return err
	}
	if err := cl.Login(ctx, cfg.Phone, cfg.Password, newTermPrompter(os.Stdin, os.Stderr)); err != nil {
		return base.NewError(base.SAuthError, err)
	}
	slog.InfoContext(ctx, "session saved", "filename", cfg.SessionPath())
	return nil
}

// replaceSession checks if the session exists, and if it does, asks the
// user to replace it, unless force is set.  It returns false if the user
// declines.
func replaceSession(ctx context.Context, st sessionResetter, force bool, yesno func(string) bool) (bool, error) {
	_, err := st.LoadSession(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return true, nil
	}
	if err == nil && !force && !yesno("Session exists, replace it") {
		return false, nil
	}
	// unreadable session is replaced as well.
	if err != nil {
		slog.WarnContext(ctx, "existing session is unreadable, replacing", "error", err)
	}
	if err := st.Reset(); err != nil {
		return false, fmt.Errorf("reset session: %w", err)
	}
	return true, nil
}
