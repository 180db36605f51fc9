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

// Package bootstrap initialises the clients and the state database from the
// command configuration.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gotd/td/session"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/internal/network"
	"github.com/kaa-nlp/tgcorpus/internal/state"
	"github.com/kaa-nlp/tgcorpus/internal/telegram"
)

// StateDB opens the state database, creating the directory if needed.
func StateDB(ctx context.Context) (*state.DB, error) {
	dbfile := cfg.StatePath()
	if err := os.MkdirAll(filepath.Dir(dbfile), 0o700); err != nil {
		return nil, base.NewError(base.SInitializationError, fmt.Errorf("state directory: %w", err))
	}
	db, err := state.Open(ctx, dbfile, state.WithLogger(slog.Default()))
	if err != nil {
		return nil, base.NewError(base.SInitializationError, fmt.Errorf("state database %s: %w", dbfile, err))
	}
	return db, nil
}

// Limits returns the platform limits from the config file, with the
// -timeout flag applied.
func Limits() network.Limits {
	l := cfg.Pipeline.Limits
	if cfg.Timeout > 0 {
		l.Request.Timeout = cfg.Timeout
	}
	return l
}

// Session returns the session storage in the cache directory.
func Session() *telegram.FileStorage {
	return telegram.NewFileStorage(cfg.SessionPath())
}

// Telegram returns the platform client that keeps the session in storage.
func Telegram(storage session.Storage) (*telegram.Client, error) {
	creds := cfg.TelegramCreds()
	if err := cfg.Check(creds); err != nil {
		return nil, base.NewError(base.SInvalidParameters, err)
	}
	return telegram.New(creds.APIID, creds.APIHash, storage,
		telegram.WithLimits(Limits()),
		telegram.WithLogger(slog.Default()),
	), nil
}

// Hub returns the dataset repository client.
func Hub() (*hub.Client, error) {
	creds := cfg.HubCreds()
	if err := cfg.Check(creds); err != nil {
		return nil, base.NewError(base.SInvalidParameters, err)
	}
	cl, err := hub.New(creds.Token, creds.Repo,
		hub.WithEndpoint(cfg.Pipeline.Hub.Endpoint),
		hub.WithRevision(cfg.Pipeline.Hub.Revision),
		hub.WithTimeout(Limits().Request.Timeout),
		hub.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, base.NewError(base.SInvalidParameters, err)
	}
	return cl, nil
}
