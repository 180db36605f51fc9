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

// Package tgcorpus collects the clean Karakalpak sentences from the
// Telegram channels and publishes them to the dataset repository.
package tgcorpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/rusq/fsadapter"

	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/normalize"
	"github.com/kaa-nlp/tgcorpus/types"
)

//go:generate mockgen -source tgcorpus.go -destination tgcorpus_mock_test.go -package tgcorpus -mock_names Messenger=mockMessenger,Uploader=mockUploader,CheckpointStore=mockCheckpointStore

// Messenger is the message source.
type Messenger interface {
	// History calls fn for each page of the channel messages with ID
	// greater than after, oldest first.
	History(ctx context.Context, channel string, after int64, fn func([]types.RawMessage) error) error
}

// Uploader publishes the file to the dataset repository.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, message string) (hub.CommitInfo, error)
}

// CheckpointStore keeps the last accepted message ID of each channel.
type CheckpointStore interface {
	Load(ctx context.Context, channel string) (int64, error)
	Save(ctx context.Context, channel string, id int64) error
}

// Session is the collection session.  Zero value is not usable, must be
// initialised with New.
type Session struct {
	msgr Messenger
	up   Uploader
	cp   CheckpointStore

	norm *normalize.Normalizer
	fs   fsadapter.FS // local copy of the published file, optional
	lg   *slog.Logger

	cfg Config
}

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLogger sets the logger to use for the session.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Session) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// WithNormalizer sets the sentence normalizer.  If this option is not given,
// the default normalizer is used.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Session) {
		if n != nil {
			s.norm = n
		}
	}
}

// WithFilesystem sets the filesystem adapter, where the local copy of the
// published file is written.  If this option is not given, no local copy is
// written.
func WithFilesystem(fs fsadapter.FS) Option {
	return func(s *Session) {
		s.fs = fs
	}
}

// WithConfig sets the session configuration.  Zero values are replaced with
// defaults.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg.apply(cfg)
	}
}

// WithTail switches the session to the tail mode: each channel is fetched
// from the beginning, and only the last n accepted sentences are kept.
func WithTail(n int) Option {
	return func(s *Session) {
		s.cfg.Mode = ModeTail
		if n > 0 {
			s.cfg.Tail = n
		}
	}
}

var (
	ErrNoMessenger  = errors.New("no messenger")
	ErrNoCheckpoint = errors.New("no checkpoint store")
)

// New creates a new session.  Uploader may be nil, if the session is not
// going to publish.
func New(msgr Messenger, up Uploader, cp CheckpointStore, opts ...Option) (*Session, error) {
	if msgr == nil {
		return nil, ErrNoMessenger
	}
	if cp == nil {
		return nil, ErrNoCheckpoint
	}
	s := &Session{
		msgr: msgr,
		up:   up,
		cp:   cp,
		norm: normalize.Default(),
		lg:   slog.Default(),
		cfg:  DefConfig,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("config failed validation: %s", vErr.Translate(OptErrTranslations))
		}
		return nil, err
	}
	return s, nil
}

// Config returns the effective session configuration.
func (s *Session) Config() Config {
	return s.cfg
}
