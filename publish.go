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

package tgcorpus

import (
	"context"
	"errors"
	"fmt"
	"path"
	"runtime/trace"
	"strings"

	"github.com/kaa-nlp/tgcorpus/internal/hub"
)

// ErrNoUploader is returned by Publish if the session has no uploader.
var ErrNoUploader = errors.New("no uploader")

// UploadResult is the result of Publish.
type UploadResult struct {
	// Skipped is true if the batch was empty, and nothing was uploaded.
	Skipped   bool
	Sentences int
	Bytes     int
	Path      string
	Commit    hub.CommitInfo
}

// CommitMessage returns the commit message for n sentences.
func CommitMessage(n int) string {
	return fmt.Sprintf("Add %d clean Latin Karakalpak sentences", n)
}

// Serialize returns the batch as text, one sentence per line.
func Serialize(batch []string) []byte {
	var sb strings.Builder
	for _, s := range batch {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Publish uploads the batch to the dataset repository.  Empty batch is not
// an error, the upload is skipped.  If the session has a filesystem, the
// local copy of the uploaded file is written there first.
func (s *Session) Publish(ctx context.Context, batch []string) (UploadResult, error) {
	ctx, task := trace.NewTask(ctx, "Publish")
	defer task.End()

	if len(batch) == 0 {
		s.lg.InfoContext(ctx, "no new sentences, nothing to upload")
		return UploadResult{Skipped: true}, nil
	}
	if s.up == nil {
		return UploadResult{}, ErrNoUploader
	}
	data := Serialize(batch)
	res := UploadResult{
		Sentences: len(batch),
		Bytes:     len(data),
		Path:      s.cfg.RepoPath,
	}
	if _, err := s.saveLocal(ctx, data); err != nil {
		return res, err
	}
	ci, err := s.up.Upload(ctx, s.cfg.RepoPath, data, CommitMessage(len(batch)))
	if err != nil {
		return res, fmt.Errorf("upload: %w", err)
	}
	res.Commit = ci
	s.lg.InfoContext(ctx, "uploaded", "path", res.Path, "sentences", res.Sentences, "bytes", res.Bytes)
	return res, nil
}

// SaveLocal writes the local copy of the batch, the way Publish does, without
// uploading it.  It returns the file name, or an empty string, if the session
// has no filesystem or the batch is empty.
func (s *Session) SaveLocal(ctx context.Context, batch []string) (string, error) {
	if len(batch) == 0 {
		return "", nil
	}
	return s.saveLocal(ctx, Serialize(batch))
}

func (s *Session) saveLocal(ctx context.Context, data []byte) (string, error) {
	if s.fs == nil {
		return "", nil
	}
	name := path.Base(s.cfg.RepoPath)
	if err := s.fs.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("write local copy: %w", err)
	}
	s.lg.DebugContext(ctx, "local copy written", "name", name)
	return name, nil
}
