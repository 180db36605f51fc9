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

package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gotd/td/session"
	"github.com/rusq/encio"
)

// DefSessionFile is the default session filename.
const DefSessionFile = "telegram.session"

// container is the interface to operate with the session container.
type container interface {
	Create(filename string) (io.WriteCloser, error)
	Open(filename string) (io.ReadCloser, error)
}

// encryptedFile is the encrypted file container.
type encryptedFile struct{}

func (encryptedFile) Open(filename string) (io.ReadCloser, error) {
	return encio.Open(filename)
}

func (encryptedFile) Create(filename string) (io.WriteCloser, error) {
	return encio.Create(filename)
}

// FileStorage is the session storage that keeps the session encrypted in a
// file.  It implements session.Storage.
type FileStorage struct {
	mu       sync.Mutex
	filename string
	ct       container
}

var _ session.Storage = (*FileStorage)(nil)

// NewFileStorage returns the encrypted session storage in the file.
func NewFileStorage(filename string) *FileStorage {
	return &FileStorage{filename: filename, ct: encryptedFile{}}
}

// LoadSession loads the session.  It returns session.ErrNotFound if there
// is no stored session.
func (s *FileStorage) LoadSession(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	f, err := s.ct.Open(s.filename)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if len(data) == 0 {
		return nil, session.ErrNotFound
	}
	return data, nil
}

// StoreSession encrypts and stores the session.
func (s *FileStorage) StoreSession(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.filename); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := s.ct.Create(s.filename)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write session: %w", err)
	}
	return f.Close()
}

// Reset removes the stored session.
func (s *FileStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
