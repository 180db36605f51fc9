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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gotd/td/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	data    []byte
	loadErr error
	reset   bool
}

func (s *fakeStorage) LoadSession(context.Context) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.data == nil {
		return nil, session.ErrNotFound
	}
	return s.data, nil
}

func (s *fakeStorage) StoreSession(_ context.Context, data []byte) error {
	s.data = data
	return nil
}

func (s *fakeStorage) Reset() error {
	s.data = nil
	s.reset = true
	return nil
}

func Test_replaceSession(t *testing.T) {
	yes := func(string) bool { return true }
	no := func(string) bool { return false }
	never := func(string) bool { t.Error("unexpected question"); return false }

	tests := []struct {
		name      string
		st        *fakeStorage
		force     bool
		yesno     func(string) bool
		want      bool
		wantReset bool
	}{
		{"no session", &fakeStorage{}, false, never, true, false},
		{"exists, replace", &fakeStorage{data: []byte("x")}, false, yes, true, true},
		{"exists, keep", &fakeStorage{data: []byte("x")}, false, no, false, false},
		{"exists, forced", &fakeStorage{data: []byte("x")}, true, never, true, true},
		{"unreadable", &fakeStorage{loadErr: assert.AnError}, false, never, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := replaceSession(t.Context(), tt.st, tt.force, tt.yesno)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReset, tt.st.reset)
		})
	}
}

func TestTermPrompter(t *testing.T) {
	newPrompter := func(input string) (*termPrompter, *bytes.Buffer) {
		var w bytes.Buffer
		return &termPrompter{r: bufio.NewReader(strings.NewReader(input)), w: &w}, &w
	}
	t.Run("code", func(t *testing.T) {
		p, w := newPrompter(" 12345 \n")
		got, err := p.Code(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "12345", got)
		assert.Equal(t, "Enter the login code: ", w.String())
	})
	t.Run("code without newline", func(t *testing.T) {
		p, _ := newPrompter("12345")
		got, err := p.Code(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "12345", got)
	})
	t.Run("empty code", func(t *testing.T) {
		p, _ := newPrompter("\n")
		_, err := p.Code(t.Context())
		assert.ErrorIs(t, err, errEmpty)
	})
	t.Run("password, not a terminal", func(t *testing.T) {
		p, _ := newPrompter("secret\n")
		got, err := p.Password(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "secret", got)
	})
	t.Run("password, terminal", func(t *testing.T) {
		p, w := newPrompter("")
		p.readPassword = func() (string, error) { return "hunter2", nil }
		got, err := p.Password(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "hunter2", got)
		assert.Equal(t, "Enter the password: ", w.String())
	})
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		p, _ := newPrompter("12345\n")
		_, err := p.Code(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
