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

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_initTrace(t *testing.T) {
	t.Run("initialises trace file", func(t *testing.T) {
		testTraceFile := filepath.Join(t.TempDir(), "trace.out")
		stop := initTrace(testTraceFile)
		t.Cleanup(stop)
		assert.FileExists(t, testTraceFile)
	})
	t.Run("no file, no trace", func(t *testing.T) {
		stop := initTrace("")
		assert.NotNil(t, stop)
		stop()
	})
}

func Test_initLog(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	t.Run("json to file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "tgcorpus.log")
		lg, err := initLog(name, true, false)
		require.NoError(t, err)
		lg.Info("hello", "channel", "nasiyatuz")
		lg.Debug("not written")

		data, err := os.ReadFile(name)
		require.NoError(t, err)
		var rec map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "nasiyatuz", rec["channel"])
	})
	t.Run("verbose", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "tgcorpus.log")
		lg, err := initLog(name, false, true)
		require.NoError(t, err)
		lg.Debug("debug message")
		data, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=\"debug message\"")
	})
	t.Run("bad file", func(t *testing.T) {
		_, err := initLog(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), false, false)
		assert.Error(t, err)
	})
}
