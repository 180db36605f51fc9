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

package help

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/cfg"
	"github.com/kaa-nlp/tgcorpus/cmd/tgcorpus/internal/golang/base"
)

func noop(context.Context, *base.Command, []string) error { return nil }

func testTree(t *testing.T) {
	t.Helper()
	cmdRun := &base.Command{
		UsageLine:  "tgcorpus run [flags]",
		Short:      "runs things",
		Long:       "Run runs things.",
		Run:        noop,
		FlagMask:   cfg.OmitAll,
		PrintFlags: true,
	}
	cmdRun.Flag.Bool("dry", false, "dry run")
	old := base.Tgcorpus.Commands
	base.Tgcorpus.Commands = []*base.Command{cmdRun}
	t.Cleanup(func() { base.Tgcorpus.Commands = old })
}

func TestHelp(t *testing.T) {
	testTree(t)
	t.Run("root", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Help(&buf, nil))
		out := buf.String()
		assert.Contains(t, out, "Usage:\n\n\ttgcorpus <command> [arguments]")
		assert.Contains(t, out, "\trun         runs things")
		assert.Contains(t, out, `Use "tgcorpus help <command>"`)
	})
	t.Run("command", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Help(&buf, []string{"run"}))
		out := buf.String()
		assert.Contains(t, out, "usage: tgcorpus run [flags]\n\nRun runs things.\n")
		assert.Contains(t, out, "-dry")
		assert.Contains(t, out, "-log-json")
	})
	t.Run("unknown topic", func(t *testing.T) {
		var buf bytes.Buffer
		err := Help(&buf, []string{"run", "fast"})
		require.Error(t, err)
		assert.Equal(t, base.SInvalidParameters, base.StatusOf(err))
		assert.Contains(t, err.Error(), "Run 'tgcorpus help run'")
	})
}

func Test_capitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Úpload", capitalize("úpload"))
}
