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

package base

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNoWR(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		wantW string
	}{
		{"yes", "y\n", true, "reset? (y/N) "},
		{"yes in full", "Yes\n", true, "reset? (y/N) "},
		{"no", "n\n", false, "reset? (y/N) "},
		{"empty is no", "\n", false, "reset? (y/N) "},
		{"eof is no", "", false, "reset? (y/N) "},
		{
			"asks again",
			"yep\nn\n",
			false,
			"reset? (y/N) Please answer yes or no and press Enter or Return.\nreset? (y/N) ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			got := YesNoWR(w, strings.NewReader(tt.input), "reset")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantW, w.String())
		})
	}
}
