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
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/internal/telegram"
)

func TestCommand_Name(t *testing.T) {
	tests := []struct {
		usage    string
		wantLong string
		wantName string
	}{
		{"tgcorpus", "", ""},
		{"tgcorpus collect [flags] [channel ...]", "collect", "collect"},
		{"tgcorpus login", "login", "login"},
		{"tgcorpus config new [flags]", "config new", "new"},
	}
	for _, tt := range tests {
		t.Run(tt.usage, func(t *testing.T) {
			c := &Command{UsageLine: tt.usage}
			assert.Equal(t, tt.wantLong, c.LongName())
			assert.Equal(t, tt.wantName, c.Name())
		})
	}
}

func TestCommand_Lookup(t *testing.T) {
	collect := &Command{UsageLine: "tgcorpus collect [flags]"}
	report := &Command{UsageLine: "tgcorpus report [flags]"}
	root := &Command{UsageLine: "tgcorpus", Commands: []*Command{collect, report}}

	assert.Same(t, report, root.Lookup("report"))
	assert.Nil(t, root.Lookup("export"))
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StatusCode
	}{
		{"nil", nil, SNoError},
		{"explicit", NewError(SInvalidParameters, assert.AnError), SInvalidParameters},
		{"wrapped explicit", fmt.Errorf("x: %w", NewError(SInitializationError, assert.AnError)), SInitializationError},
		{"cancelled", fmt.Errorf("collect: %w", context.Canceled), SCancelled},
		{"declined", ErrOpCancelled, SCancelled},
		{"not authorized", fmt.Errorf("run: %w", telegram.ErrNotAuthorized), SAuthError},
		{"hub unauthorized", &hub.APIError{StatusCode: 401}, SAuthError},
		{"hub server error", &hub.APIError{StatusCode: 500}, SApplicationError},
		{"other", assert.AnError, SApplicationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestStatusCode_String(t *testing.T) {
	assert.Equal(t, "AuthError", SAuthError.String())
	assert.Equal(t, "StatusCode(42)", StatusCode(42).String())
}
