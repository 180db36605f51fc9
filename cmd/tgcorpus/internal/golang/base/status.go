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
	"errors"

	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/internal/telegram"
)

// StatusCode is the code returned to the OS.
//
//go:generate stringer -type StatusCode -trimprefix S
type StatusCode uint8

// Status codes returned by the main executable.
const (
	SNoError StatusCode = iota
	SGenericError
	SHelpRequested
	SInvalidParameters
	SAuthError
	SInitializationError
	SApplicationError
	SCancelled
)

// Error is the error with the status code.
type Error struct {
	Code StatusCode
	Err  error
}

// NewError wraps err with the status code.
func NewError(code StatusCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf returns the status code for the error returned by the command.
func StatusOf(err error) StatusCode {
	if err == nil {
		return SNoError
	}
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Code
	}
	var apiErr *hub.APIError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, ErrOpCancelled):
		return SCancelled
	case errors.Is(err, telegram.ErrNotAuthorized):
		return SAuthError
	case errors.As(err, &apiErr) && apiErr.IsAuth():
		return SAuthError
	default:
		return SApplicationError
	}
}
