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

// Package network contains the throttling primitives for the platform
// calls.
package network

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"time"

	"golang.org/x/time/rate"
)

// Throttled waits for the limiter and runs fn once, with the context bounded
// by timeout, if timeout is positive.  Failed calls are not retried.
func Throttled(ctx context.Context, lim *rate.Limiter, timeout time.Duration, fn func(context.Context) error) error {
	var err error
	trace.WithRegion(ctx, "Throttled.wait", func() {
		err = lim.Wait(ctx)
	})
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := fn(ctx); err != nil {
		trace.Logf(ctx, "error", "Throttled: %s", err)
		slog.DebugContext(ctx, "call failed", "error", err)
		return fmt.Errorf("callback error: %w", err)
	}
	return nil
}
