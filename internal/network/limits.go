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

package network

import (
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Limits are the throttling and batching limits for the platform calls.
type Limits struct {
	// Tier is the request rate limit.
	Tier TierLimit `toml:"tier"`
	// Request holds the per-request limits.
	Request RequestLimit `toml:"request"`
}

// TierLimit is the rate limit for the API calls.
type TierLimit struct {
	// PerMinute is the number of requests allowed per minute.
	PerMinute uint `toml:"per_minute" validate:"gte=1,lte=6000"`
	// Burst is the number of requests that may be sent at once.
	Burst uint `toml:"burst" validate:"gte=1,lte=100"`
}

// RequestLimit is the limits for a single request.
type RequestLimit struct {
	// BatchSize is the number of messages requested per history page.
	BatchSize int `toml:"batch_size" validate:"gte=1,lte=100"`
	// Timeout bounds a single request.  Zero means no timeout.
	Timeout time.Duration `toml:"timeout" validate:"gte=0"`
}

// DefLimits is the default limits.  The platform allows about 30 history
// requests per second for a user account, we stay well below that.
var DefLimits = Limits{
	Tier: TierLimit{
		PerMinute: 60,
		Burst:     3,
	},
	Request: RequestLimit{
		BatchSize: 100,
		Timeout:   30 * time.Second,
	},
}

// ErrInvalidLimits is returned by Apply if the limits are invalid.
var ErrInvalidLimits = errors.New("invalid limits")

// Apply sets the non-zero values of other on l.
func (l *Limits) Apply(other Limits) error {
	if other.Request.BatchSize < 0 || other.Request.BatchSize > 100 || other.Request.Timeout < 0 {
		return ErrInvalidLimits
	}
	apply(&l.Tier.PerMinute, other.Tier.PerMinute)
	apply(&l.Tier.Burst, other.Tier.Burst)
	apply(&l.Request.BatchSize, other.Request.BatchSize)
	apply(&l.Request.Timeout, other.Request.Timeout)
	return nil
}

func apply[T comparable](dst *T, src T) {
	var zero T
	if src != zero {
		*dst = src
	}
}

// Limiter returns the rate limiter for the tier.
func (l Limits) Limiter() *rate.Limiter {
	return NewLimiter(l.Tier.PerMinute, l.Tier.Burst)
}
