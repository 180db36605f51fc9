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

package normalize

import (
	"fmt"
	"log/slog"
	"strings"
)

// Reason is the outcome of the normalisation.
type Reason uint8

const (
	Accepted Reason = iota
	Empty
	Blocked
	Link
	TooShort

	numReasons
)

var reasonNames = [numReasons]string{
	Accepted: "accepted",
	Empty:    "empty",
	Blocked:  "blocked",
	Link:     "link",
	TooShort: "too_short",
}

func (r Reason) String() string {
	if r >= numReasons {
		return fmt.Sprintf("Reason(%d)", r)
	}
	return reasonNames[r]
}

// Stats counts normalisation outcomes.  Zero value is ready to use.
type Stats [numReasons]int

// Add records the outcome.
func (s *Stats) Add(r Reason) {
	if r < numReasons {
		s[r]++
	}
}

// Merge adds the counts from other.
func (s *Stats) Merge(other Stats) {
	for i := range s {
		s[i] += other[i]
	}
}

// Accepted returns the number of accepted messages.
func (s Stats) Accepted() int {
	return s[Accepted]
}

// Rejected returns the number of rejected messages.
func (s Stats) Rejected() int {
	var n int
	for r := Empty; r < numReasons; r++ {
		n += s[r]
	}
	return n
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, numReasons)
	for r := Accepted; r < numReasons; r++ {
		attrs = append(attrs, slog.Int(r.String(), s[r]))
	}
	return slog.GroupValue(attrs...)
}

func (s Stats) String() string {
	var buf strings.Builder
	for r := Accepted; r < numReasons; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %d", r, s[r])
	}
	return buf.String()
}
