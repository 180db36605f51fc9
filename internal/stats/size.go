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

package stats

import "fmt"

// ReadableSize returns the size in binary units with one decimal, i.e.
// "512.0 B", "2.0 KB" or "1.0 GB".
func ReadableSize(size int64) string {
	const (
		K = 1 << 10
		M = 1 << 20
		G = 1 << 30
		T = 1 << 40
	)

	switch {
	case size < K:
		return fmt.Sprintf("%.1f B", float64(size))
	case size < M:
		return fmt.Sprintf("%.1f KB", float64(size)/K)
	case size < G:
		return fmt.Sprintf("%.1f MB", float64(size)/M)
	case size < T:
		return fmt.Sprintf("%.1f GB", float64(size)/G)
	default:
		return fmt.Sprintf("%.1f TB", float64(size)/T)
	}
}

// Diff returns "+N" if current is greater than previous, and "0" otherwise.
func Diff(current, previous int64) string {
	if d := current - previous; d > 0 {
		return fmt.Sprintf("+%d", d)
	}
	return "0"
}
