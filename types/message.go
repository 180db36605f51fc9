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

package types

import "slices"

// RawMessage is a message as received from the platform, before any
// filtering.  IDs are unique within a channel and grow monotonically.
type RawMessage struct {
	ID      int64  `json:"id"`
	Text    string `json:"text,omitempty"`
	Channel string `json:"channel"`
}

// HasText returns true if the message carries any text.  Service messages
// and media without captions have none.
func (m RawMessage) HasText() bool {
	return m.Text != ""
}

// SortMessages sorts messages in ascending ID order.
func SortMessages(mm []RawMessage) {
	slices.SortFunc(mm, func(a, b RawMessage) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
