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

// Package normalize turns raw channel messages into clean sentences, or
// rejects them.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kaa-nlp/tgcorpus/translit"
)

// Config is the normaliser configuration.  Word lists are matched as
// case-insensitive substrings.
type Config struct {
	// BlockedWords are the words that reject the message, i.e. channel self
	// references or other platform names.
	BlockedWords []string `toml:"blocked_words"`
	// URLMarkers are the substrings that identify links and handles.
	URLMarkers []string `toml:"url_markers"`
	// MinTokens is the minimum number of whitespace separated tokens in the
	// cleaned sentence.
	MinTokens int `toml:"min_tokens" validate:"gte=1"`
}

// DefaultConfig is the configuration used when none is given.  "http"
// marker covers "https" as well.
var DefaultConfig = Config{
	BlockedWords: []string{"nasiyatuz", "instagram", "telegram", "youtube"},
	URLMarkers:   []string{"http", "www.", ".com", ".uz", ".ru", ".org", "@"},
	MinTokens:    3,
}

// reStrip matches everything but word characters, whitespace and the
// allowed punctuation.
var reStrip = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}.,!?-]+`)

// Normalizer cleans the sentences.  It is safe for concurrent use.
type Normalizer struct {
	blocked []string
	markers []string
	min     int
	tbl     *translit.Table
}

// New creates a new Normalizer.  Transliteration table may be nil, then the
// text is left in the source script.
func New(cfg Config, tbl *translit.Table) *Normalizer {
	if cfg.MinTokens <= 0 {
		cfg.MinTokens = DefaultConfig.MinTokens
	}
	return &Normalizer{
		blocked: lowerAll(cfg.BlockedWords),
		markers: lowerAll(cfg.URLMarkers),
		min:     cfg.MinTokens,
		tbl:     tbl,
	}
}

// Default returns the normaliser with default configuration that produces
// Karakalpak Latin sentences.
func Default() *Normalizer {
	return New(DefaultConfig, translit.KarakalpakLatin)
}

func lowerAll(ss []string) []string {
	ret := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

// Normalize returns the clean sentence and true, or an empty string and
// false if the text was rejected.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	s, reason := n.Check(raw)
	return s, reason == Accepted
}

// Check is like Normalize, but returns the reason for the rejection.
func (n *Normalizer) Check(raw string) (string, Reason) {
	if strings.TrimSpace(raw) == "" {
		return "", Empty
	}
	s := norm.NFC.String(raw)
	if r := n.screen(s); r != Accepted {
		return "", r
	}

	// tokens are counted after transliteration, standalone "ь" or "ъ"
	// convert to nothing.
	s = n.tbl.Convert(reStrip.ReplaceAllString(s, ""))
	tokens := strings.Fields(s)
	if len(tokens) < n.min {
		return "", TooShort
	}
	return strings.Join(tokens, " "), Accepted
}

// screen checks s for blocked words and links.
func (n *Normalizer) screen(s string) Reason {
	lower := strings.ToLower(s)
	for _, w := range n.blocked {
		if strings.Contains(lower, w) {
			return Blocked
		}
	}
	for _, m := range n.markers {
		if strings.Contains(lower, m) {
			return Link
		}
	}
	return Accepted
}
