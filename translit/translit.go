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

// Package translit converts text between scripts using a fixed mapping
// table.  Conversion is one-directional and rune based: each source rune
// maps to zero or more target runes, runes missing from the table are copied
// as is.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Table is a transliteration table.  Zero value is an identity table.
type Table struct {
	name string
	m    map[rune]string
}

// NewTable creates a new transliteration table with the given mapping.  The
// mapping is copied.
func NewTable(name string, mapping map[rune]string) *Table {
	m := make(map[rune]string, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}
	return &Table{name: name, m: m}
}

func (t *Table) String() string {
	if t == nil || t.name == "" {
		return "<identity>"
	}
	return t.name
}

// Convert transliterates s.
func (t *Table) Convert(s string) string {
	if t == nil || len(t.m) == 0 {
		return s
	}
	out, _, err := transform.String(t.Transformer(), s)
	if err != nil {
		// transformer never returns errors other than short buffer ones,
		// which transform.String handles.
		return s
	}
	return out
}

// Transformer returns the transform.Transformer for the table, so that it
// can be chained with other transformers, i.e. unicode normalisation.
func (t *Table) Transformer() transform.Transformer {
	return &transformer{t: t}
}

type transformer struct {
	transform.NopResetter
	t *Table
}

// Transform implements transform.Transformer.
//
// Upper-case runes that map onto several letters (Ш -> Sh) are rendered in
// full upper-case if the following rune is upper-case too (ШАХАР -> SHAXAR),
// this requires one rune of look-ahead.
func (tr *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		out, ok := tr.t.m[r]
		if !ok {
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}
		if unicode.IsUpper(r) && utf8.RuneCountInString(out) > 1 {
			rest := src[nSrc+size:]
			if !atEOF && !utf8.FullRune(rest) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if next, _ := utf8.DecodeRune(rest); len(rest) > 0 && unicode.IsUpper(next) {
				out = strings.ToUpper(out)
			}
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
