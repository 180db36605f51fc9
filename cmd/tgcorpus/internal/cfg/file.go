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

package cfg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/kaa-nlp/tgcorpus"
	"github.com/kaa-nlp/tgcorpus/internal/hub"
	"github.com/kaa-nlp/tgcorpus/internal/network"
	"github.com/kaa-nlp/tgcorpus/normalize"
)

// ErrConfigInvalid is returned when the config file fails validation.
var ErrConfigInvalid = errors.New("config validation failed")

// File is the pipeline configuration file.
type File struct {
	// Channels are the channel usernames to collect, in order.
	Channels  []string         `toml:"channels" validate:"min=1,dive,required"`
	Corpus    tgcorpus.Config  `toml:"corpus"`
	Normalize normalize.Config `toml:"normalize"`
	Limits    network.Limits   `toml:"limits"`
	Hub       HubFile          `toml:"hub"`
}

// HubFile is the dataset repository section of the config file.
type HubFile struct {
	Endpoint string `toml:"endpoint" validate:"omitempty,url"`
	Revision string `toml:"revision" validate:"required"`
}

// DefFile is the configuration used when there's no config file.
var DefFile = File{
	Channels:  []string{"nasiyatuz"},
	Corpus:    tgcorpus.DefConfig,
	Normalize: normalize.DefaultConfig,
	Limits:    network.DefLimits,
	Hub: HubFile{
		Endpoint: hub.DefEndpoint,
		Revision: hub.DefRevision,
	},
}

// Pipeline is the effective pipeline configuration, initialised by
// LoadFile.
var Pipeline = DefFile

// LoadFile loads the config file into Pipeline.  Empty filename leaves the
// defaults in place.
func LoadFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := ReadFile(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	Pipeline = p
	return nil
}

// ReadFile reads the config from r on top of the defaults and validates it.
// Unknown keys are rejected.
func ReadFile(r io.Reader) (File, error) {
	p := DefFile
	// slices are replaced by the decoder, not merged.
	p.Channels = nil
	p.Normalize.BlockedWords = nil
	p.Normalize.URLMarkers = nil

	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return File{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return File{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if !md.IsDefined("channels") {
		p.Channels = DefFile.Channels
	}
	if !md.IsDefined("normalize", "blocked_words") {
		p.Normalize.BlockedWords = DefFile.Normalize.BlockedWords
	}
	if !md.IsDefined("normalize", "url_markers") {
		p.Normalize.URLMarkers = DefFile.Normalize.URLMarkers
	}
	if err := p.Validate(); err != nil {
		return File{}, err
	}
	return p, nil
}

// Validate validates the config, the error lists all problems with the
// translated messages.
func (f File) Validate() error {
	err := tgcorpus.Validate(f)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	msgs := make([]string, 0, len(vErr))
	for _, fe := range vErr {
		msgs = append(msgs, fe.Translate(tgcorpus.OptErrTranslations))
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(msgs, "; "))
}

// WriteFile writes the config to w in TOML format.
func WriteFile(w io.Writer, f File) error {
	return toml.NewEncoder(w).Encode(f)
}
