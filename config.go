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

package tgcorpus

// In this file: session config.

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Mode is the collection mode.
type Mode string

const (
	// ModeIncremental resumes each channel after its checkpoint.
	ModeIncremental Mode = "incremental"
	// ModeTail ignores the checkpoints and keeps the last Tail sentences of
	// each channel.
	ModeTail Mode = "tail"
)

// DefTail is the default number of sentences kept per channel in the tail
// mode.
const DefTail = 250

// DefRepoPath is the default path of the corpus file in the dataset
// repository.
const DefRepoPath = "telegram_sentences.txt"

// Config is the session configuration.
type Config struct {
	Mode     Mode   `toml:"mode" validate:"oneof=incremental tail"`
	Tail     int    `toml:"tail" validate:"gte=1,lte=100000"`
	RepoPath string `toml:"repo_path" validate:"required"`
}

// DefConfig is the default configuration.
var DefConfig = Config{
	Mode:     ModeIncremental,
	Tail:     DefTail,
	RepoPath: DefRepoPath,
}

// apply sets the non-zero values of other on c.
func (c *Config) apply(other Config) {
	if other.Mode != "" {
		c.Mode = other.Mode
	}
	if other.Tail != 0 {
		c.Tail = other.Tail
	}
	if other.RepoPath != "" {
		c.RepoPath = other.RepoPath
	}
}

// Validate validates the config.
func (c Config) Validate() error {
	return Validate(c)
}

// tailCap returns the number of sentences to keep per channel, 0 means all.
func (c Config) tailCap() int {
	if c.Mode == ModeTail {
		return c.Tail
	}
	return 0
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	// OptErrTranslations is the translator for the validation errors.
	OptErrTranslations ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	OptErrTranslations, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, OptErrTranslations); err != nil {
		panic(err)
	}
}

// Validate validates the struct v with the "validate" tags.
func Validate(v any) error {
	return validate.Struct(v)
}
