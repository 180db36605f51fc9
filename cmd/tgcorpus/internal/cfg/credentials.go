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
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ErrMissingCredentials is returned when the required credentials are not
// set.
var ErrMissingCredentials = errors.New("missing credentials")

// Telegram are the platform credentials.
type Telegram struct {
	APIID   int    `env:"TG_API_ID" validate:"required,gt=0"`
	APIHash string `env:"TG_API_HASH" validate:"required"`
	Phone   string `env:"TG_PHONE" validate:"required"`
}

// Hub are the dataset repository credentials.
type Hub struct {
	Token string `env:"HF_TOKEN" validate:"required"`
	Repo  string `env:"HF_REPO" validate:"required,contains=/"`
}

// TelegramCreds returns the platform credentials from the flags.
func TelegramCreds() Telegram {
	return Telegram{APIID: APIID, APIHash: APIHash, Phone: Phone}
}

// HubCreds returns the dataset repository credentials from the flags.
func HubCreds() Hub {
	return Hub{Token: HFToken, Repo: HFRepo}
}

var (
	credValidate = validator.New(validator.WithRequiredStructEnabled())
	credTrans    ut.Translator
)

func init() {
	// error messages name the environment variables.
	credValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	english := en.New()
	credTrans, _ = ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(credValidate, credTrans); err != nil {
		panic(err)
	}
}

// Check validates the credentials struct v, and returns the error that
// lists all the offending variables.
func Check(v any) error {
	err := credValidate.Struct(v)
	if err == nil {
		return nil
	}
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	msgs := make([]string, 0, len(vErr))
	for _, fe := range vErr {
		msgs = append(msgs, fe.Translate(credTrans))
	}
	return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(msgs, "; "))
}
