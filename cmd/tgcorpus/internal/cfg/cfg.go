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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"path/filepath"
	"time"

	"github.com/rusq/osenv/v2"

	"github.com/kaa-nlp/tgcorpus/internal/state"
	"github.com/kaa-nlp/tgcorpus/internal/telegram"
)

// DefRepo is the default dataset repository.
const DefRepo = "Ayperi/kaa_sentences"

var (
	TraceFile   string
	LogFile     string
	JSONHandler bool
	Verbose     bool

	ConfigFile    string
	LocalCacheDir string
	StateFile     string
	SessionFile   string
	Timeout       time.Duration

	// Telegram credentials.
	APIID    int
	APIHash  string
	Phone    string
	Password string

	// Dataset repository credentials.
	HFToken string
	HFRepo  string
)

// FlagMask is the set of base flags to omit.
type FlagMask uint16

const (
	DefaultFlags      FlagMask = 0
	OmitTelegramFlags FlagMask = 1 << iota
	OmitHubFlags
	OmitConfigFlag
	OmitTimeoutFlag

	OmitAll = OmitTelegramFlags |
		OmitHubFlags |
		OmitConfigFlag |
		OmitTimeoutFlag
)

// SetBaseFlags sets base flags on fs, omitting the ones in mask.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `filename`")
	fs.StringVar(&LogFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.StringVar(&LocalCacheDir, "cache-dir", osenv.Value("CACHE_DIR", ""), "cache `directory`, where the state database and the session\nare kept (default: user cache directory)")
	fs.StringVar(&StateFile, "state", osenv.Value("STATE_FILE", ""), "state database `file` (default: "+state.DefFilename+" in the cache directory)")

	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "config", osenv.Value("TGCORPUS_CONFIG", ""), "pipeline configuration `file` in TOML format")
	}
	if mask&OmitTimeoutFlag == 0 {
		fs.DurationVar(&Timeout, "timeout", osenv.Value("TIMEOUT", time.Duration(0)), "network request timeout (default: the value from the config)")
	}
	if mask&OmitTelegramFlags == 0 {
		fs.IntVar(&APIID, "api-id", osenv.Value("TG_API_ID", 0), "Telegram application `id` (environment: TG_API_ID)")
		fs.StringVar(&APIHash, "api-hash", osenv.Secret("TG_API_HASH", ""), "Telegram application `hash` (environment: TG_API_HASH)")
		fs.StringVar(&Phone, "phone", osenv.Secret("TG_PHONE", ""), "account phone `number` (environment: TG_PHONE)")
		fs.StringVar(&Password, "password", osenv.Secret("TG_PASSWORD", ""), "two factor authentication `password`, if enabled\n(environment: TG_PASSWORD)")
		fs.StringVar(&SessionFile, "session", osenv.Value("TG_SESSION_FILE", ""), "session `file` (default: "+telegram.DefSessionFile+" in the cache directory)")
	}
	if mask&OmitHubFlags == 0 {
		fs.StringVar(&HFToken, "hf-token", osenv.Secret("HF_TOKEN", ""), "dataset repository access `token` (environment: HF_TOKEN)")
		fs.StringVar(&HFRepo, "hf-repo", osenv.Value("HF_REPO", DefRepo), "dataset `repository` (environment: HF_REPO)")
	}
}

// StatePath returns the path of the state database.
func StatePath() string {
	if StateFile != "" {
		return StateFile
	}
	return filepath.Join(CacheDir(), state.DefFilename)
}

// SessionPath returns the path of the platform session file.
func SessionPath() string {
	if SessionFile != "" {
		return SessionFile
	}
	return filepath.Join(CacheDir(), telegram.DefSessionFile)
}
