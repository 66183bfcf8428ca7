package config

import (
	"time"

	"github.com/khadija-altaf/folio/internal/assets"
)

// ConfigFile is the default configuration file name.
const ConfigFile = ".folio.yml"

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "FOLIO_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		DataDir:        ".folio",
		AssetsDir:      "public",
		AssetPatterns:  append([]string(nil), assets.DefaultPatterns...),
		SessionIdleTTL: 30 * time.Minute,
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Timing: TimingConfig{
			TypingInterval: 50 * time.Millisecond,
			SubmitDelay:    1500 * time.Millisecond,
			SubmittedReset: 3 * time.Second,
			ToastTTL:       5 * time.Second,
			Transition:     500 * time.Millisecond,
		},
	}
}
