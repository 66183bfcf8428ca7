package config

import "time"

// LogFormat selects how log lines are written.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Port            int           `yaml:"port" koanf:"port"`
	DataDir         string        `yaml:"data_dir" koanf:"data_dir"`
	AssetsDir       string        `yaml:"assets_dir" koanf:"assets_dir"`
	AssetPatterns   []string      `yaml:"asset_patterns" koanf:"asset_patterns"`
	CatalogFile     string        `yaml:"catalog_file" koanf:"catalog_file"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionIdleTTL  time.Duration `yaml:"session_idle_ttl" koanf:"session_idle_ttl"`
	Log             LogConfig     `yaml:"log" koanf:"log"`
	Timing          TimingConfig  `yaml:"timing" koanf:"timing"`
	Contact         ContactConfig `yaml:"contact" koanf:"contact"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// TimingConfig holds the UI timings.
type TimingConfig struct {
	TypingInterval time.Duration `yaml:"typing_interval" koanf:"typing_interval"`
	SubmitDelay    time.Duration `yaml:"submit_delay" koanf:"submit_delay"`
	SubmittedReset time.Duration `yaml:"submitted_reset" koanf:"submitted_reset"`
	ToastTTL       time.Duration `yaml:"toast_ttl" koanf:"toast_ttl"`
	Transition     time.Duration `yaml:"transition" koanf:"transition"`
}

// ContactConfig holds contact form settings.
type ContactConfig struct {
	// SimulateFailure makes every submission fail, to exercise the error
	// toast.
	SimulateFailure bool `yaml:"simulate_failure" koanf:"simulate_failure"`
}
