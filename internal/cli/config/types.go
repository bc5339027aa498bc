// Package config loads shoptrends settings.
//
// Values are layered from built-in defaults, an optional shoptrends.yaml,
// SHOPTRENDS_* environment variables and explicitly set command-line flags,
// in increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	Source       string `koanf:"source"`
	OutDir       string `koanf:"out_dir"`
	ImageFormat  string `koanf:"image_format"`
	OutputFormat string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`
	LogFormat    string `koanf:"log_format"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSource      = "csv"
	DefaultOutDir      = "figures"
	DefaultImageFormat = "png"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Source:       DefaultSource,
		OutDir:       DefaultOutDir,
		ImageFormat:  DefaultImageFormat,
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}
