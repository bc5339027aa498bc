package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/shoptrends/internal/chart"
	"github.com/leapstack-labs/shoptrends/internal/cli/output"
	"github.com/leapstack-labs/shoptrends/internal/dataset"
)

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks that every enumerated setting holds a known value.
func (c *Config) Validate() error {
	if !slices.Contains(dataset.Sources, dataset.Source(c.Source)) {
		return fmt.Errorf("unknown source %q (available: %s)", c.Source, join(dataset.Sources))
	}
	if c.OutDir == "" {
		return fmt.Errorf("out_dir is required")
	}
	if !slices.Contains(chart.Formats, chart.Format(c.ImageFormat)) {
		return fmt.Errorf("unknown image_format %q (available: %s)", c.ImageFormat, join(chart.Formats))
	}
	if mode := strings.ToLower(c.OutputFormat); mode != "md" && !slices.Contains(output.Modes, output.OutputMode(mode)) {
		return fmt.Errorf("unknown output %q (available: %s)", c.OutputFormat, join(output.Modes))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("unknown log_level %q (available: %s)", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("unknown log_format %q (available: %s)", c.LogFormat, strings.Join(logFormats, ", "))
	}
	return nil
}

func join[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return strings.Join(s, ", ")
}
