// Package config assembles runtime settings for the tracker CLI from
// defaults, an optional JSON file, environment variables, and flags.
// Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the tracker CLI.
//
// Fields:
//   - DataDir: directory holding the persisted document.
//   - LogLevel: minimum level for structured logs (debug/info/warn/error).
//   - WatchDebounce: how long the document watcher coalesces change events.
type Config struct {
	DataDir       string
	LogLevel      string
	WatchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LogLevel = "info"
	c.WatchDebounce = 200 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
