package config

import (
	"os"
	"time"
)

// parseEnv overlays cfg with values from the environment. The entry point
// loads a .env file first, so these also pick up dotenv values. Unparsable
// durations are ignored rather than fatal.
func parseEnv(cfg *Config) {
	if v := os.Getenv("TRACKER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRACKER_WATCH_DEBOUNCE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.WatchDebounce = d
		}
	}
}
