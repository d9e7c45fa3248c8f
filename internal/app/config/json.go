package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/flagx"
	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the debounce either as a string like
// "200ms" or as integer nanoseconds.
type JsonConfig struct {
	DataDir       string         `json:"data_dir"`
	LogLevel      string         `json:"log_level"`
	WatchDebounce timex.Duration `json:"watch_debounce"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flags. No file flag means no JSON pass. Only fields present in
// the file override the current values. Read or unmarshal errors panic;
// a broken explicit config should not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.WatchDebounce.Duration != 0 {
		cfg.WatchDebounce = time.Duration(jc.WatchDebounce.Duration)
	}
}
