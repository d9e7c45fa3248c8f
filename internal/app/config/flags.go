package config

import (
	"flag"
	"os"

	"github.com/kulkarni-aditi12/student-mooc-tracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string     data directory (default from Config)
//	-l string     log level (default from Config)
//	-w duration   watch debounce, e.g. 200ms (default from Config)
//
// Arguments are filtered to the flags handled here via flagx.FilterArgs so
// the config-file flags parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.WatchDebounce, "w", cfg.WatchDebounce, "watch debounce interval")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
