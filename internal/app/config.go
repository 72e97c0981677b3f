package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leg100/tabdash/internal/executor"
	"github.com/leg100/tabdash/internal/logging"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type config struct {
	// ConfigPath is the path to the file configuring the tabs.
	ConfigPath string
	Timeout    time.Duration
	LogFile    string
	Debug      bool
	Version    bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. defaults
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	configDir, err := os.UserConfigDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's config directory: %w", err)
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's cache directory: %w", err)
	}

	fs := ff.NewFlagSet("tabdash")
	fs.StringVar(&cfg.ConfigPath, 'c', "config", filepath.Join(configDir, "tabdash", "config.yml"), "Path to the tabs config file.")
	fs.DurationVar(&cfg.Timeout, 't', "timeout", executor.DefaultTimeout, "Maximum time a tab's command may run. Zero means no limit.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", filepath.Join(cacheDir, "tabdash", "tabdash.log"), "Path to the log file.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABDASH"),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	if cfg.Timeout < 0 {
		return config{}, fmt.Errorf("invalid timeout: %s: must not be negative", cfg.Timeout)
	}
	return cfg, nil
}
