package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags. Flags are bound directly to cfg
// with the values resolved so far as defaults, so only explicitly set flags
// change anything.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}

	// Presentation
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Interface for the run command (menu, tui)")
	fs.StringVar(&cfg.ListFormat, "list-format", cfg.ListFormat, "Task list rendering (text, json)")
	fs.StringVar(&cfg.TimeFormat, "time-format", cfg.TimeFormat, "Go time layout for creation timestamps")
	fs.BoolVar(&cfg.ConfirmDelete, "confirm-delete", cfg.ConfirmDelete, "Ask for confirmation before deleting a task")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"ui":             "ui",
		"list-format":    "list_format",
		"time-format":    "time_format",
		"confirm-delete": "confirm_delete",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}

	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})

	return nil
}
