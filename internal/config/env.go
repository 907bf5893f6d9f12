package config

import (
	"fmt"
	"os"
	"strconv"
)

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) error {
		v := os.Getenv(env)
		if v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", env, v)
		}
		*target = b
		sources[field] = SourceEnv
		return nil
	}

	setString("TODO_UI", "ui", &cfg.UI)
	setString("TODO_LIST_FORMAT", "list_format", &cfg.ListFormat)
	setString("TODO_TIME_FORMAT", "time_format", &cfg.TimeFormat)
	setString("TODO_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TODO_LOG_FORMAT", "log_format", &cfg.LogFormat)

	if err := setBool("TODO_CONFIRM_DELETE", "confirm_delete", &cfg.ConfirmDelete); err != nil {
		return err
	}
	if err := setBool("TODO_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps); err != nil {
		return err
	}
	return setBool("TODO_LOG_CALLER", "log_caller", &cfg.LogCaller)
}
