package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultUI            = UIMenu
	DefaultListFormat    = ListFormatText
	DefaultTimeFormat    = "2006-01-02 15:04:05"
	DefaultConfirmDelete = true
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)

// UI modes.
const (
	UIMenu = "menu"
	UITUI  = "tui"
)

// List formats.
const (
	ListFormatText = "text"
	ListFormatJSON = "json"
)

// Config holds the full configuration for todo.
type Config struct {
	// Presentation
	UI            string `toml:"ui"`
	ListFormat    string `toml:"list_format"`
	TimeFormat    string `toml:"time_format"`
	ConfirmDelete bool   `toml:"confirm_delete"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// configFields returns the configurable keys in display order.
func configFields() []string {
	return []string{
		"ui",
		"list_format",
		"time_format",
		"confirm_delete",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Value returns the string form of a config key, or "" for unknown keys.
func (c *Config) Value(key string) string {
	switch key {
	case "ui":
		return c.UI
	case "list_format":
		return c.ListFormat
	case "time_format":
		return c.TimeFormat
	case "confirm_delete":
		return strconv.FormatBool(c.ConfirmDelete)
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return strconv.FormatBool(c.LogTimestamps)
	case "log_caller":
		return strconv.FormatBool(c.LogCaller)
	}
	return ""
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	var problems []string
	check := func(key, value string, allowed ...string) {
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		problems = append(problems, fmt.Sprintf("%s: invalid value %q (want %s)", key, value, strings.Join(allowed, "|")))
	}

	check("ui", c.UI, UIMenu, UITUI)
	check("list_format", c.ListFormat, ListFormatText, ListFormatJSON)
	check("log_level", c.LogLevel, "debug", "info", "warn", "warning", "error")
	check("log_format", c.LogFormat, "text", "json", "logfmt")
	if strings.TrimSpace(c.TimeFormat) == "" {
		problems = append(problems, "time_format: must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.UI = DefaultUI
	cfg.ListFormat = DefaultListFormat
	cfg.TimeFormat = DefaultTimeFormat
	cfg.ConfirmDelete = DefaultConfirmDelete
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

// Entry is one resolved config value with its origin.
type Entry struct {
	Key    string
	Value  string
	Source ConfigSource
}

// Entries returns every config value with its source, in display order.
func (cws *ConfigWithSources) Entries() []Entry {
	entries := make([]Entry, 0, len(configFields()))
	for _, key := range configFields() {
		source := cws.Sources[key]
		if source == "" {
			source = SourceDefault
		}
		entries = append(entries, Entry{Key: key, Value: cws.Config.Value(key), Source: source})
	}
	return entries
}
