package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by TODO_* environment variables or CLI flags

# Interface used by "todo run": menu or tui
ui = "menu"

# How "View All Tasks" renders the list: text or json
list_format = "text"

# Go time layout for creation timestamps
time_format = "2006-01-02 15:04:05"

# Ask "Are you sure? (y/n)" before deleting a task
confirm_delete = true

# Logging (written to stderr)
log_level = "warn"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
