// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/syedahafsa12/hackathon2/internal/config"
	"github.com/syedahafsa12/hackathon2/internal/logging"
	"github.com/syedahafsa12/hackathon2/internal/menu"
	"github.com/syedahafsa12/hackathon2/internal/todo"
	"github.com/syedahafsa12/hackathon2/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// No args, or a leading flag, means the default command.
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cws.Config, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cws.Config, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand starts the interface selected by cfg.UI.
func runCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if cfg.UI == config.UITUI {
		return tuiCommand(ctx, cfg, nil)
	}

	logger := newLogger(cfg)
	store := todo.NewStore(todo.WithLogger(logger))
	logger.Debug("starting menu", "list_format", cfg.ListFormat)

	session := menu.New(store, stdin, stdout,
		menu.WithLogger(logger),
		menu.WithJSONList(cfg.ListFormat == config.ListFormatJSON),
		menu.WithTimeFormat(cfg.TimeFormat),
		menu.WithConfirmDelete(cfg.ConfirmDelete),
	)
	return session.Run(ctx)
}

// tuiCommand launches the full-screen interface.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if !ui.IsTTY(stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	logger := newLogger(cfg)
	store := todo.NewStore(todo.WithLogger(logger))
	logger.Debug("starting tui")

	return ui.RunTUI(ctx, store,
		ui.WithLogger(logger),
		ui.WithTimeFormat(cfg.TimeFormat),
	)
}

// configCommand prints the effective configuration.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todo config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *example {
		_, err := io.WriteString(stdout, config.ExampleConfig())
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, e := range cws.Entries() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, e.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "\nNo config files found.")
		return nil
	}
	fmt.Fprintln(stdout, "\nConfig files:")
	for _, f := range cws.Files {
		fmt.Fprintf(stdout, "  %s\n", f)
	}
	return nil
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "todo version %s\n", Version)
	return nil
}

func newLogger(cfg *config.Config) *log.Logger {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return logging.New(stderr, opts)
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Todo - an in-memory task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run           Interactive menu (default command)")
	fmt.Fprintln(w, "  tui           Launch terminal UI")
	fmt.Fprintln(w, "  config        Show effective configuration and its sources")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options (use with 'config' command):")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tasks live only for the lifetime of the process.")
}
