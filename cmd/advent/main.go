// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// advent is a terminal advent calendar. Twelve day buttons unlock one
// per day from a configured start date; opening a day reveals its gift
// and records the day in a progress file so it stays opened across
// restarts.
//
// Configuration comes from the file named by --config or ADVENT_CONFIG
// (YAML or JSONC). Flags override individual settings. With no config,
// the calendar starts on 2025-12-13 and progress is kept in
// completed_days.txt next to the executable.
//
// The progress file is watched while the calendar runs. Edits made by
// another process (or another advent instance) show up live.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/advent/lib/advent"
	"github.com/bureau-foundation/advent/lib/adventui"
	"github.com/bureau-foundation/advent/lib/calendar"
	"github.com/bureau-foundation/advent/lib/clock"
	"github.com/bureau-foundation/advent/lib/config"
	"github.com/bureau-foundation/advent/lib/progress"
	"github.com/bureau-foundation/advent/lib/tui"
	"github.com/bureau-foundation/advent/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	configPath   string
	progressFile string
	startDate    string
	logOutput    string
	showVersion  bool
	showHelp     bool
}

func parseFlags(args []string) (options, *pflag.FlagSet, error) {
	var parsed options
	flagSet := pflag.NewFlagSet("advent", pflag.ContinueOnError)
	flagSet.SetOutput(os.Stderr)
	flagSet.StringVar(&parsed.configPath, "config", "", "config file, YAML or JSONC (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&parsed.progressFile, "progress-file", "", "file recording opened days (default: "+config.DefaultProgressFilename+" next to the executable)")
	flagSet.StringVar(&parsed.startDate, "start-date", "", "date day 1 unlocks, YYYY-MM-DD (default: "+calendar.FormatDate(calendar.DefaultStart)+")")
	flagSet.StringVar(&parsed.logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolVar(&parsed.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&parsed.showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			parsed.showHelp = true
			return parsed, flagSet, nil
		}
		return parsed, flagSet, validationError("%w", err).
			WithHint("Run 'advent --help' for usage.")
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return parsed, flagSet, validationError("unexpected argument: %s", remaining[0]).
			WithHint("Run 'advent --help' for usage.")
	}
	return parsed, flagSet, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(parsed options) (*config.Config, error) {
	cfg, err := config.Load(parsed.configPath)
	if err != nil {
		return nil, validationError("%w", err).
			WithHint("Check the file named by --config or $" + config.EnvironmentVariable + ".")
	}
	if parsed.startDate != "" {
		cfg.StartDate = parsed.startDate
	}
	if parsed.progressFile != "" {
		cfg.ProgressFile = parsed.progressFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, validationError("%w", err)
	}
	return cfg, nil
}

// resolveTheme picks the starting theme. Auto asks the terminal for its
// background color.
func resolveTheme(setting config.Theme, hasDarkBackground func() bool) tui.Theme {
	switch setting {
	case config.ThemeDark:
		return tui.DarkTheme
	case config.ThemeAuto:
		if hasDarkBackground() {
			return tui.DarkTheme
		}
	}
	return tui.LightTheme
}

func run(args []string) error {
	parsed, flagSet, err := parseFlags(args)
	if err != nil {
		return err
	}
	if parsed.showHelp {
		printHelp(flagSet)
		return nil
	}
	if parsed.showVersion {
		version.Print(os.Stdout, "advent")
		return nil
	}

	startupLogger := newStartupLogger(os.Stderr)

	cfg, err := loadConfig(parsed)
	if err != nil {
		return err
	}
	advCalendar, err := cfg.Calendar()
	if err != nil {
		return validationError("%w", err)
	}
	progressPath, err := cfg.ResolveProgressFile()
	if err != nil {
		return internalError("%w", err).
			WithHint("Pass --progress-file to choose where opened days are stored.")
	}

	// Once the program owns the alternate screen, background records go
	// to the status line and, with --log-output, to a JSON file.
	tuiHandler := adventui.NewLogHandler(slog.LevelWarn)
	backgroundHandler := slog.Handler(tuiHandler)
	loadHandler := startupLogger.Handler()

	// The controller runs inside the update loop and reports save
	// failures through the status line itself, so its records go only
	// to the --log-output file.
	controllerHandler := slog.Handler(slog.DiscardHandler)
	if parsed.logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(parsed.logOutput)
		if err != nil {
			return validationError("cannot open log file %s: %w", parsed.logOutput, err)
		}
		defer closeFile()
		backgroundHandler = fanoutHandler{tuiHandler, fileHandler}
		loadHandler = fanoutHandler{loadHandler, fileHandler}
		controllerHandler = fileHandler
	}
	backgroundLogger := slog.New(backgroundHandler)

	// Progress is loaded before the TUI starts, so warnings about the
	// file's contents are written to stderr where the user can see them.
	store := progress.NewStore(progressPath, slog.New(loadHandler))
	controller, err := advent.NewController(advent.Options{
		Calendar: advCalendar,
		Store:    store,
		Clock:    clock.Real(),
		Logger:   slog.New(controllerHandler),
	})
	if err != nil {
		return internalError("cannot read progress from %s: %w", progressPath, err).
			WithHint("Check the file's permissions, or pass --progress-file to use a different file.")
	}

	theme := resolveTheme(cfg.Theme, termenv.HasDarkBackground)
	model := adventui.NewModel(controller, adventui.Options{Theme: &theme})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	stopWatch, err := progress.Watch(progressPath, func(set progress.Set) {
		program.Send(adventui.ProgressChanged(set))
	})
	if err != nil {
		// Delivered to the status line once the program starts.
		backgroundLogger.Warn("not watching progress file for outside changes",
			"path", progressPath,
			"error", err,
		)
	} else {
		defer stopWatch()
	}

	backgroundLogger.Debug("starting calendar",
		"start", cfg.StartDate,
		"progress_file", progressPath,
		"theme", theme.Name,
	)
	_, err = program.Run()
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `advent: a terminal advent calendar.

Twelve days unlock one per day starting from the start date. Open a
day to see its gift; opened days are remembered in the progress file.

Usage:
  advent [flags]

Keys:
  arrows, hjkl   move between days
  enter, space   open the selected day
  d              toggle light/dark theme
  r              reset all days
  q, ctrl+c      quit

Examples:
  # Run with defaults
  advent

  # Keep progress in your home directory
  advent --progress-file ~/.local/share/advent/completed_days.txt

  # Use a config file
  ADVENT_CONFIG=~/.config/advent.yaml advent

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
