// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/advent/lib/calendar"
)

// EnvironmentVariable names the config file when no explicit path is
// given.
const EnvironmentVariable = "ADVENT_CONFIG"

// DefaultProgressFilename is the progress file name used next to the
// executable.
const DefaultProgressFilename = "completed_days.txt"

// Theme selects the initial color scheme.
type Theme string

const (
	// ThemeLight starts in the light scheme.
	ThemeLight Theme = "light"
	// ThemeDark starts in the dark scheme.
	ThemeDark Theme = "dark"
	// ThemeAuto picks light or dark from the terminal background.
	ThemeAuto Theme = "auto"
)

// Config is the complete advent calendar configuration.
type Config struct {
	// StartDate is the YYYY-MM-DD date day 1 unlocks.
	StartDate string `yaml:"start_date" json:"start_date"`

	// ProgressFile is where opened days are stored. Empty means
	// completed_days.txt next to the executable.
	ProgressFile string `yaml:"progress_file" json:"progress_file"`

	// Theme is light, dark, or auto.
	Theme Theme `yaml:"theme" json:"theme"`

	// Gifts overrides the gift text for individual days. Values may
	// use inline markdown (emphasis, code spans).
	Gifts map[int]string `yaml:"gifts,omitempty" json:"gifts,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StartDate: calendar.FormatDate(calendar.DefaultStart),
		Theme:     ThemeLight,
	}
}

// Load reads the config file at explicitPath, or the file named by
// ADVENT_CONFIG when explicitPath is empty. With neither, it returns
// Default(). The result is validated.
func Load(explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path, layered over
// Default().
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := cfg.decode(data, filepath.Ext(path)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decode merges data into c using the format implied by extension.
func (c *Config) decode(data []byte, extension string) error {
	switch strings.ToLower(extension) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q (want .yaml, .yml, .json, or .jsonc)", extension)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.ProgressFile = expandVars(c.ProgressFile)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := calendar.ParseDate(c.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("start_date: %w", err))
	}

	switch c.Theme {
	case ThemeLight, ThemeDark, ThemeAuto:
	default:
		errs = append(errs, fmt.Errorf("theme must be one of light, dark, auto; got %q", c.Theme))
	}

	days := make([]int, 0, len(c.Gifts))
	for day := range c.Gifts {
		days = append(days, day)
	}
	sort.Ints(days)
	for _, day := range days {
		if !calendar.Valid(day) {
			errs = append(errs, fmt.Errorf("gifts: day %d is outside 1..%d", day, calendar.DayCount))
		}
	}

	return errors.Join(errs...)
}

// Calendar builds the calendar described by the configuration.
func (c *Config) Calendar() (calendar.Calendar, error) {
	start, err := calendar.ParseDate(c.StartDate)
	if err != nil {
		return calendar.Calendar{}, err
	}
	return calendar.Calendar{Start: start, Gifts: calendar.DefaultGifts}.WithGifts(c.Gifts), nil
}

// ResolveProgressFile returns the configured progress file, or
// completed_days.txt in the directory holding the executable.
func (c *Config) ResolveProgressFile() (string, error) {
	if c.ProgressFile != "" {
		return c.ProgressFile, nil
	}
	executable, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(executable); err == nil {
		executable = resolved
	}
	return filepath.Join(filepath.Dir(executable), DefaultProgressFilename), nil
}
