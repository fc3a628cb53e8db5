// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads configuration for the advent calendar.
//
// Configuration comes from at most one file, named by the --config flag
// or, failing that, the ADVENT_CONFIG environment variable. With
// neither, [Default] applies unchanged. There is no search path: the
// file that is read is always the one that was named.
//
// The file format follows the extension: .yaml and .yml are YAML;
// .json and .jsonc are JSON with optional comments and trailing commas.
// ${VAR} and ${VAR:-default} in the progress file path expand from the
// environment.
package config
