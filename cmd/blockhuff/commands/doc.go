// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the blockhuff command tree: compress,
// decompress, inspect, compare, and version.
//
// Every command shares the same ambient setup. --config (or
// BLOCKHUFF_CONFIG) selects the configuration file, --verbose lowers
// the log level to debug, and logs go to stderr through
// [cli.NewCommandLogger]. Results go to stdout as text, or as JSON with
// --json. Commands write through an [Environment] so tests can capture
// output and substitute a fake clock.
package commands
