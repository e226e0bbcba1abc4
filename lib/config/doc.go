// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for blockhuff.
//
// Configuration comes from at most one file, chosen in this order:
//
//   - the --config flag (via [LoadFile])
//   - the BLOCKHUFF_CONFIG environment variable (via [Load])
//   - otherwise the built-in [Default]
//
// There is no ~/.config discovery and no per-field environment
// override. Files ending in .json or .jsonc are read as JSON with
// comments and trailing commas allowed; anything else is YAML.
//
// Key exports:
//
//   - [Config] -- block size, partial-output policy, log level, and
//     the baseline algorithms used by "blockhuff compare"
//   - [Default] -- a Config with every field set
//   - [Load], [LoadFile], and [Resolve] -- the loading entry points
//
// This package depends on no other blockhuff packages.
package config
