// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework behind the blockhuff binary.
//
// A [Command] is either a group that dispatches on its first argument
// (by name or alias) or a leaf with a Run function. The tree itself is
// assembled in cmd/blockhuff/commands; [Command.Execute] parses flags,
// routes, and prints help with examples to the root's HelpOutput.
//
// Flags are tagged struct fields bound by [FlagsFromParams]. Shared
// groups are embedded: [JSONOutput] adds --json, [CBOROutput] adds
// --cbor and [ColorOutput] adds --color.
//
// Unknown commands and flags get a "did you mean" hint when a known
// name is within edit distance 3.
//
// [NewCommandLogger] builds the slog logger commands write diagnostics
// to, and [ExitError] lets a command choose its exit code.
package cli
