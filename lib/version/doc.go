// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports what blockhuff binary is running.
//
// The release scripts stamp [Version], [GitCommit], [GitDirty] and
// [BuildTime] through the linker; development builds and tests see the
// defaults. "blockhuff version" prints [Full], and its --json form
// prints [Current].
package version
