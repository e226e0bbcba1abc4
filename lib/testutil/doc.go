// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for blockhuff
// packages.
//
// [WriteFile] and [ReadFile] create and read fixture files, usually
// inside t.TempDir(). [PatternBytes] and [RandomBytes] generate inputs
// with predictable compressibility: PatternBytes repeats a short cycle
// (few distinct blocks, highly compressible), RandomBytes draws from a
// seeded generator (many distinct blocks, barely compressible) so that
// failures reproduce.
//
// [UniqueName] names fixtures that share a directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no blockhuff-internal dependencies.
package testutil
