// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"path/filepath"
	"strings"
)

// Suffix is appended to an input file name to name its artifact.
const Suffix = "-huffman.hc"

// ExtractPrefix is prepended to an artifact's base name to name its
// decompressed output.
const ExtractPrefix = "extracted."

// OutputPath returns the artifact path for an input file: the same
// directory, with [Suffix] appended to the file name.
//
//	OutputPath("data/notes.txt") == "data/notes.txt-huffman.hc"
func OutputPath(inputPath string) string {
	directory, name := filepath.Split(inputPath)
	return filepath.Join(directory, name+Suffix)
}

// ExtractPath returns the decompression output path for an artifact:
// the same directory, with [Suffix] (or a bare ".hc") stripped and
// [ExtractPrefix] prepended.
//
//	ExtractPath("data/notes.txt-huffman.hc") == "data/extracted.notes.txt"
func ExtractPath(artifactPath string) string {
	directory, name := filepath.Split(artifactPath)
	switch {
	case strings.HasSuffix(name, Suffix) && len(name) > len(Suffix):
		name = strings.TrimSuffix(name, Suffix)
	case strings.HasSuffix(name, ".hc") && len(name) > len(".hc"):
		name = strings.TrimSuffix(name, ".hc")
	}
	return filepath.Join(directory, ExtractPrefix+name)
}
