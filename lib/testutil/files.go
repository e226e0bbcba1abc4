// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

var fixtureSequence atomic.Uint64

// UniqueName returns a fixture file name derived from label that no
// other call in the process returns. Characters that are awkward in
// file names (path separators, spaces) become underscores, so subtest
// names can be passed directly.
//
//	name := testutil.UniqueName("empty input") // "empty_input.1"
func UniqueName(label string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, label)
	return fmt.Sprintf("%s.%d", clean, fixtureSequence.Add(1))
}

// WriteFile writes data to name inside directory and returns the full
// path.
func WriteFile(t testing.TB, directory, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return data
}

// PatternBytes returns length bytes cycling through 0, 1, ...,
// period-1.
func PatternBytes(length, period int) []byte {
	data := make([]byte, length)
	for i := range data {
		data[i] = byte(i % period)
	}
	return data
}

// RandomBytes returns length pseudo-random bytes. The same seed always
// yields the same bytes.
//
//	data := testutil.RandomBytes(4096, 1)
func RandomBytes(length int, seed uint64) []byte {
	var key [32]byte
	for i := range 8 {
		key[i] = byte(seed >> (8 * i))
	}
	generator := rand.NewChaCha8(key)
	data := make([]byte, length)
	_, _ = generator.Read(data)
	return data
}
