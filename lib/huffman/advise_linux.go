// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package huffman

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel that file will be read front to
// back, which doubles readahead. Compression reads its input twice.
func adviseSequential(file *os.File) error {
	return unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
