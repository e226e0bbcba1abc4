// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"errors"
	"fmt"
)

// MaxBlockSize is the largest supported block size. Header reading
// rejects larger values before allocating a block buffer.
const MaxBlockSize = 16 << 20

var (
	// ErrInvalidBlockSize is returned before any I/O when the block
	// size is outside [1, MaxBlockSize].
	ErrInvalidBlockSize = errors.New("huffman: invalid block size")

	// ErrFormat is wrapped by every error caused by an artifact that
	// does not parse.
	ErrFormat = errors.New("huffman: invalid compressed data")

	// ErrTruncated is returned when the payload ends before every
	// block has been decoded. It wraps ErrFormat.
	ErrTruncated = fmt.Errorf("%w: truncated payload", ErrFormat)
)

func validateBlockSize(blockSize int) error {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidBlockSize, blockSize, MaxBlockSize)
	}
	return nil
}
