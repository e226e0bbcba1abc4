// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bureau-foundation/blockhuff/lib/hufftree"
)

// fixedHeaderSize is the block count (8 bytes) plus the block size
// (4 bytes).
const fixedHeaderSize = 12

// Header is the metadata at the start of every artifact.
type Header struct {
	// BlockCount is the number of full blocks in the payload.
	BlockCount uint64

	// BlockSize is the block length n in bytes.
	BlockSize int

	// Root is the coding tree. Nil exactly when BlockCount is 0.
	Root hufftree.Node
}

// EncodedSize returns the number of bytes WriteHeader produces for h.
func (h *Header) EncodedSize() int64 {
	size := int64(fixedHeaderSize)
	leaves := int64(len(hufftree.Leaves(h.Root)))
	if leaves > 0 {
		// 2L-1 flag bytes plus L blocks.
		size += 2*leaves - 1 + leaves*int64(h.BlockSize)
	}
	return size
}

// WriteHeader writes h to w.
func WriteHeader(w io.Writer, h *Header) error {
	if err := validateBlockSize(h.BlockSize); err != nil {
		return err
	}
	if (h.BlockCount == 0) != (h.Root == nil) {
		return fmt.Errorf("huffman: header with %d blocks must have a tree iff blocks > 0", h.BlockCount)
	}

	var fixed [fixedHeaderSize]byte
	binary.LittleEndian.PutUint64(fixed[0:8], h.BlockCount)
	binary.LittleEndian.PutUint32(fixed[8:12], uint32(h.BlockSize))
	if _, err := w.Write(fixed[:]); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if h.Root == nil {
		return nil
	}
	if err := hufftree.WriteTree(w, h.Root, h.BlockSize); err != nil {
		return fmt.Errorf("writing coding tree: %w", err)
	}
	return nil
}

// ReadHeader reads a header written by [WriteHeader]. Every parse
// failure wraps [ErrFormat]; I/O failures are returned as they are.
func ReadHeader(r io.Reader) (*Header, error) {
	var fixed [fixedHeaderSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("%w: header is shorter than %d bytes", ErrFormat, fixedHeaderSize)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	header := &Header{
		BlockCount: binary.LittleEndian.Uint64(fixed[0:8]),
	}
	blockSize := binary.LittleEndian.Uint32(fixed[8:12])
	if blockSize < 1 || blockSize > MaxBlockSize {
		return nil, fmt.Errorf("%w: block size %d out of range", ErrFormat, blockSize)
	}
	header.BlockSize = int(blockSize)

	if header.BlockCount == 0 {
		return header, nil
	}

	root, err := hufftree.ReadTree(r, header.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: reading coding tree: %w", ErrFormat, err)
	}
	header.Root = root
	return header, nil
}
