// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hufftree

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/blockhuff/lib/block"
)

// Node flags in the serialized tree. These values are format
// constants; changing them breaks every existing archive.
const (
	flagInternal byte = 0x00
	flagLeaf     byte = 0x01
)

// ErrMalformed is returned by [ReadTree] for a flag stream that does
// not describe a tree.
var ErrMalformed = errors.New("hufftree: malformed tree encoding")

// WriteTree serializes the tree rooted at root to w in pre-order. Every
// leaf's block must be blockSize bytes long. root must not be nil.
func WriteTree(w io.Writer, root Node, blockSize int) error {
	if root == nil {
		return fmt.Errorf("hufftree: cannot serialize empty tree")
	}

	record := make([]byte, 0, 1+blockSize)
	stack := []Node{root}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := current.(type) {
		case *Leaf:
			if n.Block.Len() != blockSize {
				return fmt.Errorf("hufftree: leaf block is %d bytes, want %d", n.Block.Len(), blockSize)
			}
			record = append(record[:0], flagLeaf)
			record = n.Block.AppendTo(record)
			if _, err := w.Write(record); err != nil {
				return fmt.Errorf("writing leaf: %w", err)
			}
		case *Internal:
			if _, err := w.Write([]byte{flagInternal}); err != nil {
				return fmt.Errorf("writing internal node: %w", err)
			}
			// Right first so that left is popped, and written, next.
			stack = append(stack, n.Right, n.Left)
		default:
			return fmt.Errorf("hufftree: unknown node type %T", current)
		}
	}

	return nil
}

// ReadTree reads a tree written by [WriteTree] from r. The returned
// nodes carry no frequencies.
//
// Truncated input and unknown flag bytes are reported as errors
// wrapping [ErrMalformed].
func ReadTree(r io.Reader, blockSize int) (Node, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("hufftree: invalid block size %d", blockSize)
	}

	var root Node
	// Each entry is the slot that the next node read must fill.
	stack := []*Node{&root}
	record := make([]byte, blockSize)
	var flag [1]byte
	nodes := 0

	for len(stack) > 0 {
		slot := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, err := io.ReadFull(r, flag[:]); err != nil {
			return nil, fmt.Errorf("%w: reading flag of node %d: %w", ErrMalformed, nodes, unexpectedEOF(err))
		}
		nodes++

		switch flag[0] {
		case flagLeaf:
			if _, err := io.ReadFull(r, record); err != nil {
				return nil, fmt.Errorf("%w: reading block of node %d: %w", ErrMalformed, nodes-1, unexpectedEOF(err))
			}
			*slot = &Leaf{Block: block.FromBytes(record)}
		case flagInternal:
			internal := &Internal{}
			*slot = internal
			stack = append(stack, &internal.Right, &internal.Left)
		default:
			return nil, fmt.Errorf("%w: node %d has flag %#02x", ErrMalformed, nodes-1, flag[0])
		}
	}

	return root, nil
}

// unexpectedEOF converts a clean EOF into io.ErrUnexpectedEOF: running
// out of input anywhere inside a tree is a truncation.
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
