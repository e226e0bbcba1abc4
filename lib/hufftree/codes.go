// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hufftree

import (
	"slices"

	"github.com/bureau-foundation/blockhuff/lib/block"
)

// Code is the path from the root to a leaf as a string of '0' (left)
// and '1' (right) characters. The lone leaf of a single-block tree has
// the empty code.
type Code string

// Len returns the code length in bits.
func (c Code) Len() int {
	return len(c)
}

// HasPrefix reports whether prefix is a prefix of c.
func (c Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(c) && c[:len(prefix)] == prefix
}

// CodeTable maps every block of a tree to its code.
type CodeTable struct {
	codes map[string]Code
	// blocks keeps the leaves in tree order for Entries.
	blocks []block.Block
}

// Entry is one block and its code.
type Entry struct {
	Block block.Block
	Code  Code
}

// Codes derives the code table for the tree rooted at root with a
// single depth-first walk. Returns an empty table for a nil root.
func Codes(root Node) *CodeTable {
	table := &CodeTable{codes: make(map[string]Code)}
	if root == nil {
		return table
	}

	// Each frame records the bit leading into its node and the node's
	// depth. Before handling a frame the shared path is cut back to the
	// parent's length, which the left sibling's subtree never touches.
	type frame struct {
		node  Node
		depth int
		bit   byte
	}
	stack := []frame{{node: root}}
	path := make([]byte, 0, 64)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > 0 {
			path = append(path[:top.depth-1], top.bit)
		}

		switch n := top.node.(type) {
		case *Leaf:
			table.codes[n.Block.Key()] = Code(path)
			table.blocks = append(table.blocks, n.Block)
		case *Internal:
			stack = append(stack,
				frame{node: n.Right, depth: top.depth + 1, bit: '1'},
				frame{node: n.Left, depth: top.depth + 1, bit: '0'},
			)
		}
	}

	return table
}

// Lookup returns the code for the block whose bytes are raw.
func (t *CodeTable) Lookup(raw []byte) (Code, bool) {
	code, ok := t.codes[string(raw)]
	return code, ok
}

// Code returns the code for b.
func (t *CodeTable) Code(b block.Block) (Code, bool) {
	code, ok := t.codes[b.Key()]
	return code, ok
}

// Len returns the number of blocks in the table.
func (t *CodeTable) Len() int {
	return len(t.codes)
}

// Entries returns every block and its code in left-to-right tree order.
func (t *CodeTable) Entries() []Entry {
	entries := make([]Entry, 0, len(t.blocks))
	for _, b := range t.blocks {
		entries = append(entries, Entry{Block: b, Code: t.codes[b.Key()]})
	}
	return entries
}

// Lengths returns the sorted list of code lengths, one per block.
func (t *CodeTable) Lengths() []int {
	lengths := make([]int, 0, len(t.codes))
	for _, code := range t.codes {
		lengths = append(lengths, code.Len())
	}
	slices.Sort(lengths)
	return lengths
}
