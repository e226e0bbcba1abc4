// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hufftree

import (
	"github.com/bureau-foundation/blockhuff/lib/block"
)

// Node is a Huffman tree node: either a *Leaf or an *Internal.
type Node interface {
	// Frequency returns the number of source blocks covered by this
	// subtree. Trees read back with [ReadTree] carry no counts and
	// report 0.
	Frequency() uint64

	node()
}

// Leaf is a terminal node holding one block.
type Leaf struct {
	Block block.Block
	Count uint64
}

// Internal is a merge node with exactly two children.
type Internal struct {
	Left  Node
	Right Node
	Count uint64
}

// NewInternal merges left and right into a node whose frequency is the
// sum of theirs.
func NewInternal(left, right Node) *Internal {
	return &Internal{
		Left:  left,
		Right: right,
		Count: left.Frequency() + right.Frequency(),
	}
}

func (l *Leaf) Frequency() uint64     { return l.Count }
func (n *Internal) Frequency() uint64 { return n.Count }

func (*Leaf) node()     {}
func (*Internal) node() {}

// Leaves returns every leaf of the tree rooted at root in left-to-right
// order. Returns nil for a nil root.
func Leaves(root Node) []*Leaf {
	var leaves []*Leaf
	walk(root, func(n Node, _ int) {
		if leaf, ok := n.(*Leaf); ok {
			leaves = append(leaves, leaf)
		}
	})
	return leaves
}

// Depth returns the number of edges on the longest root-to-leaf path.
// A lone leaf has depth 0; a nil root reports -1.
func Depth(root Node) int {
	deepest := -1
	walk(root, func(_ Node, depth int) {
		deepest = max(deepest, depth)
	})
	return deepest
}

// walk visits every node in pre-order, left before right, passing the
// node's depth.
func walk(root Node, visit func(Node, int)) {
	if root == nil {
		return
	}

	type frame struct {
		node  Node
		depth int
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(top.node, top.depth)

		if internal, ok := top.node.(*Internal); ok {
			stack = append(stack,
				frame{node: internal.Right, depth: top.depth + 1},
				frame{node: internal.Left, depth: top.depth + 1},
			)
		}
	}
}
