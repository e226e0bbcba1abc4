// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hufftree

import (
	"container/heap"
	"slices"

	"github.com/bureau-foundation/blockhuff/lib/block"
)

// Frequencies maps each distinct block to its number of occurrences.
type Frequencies map[block.Block]uint64

// Add records one more occurrence of b.
func (f Frequencies) Add(b block.Block) {
	f[b]++
}

// Total returns the sum of all counts.
func (f Frequencies) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}
	return total
}

// Build constructs the Huffman tree for frequencies and returns its
// root. Returns nil when frequencies is empty. A single distinct block
// yields a lone *Leaf.
//
// Leaves are seeded in ascending block order and ties on frequency pop
// the node created first, so the same frequencies always produce the
// same tree.
func Build(frequencies Frequencies) Node {
	if len(frequencies) == 0 {
		return nil
	}

	blocks := make([]block.Block, 0, len(frequencies))
	for b := range frequencies {
		blocks = append(blocks, b)
	}
	slices.SortFunc(blocks, block.Compare)

	queue := make(buildHeap, 0, len(blocks))
	var sequence uint64
	for _, b := range blocks {
		queue = append(queue, buildItem{
			node:     &Leaf{Block: b, Count: frequencies[b]},
			sequence: sequence,
		})
		sequence++
	}
	heap.Init(&queue)

	for queue.Len() > 1 {
		left := heap.Pop(&queue).(buildItem)
		right := heap.Pop(&queue).(buildItem)
		heap.Push(&queue, buildItem{
			node:     NewInternal(left.node, right.node),
			sequence: sequence,
		})
		sequence++
	}

	return heap.Pop(&queue).(buildItem).node
}

// buildItem is a heap entry. sequence orders nodes of equal frequency
// by creation.
type buildItem struct {
	node     Node
	sequence uint64
}

// buildHeap is a min-heap of tree nodes ordered by frequency.
// Implements container/heap.Interface.
type buildHeap []buildItem

func (h buildHeap) Len() int { return len(h) }
func (h buildHeap) Less(i, j int) bool {
	fi, fj := h[i].node.Frequency(), h[j].node.Frequency()
	if fi != fj {
		return fi < fj
	}
	return h[i].sequence < h[j].sequence
}
func (h buildHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *buildHeap) Push(x any)   { *h = append(*h, x.(buildItem)) }
func (h *buildHeap) Pop() any {
	old := *h
	item := old[len(old)-1]
	*h = old[:len(old)-1]
	return item
}
