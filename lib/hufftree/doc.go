// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hufftree builds, walks, and serializes Huffman coding trees
// whose symbols are fixed-length [block.Block] values.
//
// A tree is made of two node variants behind the [Node] interface:
// [*Leaf] holds a block and its occurrence count, [*Internal] holds
// exactly two children and the sum of their counts. There is no node
// with one child.
//
// The lifecycle is:
//
//  1. [Build]: seed a min-heap with one leaf per distinct block and
//     merge the two lightest nodes until one root remains.
//  2. [Codes]: one depth-first walk assigns each leaf the path from the
//     root ('0' for left, '1' for right) as its [Code].
//  3. [WriteTree] / [ReadTree]: pre-order flag stream. A leaf is the
//     byte 0x01 followed by the raw block bytes; an internal node is
//     the byte 0x00 followed by its left then right subtree.
//
// Every walk uses an explicit stack, so tree depth is bounded only by
// memory, not by the goroutine stack.
package hufftree
