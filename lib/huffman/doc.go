// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package huffman compresses and decompresses files with a Huffman
// code over fixed-size byte blocks rather than single bytes.
//
// # Artifact layout
//
// A compressed artifact is three sections back to back:
//
//  1. Header: block count (uint64 little-endian), block size n (uint32
//     little-endian), then, when the block count is non-zero, the
//     coding tree as written by [hufftree.WriteTree].
//  2. Payload: the code of every full n-byte block, packed MSB first.
//     The final byte is zero-padded.
//  3. Tail: the final len(input) mod n bytes, stored raw.
//
// There is no padding marker or end-of-stream code. The decoder stops
// after exactly block-count blocks, wherever that falls inside a byte,
// and everything after that byte is the tail.
//
// Two degenerate inputs are handled explicitly. An input shorter than
// n bytes has block count 0, no tree, and an empty payload: it is
// stored entirely as tail. An input made of one repeated block has a
// tree that is a lone leaf with the empty code: the payload is empty
// and the decoder emits the block block-count times.
//
// # Entry points
//
// [Encode] and [Decode] work on streams. Encode needs an
// io.ReadSeeker because it reads the input twice: once to count block
// frequencies and once to emit codes. [Engine] wraps both for files,
// deriving output names with [OutputPath] and [ExtractPath] and
// removing half-written outputs on failure. [Engine.Inspect] decodes
// an artifact without writing anything and reports its structure.
package huffman
