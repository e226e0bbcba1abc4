// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package block provides the fixed-length symbol type used by the
// block Huffman codec.
//
// A [Block] is an immutable run of exactly n bytes, where n is fixed
// for one compression run. Blocks are comparable Go values: two Blocks
// are == exactly when their bytes are equal, so they work directly as
// map keys for frequency tables and code tables. [Block.Hash] returns
// a BLAKE3-derived hash consistent with that equality, and
// [Block.Fingerprint] the full digest used in diagnostic output.
//
// Construction always copies the caller's bytes. Later mutation of the
// source buffer (the codec reuses one read buffer for the whole file)
// cannot change a stored Block.
//
// This package has no dependencies on other blockhuff packages.
package block
