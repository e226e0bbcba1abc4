// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package baseline measures general-purpose compressors on the same
// input as the block Huffman codec, so that "blockhuff compare" can
// show where block coding wins and where it does not.
//
// The reference algorithms are LZ4 block mode (pierrec/lz4), zstd at
// its default level and S2 (both klauspost/compress). [AlgorithmNone]
// is the identity and anchors the table at ratio 1.0.
//
// Measurement is whole-buffer and in memory. The package never writes
// files.
package baseline
