// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Blockhuff compresses files with block Huffman coding. It provides
// subcommands to compress a file (compress), restore it (decompress),
// describe an artifact (inspect), measure block Huffman against lz4
// and zstd (compare), and print build information (version).
package main
