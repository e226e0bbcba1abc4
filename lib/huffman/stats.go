// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

// Stats describes one artifact, gathered while encoding or decoding
// it. The same numbers come out of both directions.
type Stats struct {
	BlockSize      int    `json:"block_size"`
	BlockCount     uint64 `json:"block_count"`
	DistinctBlocks int    `json:"distinct_blocks"`

	// TrailingBytes is the length of the raw tail (< BlockSize).
	TrailingBytes int `json:"trailing_bytes"`

	HeaderBytes  int64 `json:"header_bytes"`
	PayloadBytes int64 `json:"payload_bytes"`

	// OriginalBytes is the size of the uncompressed data.
	OriginalBytes int64 `json:"original_bytes"`

	// CompressedBytes is the artifact size: header, payload, and tail.
	CompressedBytes int64 `json:"compressed_bytes"`
}

// Ratio returns CompressedBytes / OriginalBytes, or 0 for empty input.
func (s *Stats) Ratio() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.CompressedBytes) / float64(s.OriginalBytes)
}

func (s *Stats) finish() {
	s.OriginalBytes = int64(s.BlockCount)*int64(s.BlockSize) + int64(s.TrailingBytes)
	s.CompressedBytes = s.HeaderBytes + s.PayloadBytes + int64(s.TrailingBytes)
}
