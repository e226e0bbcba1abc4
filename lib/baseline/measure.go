// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package baseline

import (
	"bytes"
	"fmt"
)

// Measurement is the result of compressing one buffer with one
// algorithm.
type Measurement struct {
	Algorithm       string `json:"algorithm"`
	OriginalBytes   int64  `json:"original_bytes"`
	CompressedBytes int64  `json:"compressed_bytes"`

	// Stored is true when the algorithm could not compress the data
	// and CompressedBytes is the raw size.
	Stored bool `json:"stored,omitempty"`
}

// Ratio returns CompressedBytes / OriginalBytes, or 0 for empty input.
func (m Measurement) Ratio() float64 {
	if m.OriginalBytes == 0 {
		return 0
	}
	return float64(m.CompressedBytes) / float64(m.OriginalBytes)
}

// Measure compresses data with each algorithm in turn. Every result is
// decompressed and compared with data before it is reported.
func Measure(data []byte, algorithms []Algorithm) ([]Measurement, error) {
	measurements := make([]Measurement, 0, len(algorithms))
	for _, algorithm := range algorithms {
		measurement := Measurement{
			Algorithm:     algorithm.String(),
			OriginalBytes: int64(len(data)),
		}

		compressed, err := Compress(data, algorithm)
		switch {
		case IsIncompressible(err):
			measurement.CompressedBytes = int64(len(data))
			measurement.Stored = true
		case err != nil:
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		default:
			restored, err := Decompress(compressed, algorithm, len(data))
			if err != nil {
				return nil, fmt.Errorf("%s: verifying: %w", algorithm, err)
			}
			if !bytes.Equal(restored, data) {
				return nil, fmt.Errorf("%s: round trip altered the data", algorithm)
			}
			measurement.CompressedBytes = int64(len(compressed))
		}

		measurements = append(measurements, measurement)
	}
	return measurements, nil
}
