// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package baseline

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a reference compressor. The zero value stores
// data unchanged.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = iota
	// AlgorithmLZ4 is an LZ4 block: fast, modest ratio.
	AlgorithmLZ4
	// AlgorithmZstd is zstd at its default level.
	AlgorithmZstd
	// AlgorithmS2 is S2, the Snappy extension from klauspost/compress.
	AlgorithmS2
)

// compressor is one entry of the algorithm table. decompress receives
// the exact original length.
type compressor struct {
	name       string
	compress   func(data []byte) ([]byte, error)
	decompress func(compressed []byte, size int) ([]byte, error)
}

var compressors = map[Algorithm]compressor{
	AlgorithmNone: {
		name:     "none",
		compress: func(data []byte) ([]byte, error) { return data, nil },
		decompress: func(compressed []byte, _ int) ([]byte, error) {
			return compressed, nil
		},
	},
	AlgorithmLZ4: {name: "lz4", compress: compressLZ4, decompress: decompressLZ4},
	AlgorithmZstd: {
		name: "zstd",
		compress: func(data []byte) ([]byte, error) {
			return zstdEncoder.EncodeAll(data, nil), nil
		},
		decompress: func(compressed []byte, size int) ([]byte, error) {
			return zstdDecoder.DecodeAll(compressed, make([]byte, 0, size))
		},
	},
	AlgorithmS2: {
		name: "s2",
		compress: func(data []byte) ([]byte, error) {
			return s2.Encode(nil, data), nil
		},
		decompress: func(compressed []byte, size int) ([]byte, error) {
			return s2.Decode(make([]byte, size), compressed)
		},
	},
}

// Names lists every algorithm name in Algorithm order.
func Names() []string {
	names := make([]string, 0, len(compressors))
	for algorithm := range Algorithm(len(compressors)) {
		names = append(names, algorithm.String())
	}
	return names
}

func (algorithm Algorithm) String() string {
	if entry, ok := compressors[algorithm]; ok {
		return entry.name
	}
	return fmt.Sprintf("unknown(%d)", algorithm)
}

// ParseAlgorithm is the inverse of [Algorithm.String].
func ParseAlgorithm(name string) (Algorithm, error) {
	for algorithm, entry := range compressors {
		if entry.name == name {
			return algorithm, nil
		}
	}
	return 0, fmt.Errorf("unknown baseline algorithm: %q", name)
}

// ParseAlgorithms parses names in order, rejecting unknown names and
// duplicates.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	algorithms := make([]Algorithm, 0, len(names))
	for _, name := range names {
		algorithm, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		for _, earlier := range algorithms {
			if earlier == algorithm {
				return nil, fmt.Errorf("baseline algorithm %q listed twice", name)
			}
		}
		algorithms = append(algorithms, algorithm)
	}
	return algorithms, nil
}

// Compress returns data compressed with algorithm. AlgorithmNone
// returns data itself. An LZ4 block that cannot shrink the input fails
// with an error satisfying [IsIncompressible].
func Compress(data []byte, algorithm Algorithm) ([]byte, error) {
	entry, ok := compressors[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported baseline algorithm: %d", algorithm)
	}
	return entry.compress(data)
}

// Decompress reverses [Compress]. size is the original length; output
// of any other length is an error.
func Decompress(compressed []byte, algorithm Algorithm, size int) ([]byte, error) {
	entry, ok := compressors[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported baseline algorithm: %d", algorithm)
	}
	restored, err := entry.decompress(compressed, size)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", entry.name, err)
	}
	if len(restored) != size {
		return nil, fmt.Errorf("%s decompress: got %d bytes, expected %d", entry.name, len(restored), size)
	}
	return restored, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))
	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if written == 0 {
		return nil, errIncompressible
	}
	return destination[:written], nil
}

func decompressLZ4(compressed []byte, size int) ([]byte, error) {
	destination := make([]byte, size)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, err
	}
	return destination[:read], nil
}

// Shared coders; both are safe for concurrent EncodeAll/DecodeAll.
var (
	zstdEncoder = mustCoder(zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault)))
	zstdDecoder = mustCoder(zstd.NewReader(nil))
)

func mustCoder[C any](coder C, err error) C {
	if err != nil {
		panic("baseline: zstd initialization failed: " + err.Error())
	}
	return coder
}

var errIncompressible = errors.New("data is incompressible")

// IsIncompressible reports whether err means the algorithm found
// nothing to compress.
func IsIncompressible(err error) bool {
	return errors.Is(err, errIncompressible)
}
