// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/blockhuff/lib/hufftree"
)

// Options configures an [Engine].
type Options struct {
	// Logger receives debug-level progress and warnings. Nil discards.
	Logger *slog.Logger

	// KeepPartialOutput leaves a half-written output file in place
	// when compression or decompression fails. By default it is
	// removed.
	KeepPartialOutput bool
}

// Engine compresses and decompresses files. An Engine holds no
// per-file state; each call opens and closes its own files.
type Engine struct {
	logger            *slog.Logger
	keepPartialOutput bool
}

// Result is the outcome of one Compress or Decompress call.
type Result struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	Stats
}

// NewEngine returns an Engine configured by options.
func NewEngine(options Options) *Engine {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		logger:            logger,
		keepPartialOutput: options.KeepPartialOutput,
	}
}

// Compress encodes the file at inputPath with blockSize-byte blocks
// and writes the artifact to [OutputPath](inputPath). The block size
// is validated before any file is opened.
func (e *Engine) Compress(inputPath string, blockSize int) (*Result, error) {
	if err := validateBlockSize(blockSize); err != nil {
		return nil, err
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	if err := adviseSequential(input); err != nil {
		e.logger.Debug("sequential read advice failed", "path", inputPath, "error", err)
	}

	outputPath := OutputPath(inputPath)
	var stats *Stats
	err = e.writeOutput(outputPath, func(output io.Writer) error {
		var encodeErr error
		stats, encodeErr = Encode(input, output, blockSize)
		return encodeErr
	})
	if err != nil {
		return nil, fmt.Errorf("compressing %s: %w", inputPath, err)
	}

	e.logger.Debug("compressed",
		"input", inputPath,
		"output", outputPath,
		"block_size", stats.BlockSize,
		"blocks", stats.BlockCount,
		"distinct_blocks", stats.DistinctBlocks,
		"trailing_bytes", stats.TrailingBytes,
		"header_bytes", stats.HeaderBytes,
		"payload_bytes", stats.PayloadBytes,
	)

	return &Result{InputPath: inputPath, OutputPath: outputPath, Stats: *stats}, nil
}

// Decompress decodes the artifact at artifactPath and writes the
// original data to [ExtractPath](artifactPath).
func (e *Engine) Decompress(artifactPath string) (*Result, error) {
	input, err := os.Open(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	outputPath := ExtractPath(artifactPath)

	var stats *Stats
	err = e.writeOutput(outputPath, func(output io.Writer) error {
		var decodeErr error
		stats, decodeErr = Decode(input, output)
		return decodeErr
	})
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", artifactPath, err)
	}

	e.logger.Debug("decompressed",
		"input", artifactPath,
		"output", outputPath,
		"block_size", stats.BlockSize,
		"blocks", stats.BlockCount,
		"trailing_bytes", stats.TrailingBytes,
	)

	return &Result{InputPath: artifactPath, OutputPath: outputPath, Stats: *stats}, nil
}

// writeOutput creates path, runs produce against it, and closes it.
// If produce or the close fails, the file is removed unless the
// engine keeps partial output.
func (e *Engine) writeOutput(path string, produce func(io.Writer) error) error {
	output, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	produceErr := produce(output)
	closeErr := output.Close()
	if closeErr != nil {
		closeErr = fmt.Errorf("closing output: %w", closeErr)
	}
	if err := errors.Join(produceErr, closeErr); err != nil {
		e.discardPartial(path)
		return err
	}
	return nil
}

func (e *Engine) discardPartial(path string) {
	if e.keepPartialOutput {
		e.logger.Warn("leaving partial output", "path", path)
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		e.logger.Warn("removing partial output failed", "path", path, "error", err)
		return
	}
	e.logger.Debug("removed partial output", "path", path)
}

// Summary describes an artifact's header and layout.
type Summary struct {
	Path string `json:"path"`
	Stats

	// TreeDepth is the longest code length in bits.
	TreeDepth int `json:"tree_depth"`

	MinCodeLength  int     `json:"min_code_length"`
	MaxCodeLength  int     `json:"max_code_length"`
	MeanCodeLength float64 `json:"mean_code_length"`

	// Codebook lists every block and its code, in tree order. Only
	// filled when requested.
	Codebook []CodebookEntry `json:"codebook,omitempty"`
}

// CodebookEntry is one leaf of an artifact's coding tree.
type CodebookEntry struct {
	// Block is the block's bytes in hex.
	Block string `json:"block"`

	// Fingerprint is the BLAKE3 digest of the block, in hex.
	Fingerprint string `json:"fingerprint"`

	Code string `json:"code"`
}

// Inspect reads the artifact at artifactPath and describes it. The
// payload is fully decoded (and discarded) so that the payload and
// tail sizes are exact and corruption is detected.
func (e *Engine) Inspect(artifactPath string, includeCodebook bool) (*Summary, error) {
	input, err := os.Open(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer input.Close()

	reader := bufio.NewReaderSize(input, ioBufferSize)
	header, err := ReadHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", artifactPath, err)
	}
	stats, err := decodeBody(reader, header, io.Discard)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", artifactPath, err)
	}

	summary := &Summary{
		Path:      artifactPath,
		Stats:     *stats,
		TreeDepth: max(0, hufftree.Depth(header.Root)),
	}

	codes := hufftree.Codes(header.Root)
	if lengths := codes.Lengths(); len(lengths) > 0 {
		summary.MinCodeLength = lengths[0]
		summary.MaxCodeLength = lengths[len(lengths)-1]
		total := 0
		for _, length := range lengths {
			total += length
		}
		summary.MeanCodeLength = float64(total) / float64(len(lengths))
	}

	if includeCodebook {
		for _, entry := range codes.Entries() {
			fingerprint := entry.Block.Fingerprint()
			summary.Codebook = append(summary.Codebook, CodebookEntry{
				Block:       entry.Block.String(),
				Fingerprint: fmt.Sprintf("%x", fingerprint[:]),
				Code:        string(entry.Code),
			})
		}
	}

	return summary, nil
}
