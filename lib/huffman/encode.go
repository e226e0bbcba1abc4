// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bureau-foundation/blockhuff/lib/bitio"
	"github.com/bureau-foundation/blockhuff/lib/block"
	"github.com/bureau-foundation/blockhuff/lib/hufftree"
)

// ioBufferSize is the bufio size used for both reading and writing.
const ioBufferSize = 64 << 10

// Encode compresses source into destination using blockSize-byte
// blocks. source is read twice: it is rewound to its start after the
// frequency pass.
func Encode(source io.ReadSeeker, destination io.Writer, blockSize int) (*Stats, error) {
	if err := validateBlockSize(blockSize); err != nil {
		return nil, err
	}

	frequencies := make(hufftree.Frequencies)
	blockCount, tail, err := scanBlocks(source, blockSize, func(raw []byte) error {
		b, err := block.New(raw, blockSize)
		if err != nil {
			return err
		}
		frequencies.Add(b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("counting blocks: %w", err)
	}

	header := &Header{
		BlockCount: blockCount,
		BlockSize:  blockSize,
		Root:       hufftree.Build(frequencies),
	}
	codes := hufftree.Codes(header.Root)

	output := bufio.NewWriterSize(destination, ioBufferSize)
	if err := WriteHeader(output, header); err != nil {
		return nil, err
	}

	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	bits := bitio.NewWriter(output)
	encoded, secondTail, err := scanBlocks(source, blockSize, func(raw []byte) error {
		code, ok := codes.Lookup(raw)
		if !ok {
			return fmt.Errorf("block %x was not present when counting", raw)
		}
		return bits.WriteBits(string(code))
	})
	if err != nil {
		return nil, fmt.Errorf("encoding blocks: %w", err)
	}
	if encoded != blockCount || len(secondTail) != len(tail) {
		return nil, fmt.Errorf("input changed during compression: counted %d blocks + %d bytes, encoded %d blocks + %d bytes",
			blockCount, len(tail), encoded, len(secondTail))
	}
	if err := bits.Flush(); err != nil {
		return nil, err
	}

	if _, err := output.Write(secondTail); err != nil {
		return nil, fmt.Errorf("writing trailing bytes: %w", err)
	}
	if err := output.Flush(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}

	stats := &Stats{
		BlockSize:      blockSize,
		BlockCount:     blockCount,
		DistinctBlocks: len(frequencies),
		TrailingBytes:  len(tail),
		HeaderBytes:    header.EncodedSize(),
		PayloadBytes:   bits.BytesWritten(),
	}
	stats.finish()
	return stats, nil
}

// scanBlocks reads source to the end in blockSize chunks, calling visit
// with each full block. The slice passed to visit is reused between
// calls. Returns the number of full blocks and a copy of the final
// partial block, if any.
func scanBlocks(source io.Reader, blockSize int, visit func(raw []byte) error) (uint64, []byte, error) {
	reader := bufio.NewReaderSize(source, ioBufferSize)
	buffer := make([]byte, blockSize)
	var blocks uint64

	for {
		read, err := io.ReadFull(reader, buffer)
		switch err {
		case nil:
			if err := visit(buffer); err != nil {
				return blocks, nil, fmt.Errorf("block %d: %w", blocks, err)
			}
			blocks++
		case io.EOF:
			return blocks, nil, nil
		case io.ErrUnexpectedEOF:
			return blocks, append([]byte(nil), buffer[:read]...), nil
		default:
			return blocks, nil, fmt.Errorf("reading block %d: %w", blocks, err)
		}
	}
}
