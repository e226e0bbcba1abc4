// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bureau-foundation/blockhuff/lib/bitio"
	"github.com/bureau-foundation/blockhuff/lib/hufftree"
)

// Decode decompresses an artifact produced by [Encode] from source into
// destination.
func Decode(source io.Reader, destination io.Writer) (*Stats, error) {
	input := bufio.NewReaderSize(source, ioBufferSize)

	header, err := ReadHeader(input)
	if err != nil {
		return nil, err
	}

	output := bufio.NewWriterSize(destination, ioBufferSize)
	stats, err := decodeBody(input, header, output)
	if err != nil {
		return nil, err
	}
	if err := output.Flush(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}

// decodeBody decodes the payload and copies the tail of an artifact
// whose header has already been read from input.
func decodeBody(input *bufio.Reader, header *Header, output io.Writer) (*Stats, error) {
	stats := &Stats{
		BlockSize:      header.BlockSize,
		BlockCount:     header.BlockCount,
		DistinctBlocks: len(hufftree.Leaves(header.Root)),
		HeaderBytes:    header.EncodedSize(),
	}

	var err error
	switch root := header.Root.(type) {
	case nil:
		// No blocks: the whole remainder is tail.
	case *hufftree.Leaf:
		err = repeatBlock(root, header.BlockCount, output)
	case *hufftree.Internal:
		stats.PayloadBytes, err = decodePayload(input, root, header.BlockCount, output)
	default:
		err = fmt.Errorf("huffman: unknown tree root type %T", header.Root)
	}
	if err != nil {
		return nil, err
	}

	tail, err := io.Copy(output, input)
	if err != nil {
		return nil, fmt.Errorf("copying trailing bytes: %w", err)
	}
	if tail >= int64(header.BlockSize) {
		return nil, fmt.Errorf("%w: %d trailing bytes after payload, block size is %d", ErrFormat, tail, header.BlockSize)
	}
	stats.TrailingBytes = int(tail)

	stats.finish()
	return stats, nil
}

// repeatBlock writes the block of a single-leaf tree count times. Such
// a tree has an empty code, so the payload is empty.
func repeatBlock(leaf *hufftree.Leaf, count uint64, output io.Writer) error {
	for i := uint64(0); i < count; i++ {
		if _, err := leaf.Block.WriteTo(output); err != nil {
			return fmt.Errorf("writing block %d: %w", i, err)
		}
	}
	return nil
}

// decodePayload walks the tree bit by bit, MSB first, emitting a block
// at every leaf. It stops as soon as count blocks have been emitted,
// discarding the rest of the current byte. Returns the number of
// payload bytes consumed.
func decodePayload(input io.ByteReader, root *hufftree.Internal, count uint64, output io.Writer) (int64, error) {
	var (
		decoded  uint64
		consumed int64
		node     = root
	)

	for decoded < count {
		value, err := input.ReadByte()
		if err == io.EOF {
			return consumed, fmt.Errorf("%w: %d of %d blocks decoded", ErrTruncated, decoded, count)
		}
		if err != nil {
			return consumed, fmt.Errorf("reading payload: %w", err)
		}
		consumed++

		for i := 0; i < 8 && decoded < count; i++ {
			var next hufftree.Node
			if bitio.BitAt(value, i) {
				next = node.Right
			} else {
				next = node.Left
			}

			switch n := next.(type) {
			case *hufftree.Internal:
				node = n
			case *hufftree.Leaf:
				if _, err := n.Block.WriteTo(output); err != nil {
					return consumed, fmt.Errorf("writing block %d: %w", decoded, err)
				}
				decoded++
				node = root
			default:
				return consumed, fmt.Errorf("%w: tree node of type %T", ErrFormat, next)
			}
		}
	}

	return consumed, nil
}
