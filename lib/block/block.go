// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package block

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zeebo/blake3"
)

// ErrShort is returned by [New] when the caller supplies fewer bytes
// than the requested block length.
var ErrShort = errors.New("block: not enough bytes")

// Block is an immutable fixed-length byte sequence. The zero value is
// the empty block (length 0).
//
// The bytes are held in a string so that Block is comparable and the
// content cannot be mutated through any accessor.
type Block struct {
	data string
}

// New returns a Block holding a copy of the first n bytes of data.
// Returns ErrShort if len(data) < n. n must not be negative.
func New(data []byte, n int) (Block, error) {
	if n < 0 {
		return Block{}, fmt.Errorf("block: negative length %d", n)
	}
	if len(data) < n {
		return Block{}, fmt.Errorf("%w: have %d, need %d", ErrShort, len(data), n)
	}
	return Block{data: string(data[:n])}, nil
}

// FromBytes returns a Block holding a copy of all of data.
func FromBytes(data []byte) Block {
	return Block{data: string(data)}
}

// Len returns the number of bytes in the block.
func (b Block) Len() int {
	return len(b.data)
}

// Bytes returns a fresh copy of the block's bytes.
func (b Block) Bytes() []byte {
	return []byte(b.data)
}

// AppendTo appends the block's bytes to destination and returns the
// extended slice.
func (b Block) AppendTo(destination []byte) []byte {
	return append(destination, b.data...)
}

// WriteTo writes the block's bytes to w. Implements io.WriterTo.
func (b Block) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, b.data)
	return int64(written), err
}

// Key returns the block's bytes as a string. Tables that are looked
// up with raw read buffers key on this value, since m[string(raw)]
// does not allocate.
func (b Block) Key() string {
	return b.data
}

// Equal reports whether b and other hold the same bytes. Equivalent to
// b == other.
func (b Block) Equal(other Block) bool {
	return b.data == other.data
}

// Compare orders blocks by their bytes, lexicographically. Returns -1,
// 0, or +1.
func Compare(a, b Block) int {
	return strings.Compare(a.data, b.data)
}

// Fingerprint returns the BLAKE3 digest of the block's bytes.
func (b Block) Fingerprint() [32]byte {
	return blake3.Sum256([]byte(b.data))
}

// Hash returns a 64-bit hash of the block's bytes: the first eight
// bytes of [Block.Fingerprint]. Equal blocks always hash identically.
func (b Block) Hash() uint64 {
	digest := b.Fingerprint()
	return binary.LittleEndian.Uint64(digest[:8])
}

// String returns the block's bytes in lowercase hex.
func (b Block) String() string {
	return hex.EncodeToString([]byte(b.data))
}
