// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitio

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by [Buffer.Append] when the buffer already
// holds 8 bits. It always indicates a caller bug.
var ErrOverflow = errors.New("bitio: byte buffer overflow")

// Buffer accumulates up to 8 bits, MSB first. The zero value is an
// empty buffer ready for use.
type Buffer struct {
	value byte
	held  uint8
}

// Append adds one bit at position 7-Len() of the pending byte.
func (b *Buffer) Append(bit bool) error {
	if b.held == 8 {
		return ErrOverflow
	}
	if bit {
		b.value |= 0x80 >> b.held
	}
	b.held++
	return nil
}

// ExtractByte returns the pending byte and resets the buffer to empty.
// Bits that were never appended read as zero.
func (b *Buffer) ExtractByte() byte {
	value := b.value
	b.value = 0
	b.held = 0
	return value
}

// IsFull reports whether the buffer holds 8 bits.
func (b *Buffer) IsFull() bool {
	return b.held == 8
}

// IsEmpty reports whether the buffer holds no bits.
func (b *Buffer) IsEmpty() bool {
	return b.held == 0
}

// Len returns the number of bits held (0 through 8).
func (b *Buffer) Len() int {
	return int(b.held)
}

// Free returns the number of bit slots still available.
func (b *Buffer) Free() int {
	return 8 - int(b.held)
}

// String renders the pending byte as eight binary digits.
func (b *Buffer) String() string {
	return fmt.Sprintf("%08b", b.value)
}

// BitAt returns bit i of value counting from the most significant
// bit: BitAt(v, 0) is bit 7, BitAt(v, 7) is bit 0.
func BitAt(value byte, i int) bool {
	return value&(0x80>>uint(i)) != 0
}
