// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitio

import (
	"fmt"
	"io"
)

// Writer packs bits into bytes and writes each byte to an underlying
// io.ByteWriter as soon as it is complete.
type Writer struct {
	destination io.ByteWriter
	buffer      Buffer
	written     int64
	err         error
}

// NewWriter returns a Writer that emits packed bytes to destination.
func NewWriter(destination io.ByteWriter) *Writer {
	return &Writer{destination: destination}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(bit bool) {
	if w.err != nil {
		return
	}
	if err := w.buffer.Append(bit); err != nil {
		// The buffer is drained after every append, so it can never
		// be full here.
		panic(err)
	}
	if w.buffer.IsFull() {
		w.emit(w.buffer.ExtractByte())
	}
}

// WriteBits appends a bit string made of '0' and '1' characters, first
// character first. Any other character is rejected before anything is
// written.
func (w *Writer) WriteBits(bits string) error {
	for i := 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return fmt.Errorf("bitio: invalid bit %q at offset %d", bits[i], i)
		}
	}
	for i := 0; i < len(bits); i++ {
		w.WriteBit(bits[i] == '1')
	}
	return w.err
}

// Flush writes any partially filled byte, zero-padded on the low side.
// Returns the first error encountered by the Writer.
func (w *Writer) Flush() error {
	if !w.buffer.IsEmpty() {
		w.emit(w.buffer.ExtractByte())
	}
	return w.err
}

// Pending returns the number of bits buffered but not yet written.
func (w *Writer) Pending() int {
	return w.buffer.Len()
}

// BytesWritten returns the number of bytes handed to the destination.
func (w *Writer) BytesWritten() int64 {
	return w.written
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) emit(value byte) {
	if w.err != nil {
		return
	}
	if err := w.destination.WriteByte(value); err != nil {
		w.err = fmt.Errorf("bitio: writing packed byte: %w", err)
		return
	}
	w.written++
}
