// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitio packs individual bits into bytes, most significant
// bit first.
//
// [Buffer] is the 8-bit accumulator: bits are appended one at a time
// and a complete byte is extracted when the buffer is full. The first
// bit appended lands in bit 7, the eighth in bit 0. Appending to a
// full buffer fails with [ErrOverflow]; callers are expected to drain
// with [Buffer.ExtractByte] as soon as [Buffer.IsFull] reports true.
//
// [Writer] wraps a Buffer around an io.ByteWriter and drains it
// automatically. Write errors are sticky: after the first failure all
// further writes are no-ops and the error is reported by
// [Writer.Flush] and [Writer.Err]. Flushing on a non-byte boundary
// pads the final byte with zero bits on the low side. The stream
// carries no padding marker; readers must know from context how many
// bits are meaningful.
//
// Reading is done inline by the decoder with [BitAt] rather than a
// symmetric reader type, because the decoder stops mid-byte.
package bitio
