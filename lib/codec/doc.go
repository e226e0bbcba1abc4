// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides blockhuff's standard CBOR encoding
// configuration.
//
// blockhuff emits machine-readable reports in two formats: JSON for
// people and scripts (--json), and CBOR for tools that archive or diff
// reports byte for byte (--cbor). The encoder uses Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same report always
// produces identical bytes.
//
// Report types carry `json` struct tags only. fxamacker/cbor v2 reads
// `json` tags when `cbor` tags are absent, so one tag controls field
// naming and omitempty for both formats.
//
//	data, err := codec.Marshal(summary)
//	err = codec.NewEncoder(os.Stdout).Encode(summary)
//
// The artifact format itself is not CBOR; see lib/huffman.
package codec
