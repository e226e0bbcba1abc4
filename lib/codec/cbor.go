// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	// RFC 8949 §4.2 Core Deterministic Encoding: sorted map keys,
	// shortest-form integers and lengths, no indefinite lengths.
	encMode = must(cbor.CoreDetEncOptions().EncMode())

	// Decoding into any produces map[string]any so a decoded report
	// can be handed straight to encoding/json.
	decMode = must(cbor.DecOptions{
		DefaultMapType: reflect.TypeFor[map[string]any](),
	}.DecMode())
)

func must[M any](mode M, err error) M {
	if err != nil {
		panic("codec: invalid CBOR options: " + err.Error())
	}
	return mode
}

// Encoder and Decoder are re-exported so callers depend on lib/codec
// alone.
type (
	Encoder = cbor.Encoder
	Decoder = cbor.Decoder
)

// Marshal returns the deterministic encoding of v. Equal values always
// produce identical bytes.
func Marshal(v any) ([]byte, error) { return encMode.Marshal(v) }

// Unmarshal decodes data into v, ignoring fields v does not have.
func Unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }

// NewEncoder writes a stream of deterministically encoded items to w.
func NewEncoder(w io.Writer) *Encoder { return encMode.NewEncoder(w) }

// NewDecoder reads a stream of items from r.
func NewDecoder(r io.Reader) *Decoder { return decMode.NewDecoder(r) }

// Diagnose renders data in CBOR diagnostic notation (RFC 8949 §8),
// which tests use to assert on encodings without comparing bytes.
func Diagnose(data []byte) (string, error) { return cbor.Diagnose(data) }
