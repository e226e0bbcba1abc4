// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/bureau-foundation/blockhuff/lib/codec"
)

// JSONOutput adds --json to any params struct that embeds it:
//
//	type inspectParams struct {
//	    cli.JSONOutput
//	    Codes bool `json:"-" flag:"codes" desc:"list every code"`
//	}
//
//	if done, err := params.EmitJSON(stdout, summary); done {
//	    return err
//	}
//	// text output follows
type JSONOutput struct {
	OutputJSON bool `json:"-" flag:"json" desc:"output as JSON"`
}

// EmitJSON writes result to w as indented JSON when --json was given.
// done reports whether anything was written; when it is false the
// caller prints its text form instead. A nil slice is written as [],
// never null.
func (j *JSONOutput) EmitJSON(w io.Writer, result any) (done bool, err error) {
	if !j.OutputJSON {
		return false, nil
	}
	return true, WriteJSON(w, emptyIfNilSlice(result))
}

// CBOROutput adds --cbor: one deterministic CBOR data item on w, for
// callers that archive or hash the report.
type CBOROutput struct {
	OutputCBOR bool `json:"-" flag:"cbor" desc:"output as deterministic CBOR"`
}

// EmitCBOR is the --cbor counterpart of [JSONOutput.EmitJSON].
func (c *CBOROutput) EmitCBOR(w io.Writer, result any) (done bool, err error) {
	if !c.OutputCBOR {
		return false, nil
	}
	return true, codec.NewEncoder(w).Encode(emptyIfNilSlice(result))
}

// WriteJSON writes value to w as two-space indented JSON followed by a
// newline. It does not rewrite nil slices.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func emptyIfNilSlice(value any) any {
	reflected := reflect.ValueOf(value)
	if reflected.Kind() != reflect.Slice || !reflected.IsNil() {
		return value
	}
	return reflect.MakeSlice(reflected.Type(), 0, 0).Interface()
}
