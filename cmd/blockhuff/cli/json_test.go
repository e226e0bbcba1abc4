// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/blockhuff/lib/codec"
)

type sampleResult struct {
	Path  string   `json:"path"`
	Codes []string `json:"codes"`
}

func TestEmitJSON_Disabled(t *testing.T) {
	var output JSONOutput
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, sampleResult{Path: "a"})
	if done || err != nil {
		t.Errorf("EmitJSON() = (%v, %v), want (false, nil)", done, err)
	}
	if buffer.Len() != 0 {
		t.Errorf("EmitJSON wrote %q with --json unset", buffer.String())
	}
}

func TestEmitJSON_Enabled(t *testing.T) {
	output := JSONOutput{OutputJSON: true}
	var buffer bytes.Buffer

	done, err := output.EmitJSON(&buffer, sampleResult{Path: "notes.txt-huffman.hc", Codes: []string{"0", "10"}})
	if !done || err != nil {
		t.Fatalf("EmitJSON() = (%v, %v), want (true, nil)", done, err)
	}

	var decoded sampleResult
	if err := json.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buffer.String())
	}
	if decoded.Path != "notes.txt-huffman.hc" || len(decoded.Codes) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(buffer.String(), "\n  \"path\"") {
		t.Errorf("output is not indented:\n%s", buffer.String())
	}
}

func TestEmitJSON_NilSliceBecomesEmptyArray(t *testing.T) {
	output := JSONOutput{OutputJSON: true}
	var buffer bytes.Buffer

	var entries []sampleResult
	if _, err := output.EmitJSON(&buffer, entries); err != nil {
		t.Fatalf("EmitJSON: %v", err)
	}
	if got := strings.TrimSpace(buffer.String()); got != "[]" {
		t.Errorf("nil slice encoded as %q, want []", got)
	}
}

func TestEmitCBOR(t *testing.T) {
	var disabled CBOROutput
	var buffer bytes.Buffer
	if done, err := disabled.EmitCBOR(&buffer, sampleResult{}); done || err != nil {
		t.Errorf("EmitCBOR() with --cbor unset = (%v, %v), want (false, nil)", done, err)
	}

	enabled := CBOROutput{OutputCBOR: true}
	original := sampleResult{Path: "notes.txt-huffman.hc", Codes: []string{"0", "10", "11"}}
	done, err := enabled.EmitCBOR(&buffer, original)
	if !done || err != nil {
		t.Fatalf("EmitCBOR() = (%v, %v), want (true, nil)", done, err)
	}

	var decoded sampleResult
	if err := codec.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not CBOR: %v", err)
	}
	if decoded.Path != original.Path || strings.Join(decoded.Codes, ",") != "0,10,11" {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}
