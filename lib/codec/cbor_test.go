// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// SampleCounts is exported so that it embeds the way Stats does in
// huffman.Summary.
type SampleCounts struct {
	BlockCount    uint64 `json:"block_count"`
	TrailingBytes int    `json:"trailing_bytes"`
}

// sampleReport mirrors the shape of an inspect report: json tags
// only, an embedded struct, and an omitempty slice.
type sampleReport struct {
	Path string `json:"path"`
	SampleCounts
	MeanCodeLength float64       `json:"mean_code_length"`
	Codebook       []sampleEntry `json:"codebook,omitempty"`
}

type sampleEntry struct {
	Block string `json:"block"`
	Code  string `json:"code"`
}

func newSampleReport() sampleReport {
	return sampleReport{
		Path:           "notes.txt-huffman.hc",
		SampleCounts:   SampleCounts{BlockCount: 5, TrailingBytes: 1},
		MeanCodeLength: 1.6,
		Codebook: []sampleEntry{
			{Block: "42", Code: "0"},
			{Block: "43", Code: "10"},
			{Block: "41", Code: "11"},
		},
	}
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := newSampleReport()

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleReport
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Path != original.Path || decoded.SampleCounts != original.SampleCounts ||
		decoded.MeanCodeLength != original.MeanCodeLength || len(decoded.Codebook) != 3 {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
	for i := range original.Codebook {
		if decoded.Codebook[i] != original.Codebook[i] {
			t.Errorf("codebook[%d] = %+v, want %+v", i, decoded.Codebook[i], original.Codebook[i])
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(newSampleReport())
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(newSampleReport())
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}

	// Map iteration order must not leak into the encoding.
	mapFirst, err := Marshal(map[string]int{"zstd": 3, "lz4": 2, "none": 1})
	if err != nil {
		t.Fatal(err)
	}
	mapSecond, err := Marshal(map[string]int{"none": 1, "lz4": 2, "zstd": 3})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mapFirst, mapSecond) {
		t.Errorf("map encoding depends on insertion order: %x != %x", mapFirst, mapSecond)
	}
}

func TestEmbeddedFieldsFlatten(t *testing.T) {
	data, err := Marshal(newSampleReport())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var generic map[string]any
	if err := Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal into map: %v", err)
	}
	if _, ok := generic["block_count"]; !ok {
		t.Errorf("embedded field block_count not at top level: %v", generic)
	}
	if _, ok := generic["SampleCounts"]; ok {
		t.Errorf("embedded struct encoded as a nested map: %v", generic)
	}
}

func TestOmitemptyRespected(t *testing.T) {
	withCodebook := newSampleReport()
	withoutCodebook := newSampleReport()
	withoutCodebook.Codebook = nil

	dataWith, err := Marshal(withCodebook)
	if err != nil {
		t.Fatal(err)
	}
	dataWithout, err := Marshal(withoutCodebook)
	if err != nil {
		t.Fatal(err)
	}

	notation, err := Diagnose(dataWithout)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(notation, `"codebook"`) {
		t.Errorf("omitempty not effective: %s", notation)
	}
	if len(dataWithout) >= len(dataWith) {
		t.Errorf("omitted codebook did not shrink output: without=%d with=%d",
			len(dataWithout), len(dataWith))
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	entries := []sampleEntry{
		{Block: "00", Code: "0"},
		{Block: "ff", Code: "10"},
		{Block: "7f", Code: "11"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range entries {
		var got sampleEntry
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode entry %d: %v", i, err)
		}
		if got != want {
			t.Errorf("entry %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var report sampleReport
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &report); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(sampleEntry{Block: "41", Code: "11"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	for _, want := range []string{`"block"`, `"41"`, `"code"`, `"11"`} {
		if !strings.Contains(notation, want) {
			t.Errorf("notation %q does not contain %s", notation, want)
		}
	}
}

func BenchmarkMarshal(b *testing.B) {
	report := newSampleReport()
	b.ReportAllocs()
	for b.Loop() {
		Marshal(report)
	}
}
