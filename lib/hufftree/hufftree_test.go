// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hufftree

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bureau-foundation/blockhuff/lib/block"
)

func blockOf(data ...byte) block.Block {
	return block.FromBytes(data)
}

// frequenciesOf counts the n-byte blocks of data, ignoring a trailing
// partial block.
func frequenciesOf(t *testing.T, data []byte, n int) Frequencies {
	t.Helper()
	frequencies := make(Frequencies)
	for offset := 0; offset+n <= len(data); offset += n {
		b, err := block.New(data[offset:], n)
		if err != nil {
			t.Fatalf("block.New at offset %d: %v", offset, err)
		}
		frequencies.Add(b)
	}
	return frequencies
}

// checkTree verifies the structural invariants of a built tree: every
// internal node has two children and the sum of their frequencies, and
// every leaf carries its block's true count.
func checkTree(t *testing.T, root Node, frequencies Frequencies) {
	t.Helper()

	seen := make(map[block.Block]bool)
	stack := []Node{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := current.(type) {
		case *Leaf:
			if seen[n.Block] {
				t.Errorf("block %s appears in more than one leaf", n.Block)
			}
			seen[n.Block] = true
			if n.Count != frequencies[n.Block] {
				t.Errorf("leaf %s count = %d, want %d", n.Block, n.Count, frequencies[n.Block])
			}
		case *Internal:
			if n.Left == nil || n.Right == nil {
				t.Fatalf("internal node with a missing child")
			}
			if n.Count != n.Left.Frequency()+n.Right.Frequency() {
				t.Errorf("internal count %d != %d + %d", n.Count, n.Left.Frequency(), n.Right.Frequency())
			}
			stack = append(stack, n.Left, n.Right)
		default:
			t.Fatalf("unexpected node type %T", current)
		}
	}

	if len(seen) != len(frequencies) {
		t.Errorf("tree has %d leaves, want %d", len(seen), len(frequencies))
	}
	if root.Frequency() != frequencies.Total() {
		t.Errorf("root frequency = %d, want %d", root.Frequency(), frequencies.Total())
	}
}

func checkPrefixFree(t *testing.T, table *CodeTable) {
	t.Helper()
	entries := table.Entries()
	for i, a := range entries {
		if a.Code.Len() == 0 {
			t.Errorf("block %s has an empty code in a multi-leaf tree", a.Block)
		}
		for j, b := range entries {
			if i != j && b.Code.HasPrefix(a.Code) {
				t.Errorf("code %q (%s) is a prefix of %q (%s)", a.Code, a.Block, b.Code, b.Block)
			}
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	if root := Build(Frequencies{}); root != nil {
		t.Fatalf("Build(empty) = %v, want nil", root)
	}
	if table := Codes(nil); table.Len() != 0 {
		t.Errorf("Codes(nil) has %d entries, want 0", table.Len())
	}
	if Depth(nil) != -1 {
		t.Errorf("Depth(nil) = %d, want -1", Depth(nil))
	}
}

func TestBuildSingleBlock(t *testing.T) {
	frequencies := Frequencies{blockOf('x', 'y'): 7}
	root := Build(frequencies)

	leaf, ok := root.(*Leaf)
	if !ok {
		t.Fatalf("single-block tree root is %T, want *Leaf", root)
	}
	if leaf.Count != 7 {
		t.Errorf("leaf count = %d, want 7", leaf.Count)
	}

	table := Codes(root)
	code, ok := table.Code(blockOf('x', 'y'))
	if !ok {
		t.Fatal("lone leaf missing from code table")
	}
	if code != "" {
		t.Errorf("lone leaf code = %q, want empty", code)
	}
	if Depth(root) != 0 {
		t.Errorf("Depth = %d, want 0", Depth(root))
	}
}

func TestBuildConcreteScenario(t *testing.T) {
	data := []byte{0x41, 0x42, 0x41, 0x42, 0x43}
	frequencies := frequenciesOf(t, data, 1)

	want := map[byte]uint64{0x41: 2, 0x42: 2, 0x43: 1}
	for value, count := range want {
		if frequencies[blockOf(value)] != count {
			t.Errorf("frequency of %#x = %d, want %d", value, frequencies[blockOf(value)], count)
		}
	}

	root := Build(frequencies)
	checkTree(t, root, frequencies)

	table := Codes(root)
	checkPrefixFree(t, table)

	rare, _ := table.Code(blockOf(0x43))
	for _, common := range []byte{0x41, 0x42} {
		code, _ := table.Code(blockOf(common))
		if rare.Len() < code.Len() {
			t.Errorf("code for 0x43 (%q) is shorter than code for %#x (%q)", rare, common, code)
		}
	}
}

func TestBuildInvariants(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
	}{
		{"text bytes", []byte("abracadabra alakazam hocus pocus"), 1},
		{"text pairs", []byte("abracadabra alakazam hocus pocus"), 2},
		{"all byte values", allBytes(), 1},
		{"skewed", append(bytes.Repeat([]byte{'a'}, 1000), []byte("bcdefg")...), 1},
		{"wide blocks", bytes.Repeat([]byte("0123456789abcdef"), 9), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frequencies := frequenciesOf(t, tt.data, tt.n)
			root := Build(frequencies)
			checkTree(t, root, frequencies)

			table := Codes(root)
			if table.Len() != len(frequencies) {
				t.Fatalf("code table has %d entries, want %d", table.Len(), len(frequencies))
			}
			if len(frequencies) > 1 {
				checkPrefixFree(t, table)
			}
			for _, leaf := range Leaves(root) {
				code, ok := table.Lookup(leaf.Block.Bytes())
				if !ok {
					t.Fatalf("Lookup missing block %s", leaf.Block)
				}
				if code.Len() > Depth(root) {
					t.Errorf("code %q longer than tree depth %d", code, Depth(root))
				}
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	frequencies := frequenciesOf(t, []byte("mississippi river banks"), 1)

	var first bytes.Buffer
	if err := WriteTree(&first, Build(frequencies), 1); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}
	for range 10 {
		var again bytes.Buffer
		if err := WriteTree(&again, Build(frequencies), 1); err != nil {
			t.Fatalf("WriteTree failed: %v", err)
		}
		if !bytes.Equal(first.Bytes(), again.Bytes()) {
			t.Fatal("Build produced different trees for the same frequencies")
		}
	}
}

func TestCodesLeftZeroRightOne(t *testing.T) {
	// ((a, b), c)
	root := &Internal{
		Left: &Internal{
			Left:  &Leaf{Block: blockOf('a')},
			Right: &Leaf{Block: blockOf('b')},
		},
		Right: &Leaf{Block: blockOf('c')},
	}

	table := Codes(root)
	want := map[byte]Code{'a': "00", 'b': "01", 'c': "1"}
	for value, code := range want {
		got, ok := table.Code(blockOf(value))
		if !ok || got != code {
			t.Errorf("code for %q = %q, want %q", value, got, code)
		}
	}

	entries := table.Entries()
	if len(entries) != 3 || entries[0].Block != blockOf('a') || entries[2].Block != blockOf('c') {
		t.Errorf("Entries not in left-to-right order: %v", entries)
	}
	if lengths := table.Lengths(); len(lengths) != 3 || lengths[0] != 1 || lengths[2] != 2 {
		t.Errorf("Lengths() = %v, want [1 2 2]", lengths)
	}
}

func TestWriteTreeFormat(t *testing.T) {
	root := &Internal{
		Left: &Leaf{Block: blockOf('a', 'b')},
		Right: &Internal{
			Left:  &Leaf{Block: blockOf('c', 'd')},
			Right: &Leaf{Block: blockOf('e', 'f')},
		},
	}

	var buffer bytes.Buffer
	if err := WriteTree(&buffer, root, 2); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}

	want := []byte{
		0x00,
		0x01, 'a', 'b',
		0x00,
		0x01, 'c', 'd',
		0x01, 'e', 'f',
	}
	if !bytes.Equal(buffer.Bytes(), want) {
		t.Errorf("WriteTree = %x, want %x", buffer.Bytes(), want)
	}
}

func TestWriteTreeRejectsBadInput(t *testing.T) {
	if err := WriteTree(io.Discard, nil, 1); err == nil {
		t.Error("WriteTree(nil) should fail")
	}
	if err := WriteTree(io.Discard, &Leaf{Block: blockOf(1, 2)}, 1); err == nil {
		t.Error("WriteTree with a 2-byte leaf and block size 1 should fail")
	}
}

func TestTreeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    int
	}{
		{"single leaf", []byte("zzzz"), 2},
		{"two leaves", []byte("ab"), 1},
		{"all byte values", allBytes(), 1},
		{"triples", []byte("the quick brown fox jumps over the lazy dog"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build(frequenciesOf(t, tt.data, tt.n))

			var buffer bytes.Buffer
			if err := WriteTree(&buffer, root, tt.n); err != nil {
				t.Fatalf("WriteTree failed: %v", err)
			}
			encoded := append([]byte(nil), buffer.Bytes()...)

			decoded, err := ReadTree(&buffer, tt.n)
			if err != nil {
				t.Fatalf("ReadTree failed: %v", err)
			}
			if buffer.Len() != 0 {
				t.Errorf("ReadTree left %d unread bytes", buffer.Len())
			}

			original := Codes(root).Entries()
			restored := Codes(decoded).Entries()
			if len(original) != len(restored) {
				t.Fatalf("restored %d leaves, want %d", len(restored), len(original))
			}
			for i := range original {
				if original[i] != restored[i] {
					t.Errorf("entry %d: got %s=%q, want %s=%q", i,
						restored[i].Block, restored[i].Code, original[i].Block, original[i].Code)
				}
			}

			var again bytes.Buffer
			if err := WriteTree(&again, decoded, tt.n); err != nil {
				t.Fatalf("WriteTree(decoded) failed: %v", err)
			}
			if !bytes.Equal(encoded, again.Bytes()) {
				t.Error("re-serialized tree differs from the original encoding")
			}
		})
	}
}

func TestReadTreeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown flag", []byte{0x07}},
		{"short leaf", []byte{0x01, 'a'}},
		{"missing right child", []byte{0x00, 0x01, 'a', 'b'}},
		{"internal only", []byte{0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTree(bytes.NewReader(tt.data), 2)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("ReadTree(%x) = %v, want ErrMalformed", tt.data, err)
			}
		})
	}

	if _, err := ReadTree(bytes.NewReader([]byte{0x01, 'a'}), 0); err == nil {
		t.Error("ReadTree with block size 0 should fail")
	}
}

func TestDeepTree(t *testing.T) {
	// Fibonacci frequencies produce a maximally unbalanced tree: one
	// leaf per level.
	frequencies := make(Frequencies)
	a, b := uint64(1), uint64(1)
	const leaves = 80
	for i := range leaves {
		frequencies[blockOf(byte(i))] = a
		a, b = b, a+b
	}

	root := Build(frequencies)
	checkTree(t, root, frequencies)
	if depth := Depth(root); depth != leaves-1 {
		t.Errorf("Depth = %d, want %d", depth, leaves-1)
	}

	table := Codes(root)
	checkPrefixFree(t, table)

	var buffer bytes.Buffer
	if err := WriteTree(&buffer, root, 1); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}
	decoded, err := ReadTree(&buffer, 1)
	if err != nil {
		t.Fatalf("ReadTree failed: %v", err)
	}
	if Depth(decoded) != leaves-1 {
		t.Errorf("decoded Depth = %d, want %d", Depth(decoded), leaves-1)
	}
}

func allBytes() []byte {
	data := make([]byte, 0, 512)
	for i := range 256 {
		data = append(data, byte(i))
		if i%3 == 0 {
			data = append(data, byte(i))
		}
	}
	return data
}
