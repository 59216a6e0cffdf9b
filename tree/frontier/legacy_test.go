package frontier

import (
	"testing"

	"bytes"
)

func serializeLegacy(f *Frontier) []byte {
	buf := new(bytes.Buffer)
	if err := f.SerializeLegacy(buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// concat builds expected legacy encodings from presence-marked fields.
func concat(fields ...[]byte) []byte {
	out := make([]byte, 0)
	for _, field := range fields {
		out = append(out, field...)
	}
	return out
}

func present(hash []byte) []byte { return concat([]byte{0x01}, hash) }

var absent = []byte{0x00}

func TestLegacyEmpty(t *testing.T) {
	got := serializeLegacy(New(testSuite, 4))

	// Empty left, empty right, zero-length parents list.
	if !bytes.Equal(got, []byte{0x00, 0x00, 0x00}) {
		t.Fatalf("unexpected legacy encoding of empty tree: %x", got)
	}
}

func TestLegacyGolden(t *testing.T) {
	c0, c1, c2, c3, c4 := random(), random(), random(), random(), random()
	h01 := testSuite.Combine(0, c0, c1)
	h23 := testSuite.Combine(0, c2, c3)
	h0123 := testSuite.Combine(1, h01, h23)

	for _, tc := range []struct {
		leaves [][]byte
		want   []byte
	}{
		// One leaf: it is the left child, nothing else.
		{[][]byte{c0}, concat(present(c0), absent, []byte{0x00})},
		// Two leaves: both level-0 children occupied.
		{[][]byte{c0, c1}, concat(present(c0), present(c1), []byte{0x00})},
		// Three leaves: c2 starts a fresh pair, the completed pair moves
		// into the parents stack.
		{[][]byte{c0, c1, c2}, concat(present(c2), absent, []byte{0x01}, present(h01))},
		// Four leaves.
		{[][]byte{c0, c1, c2, c3}, concat(present(c2), present(c3), []byte{0x01}, present(h01))},
		// Five leaves: the level-1 slot is open again, the completed
		// four-leaf subtree sits at level 2.
		{[][]byte{c0, c1, c2, c3, c4}, concat(present(c4), absent, []byte{0x02}, absent, present(h0123))},
	} {
		got := serializeLegacy(build(5, tc.leaves))
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("unexpected legacy encoding with %v leaves:\n got %x\nwant %x", len(tc.leaves), got, tc.want)
		}
	}
}

func TestLegacyDoesNotMutate(t *testing.T) {
	f := build(5, [][]byte{random(), random(), random()})
	before := f.Clone()

	serializeLegacy(f)
	serialize(f)

	if !f.Equal(before) {
		t.Fatal("serialization mutated the frontier")
	}
}
