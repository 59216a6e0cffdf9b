package orchard

import (
	"testing"

	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/Madmaxs2/zcash/tree/frontier"
	"github.com/Madmaxs2/zcash/wallet"
)

func random() [32]byte {
	var out [32]byte
	if _, err := rand.Read(out[:]); err != nil {
		panic(err)
	}
	return out
}

func TestEmptyRoot(t *testing.T) {
	if EmptyRoot() != NewFrontier().Root() {
		t.Fatal("empty root does not match the root of an empty frontier")
	}
}

func TestAppendBundle(t *testing.T) {
	f := NewFrontier()

	// A nil bundle is a no-op success.
	if err := f.AppendBundle(nil); err != nil {
		t.Fatal(err)
	} else if f.Size() != 0 {
		t.Fatal("nil bundle changed the frontier")
	}

	c0, c1, c2 := random(), random(), random()
	if err := f.AppendBundle(NewBundle([]Action{NewAction(c0), NewAction(c1)})); err != nil {
		t.Fatal(err)
	}
	if err := f.AppendBundle(NewBundle([]Action{NewAction(c2)})); err != nil {
		t.Fatal(err)
	}
	if f.Size() != 3 {
		t.Fatalf("unexpected size: %v", f.Size())
	}
	if pos, ok := f.Position(); !ok || pos != 2 {
		t.Fatalf("unexpected position: %v %v", pos, ok)
	}

	// The bundle path must agree with appending the commitments directly.
	direct := frontier.New(suite, MerkleDepth)
	for _, c := range [][32]byte{c0, c1, c2} {
		c := c
		if err := direct.Append(c[:]); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(direct.Root(), f.inner.Root()) {
		t.Fatal("bundle appends diverge from direct appends")
	}
}

// nearFullFrontier returns serialized bytes for a frontier whose most
// recent leaf sits at position 2^32 - 2, i.e. with room for exactly one
// more commitment.
func nearFullFrontier() []byte {
	position := uint64(1)<<MerkleDepth - 2

	buf := new(bytes.Buffer)
	buf.WriteByte(frontier.FormatVersion)
	buf.WriteByte(1)

	var varint [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(varint[:], position)
	buf.Write(varint[:n])

	leaf := random()
	buf.Write(leaf[:])

	buf.WriteByte(MerkleDepth)
	for i := 0; i < MerkleDepth; i++ {
		if position>>i&1 == 0 {
			buf.WriteByte(0)
			continue
		}
		buf.WriteByte(1)
		ommer := random()
		buf.Write(ommer[:])
	}
	return buf.Bytes()
}

func TestBundleAtomicity(t *testing.T) {
	f, err := ParseFrontier(bytes.NewReader(nearFullFrontier()))
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != uint64(1)<<MerkleDepth-1 {
		t.Fatalf("unexpected size: %v", f.Size())
	}
	root := f.Root()

	// Two actions overflow the last open slot: nothing may be applied.
	c0, c1 := random(), random()
	err = f.AppendBundle(NewBundle([]Action{NewAction(c0), NewAction(c1)}))
	if !errors.Is(err, frontier.ErrTreeFull) {
		t.Fatalf("expected ErrTreeFull, got: %v", err)
	}
	if f.Size() != uint64(1)<<MerkleDepth-1 {
		t.Fatal("failed bundle partially applied")
	}
	if f.Root() != root {
		t.Fatal("failed bundle changed the root")
	}

	// A single action still fits.
	if err := f.AppendBundle(NewBundle([]Action{NewAction(c0)})); err != nil {
		t.Fatal(err)
	}
	if f.Size() != uint64(1)<<MerkleDepth {
		t.Fatalf("unexpected size after final append: %v", f.Size())
	}

	// The tree is now full.
	err = f.AppendBundle(NewBundle([]Action{NewAction(c1)}))
	if !errors.Is(err, frontier.ErrTreeFull) {
		t.Fatalf("expected ErrTreeFull, got: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	f := NewFrontier()
	for i := 0; i < 9; i++ {
		c := random()
		if err := f.AppendBundle(NewBundle([]Action{NewAction(c)})); err != nil {
			t.Fatal(err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Serialize(buf); err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseFrontier(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(parsed) || f.Root() != parsed.Root() {
		t.Fatal("round-tripped frontier differs")
	}
}

func TestInitWallet(t *testing.T) {
	f := NewFrontier()
	if err := f.AppendBundle(NewBundle([]Action{NewAction(random())})); err != nil {
		t.Fatal(err)
	}

	w := wallet.NewNoteCommitmentTree()
	if err := f.InitWallet(w); err != nil {
		t.Fatal(err)
	}
	if w.Size() != 1 {
		t.Fatalf("unexpected wallet tree size: %v", w.Size())
	}

	// A wallet with checkpointed history must be rejected.
	w2 := wallet.NewNoteCommitmentTree()
	w2.Checkpoint()
	if err := f.InitWallet(w2); !errors.Is(err, wallet.ErrCheckpointsExist) {
		t.Fatalf("expected ErrCheckpointsExist, got: %v", err)
	}
}
