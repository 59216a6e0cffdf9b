package wallet

import (
	"testing"

	"bytes"
	"crypto/rand"
	"errors"

	"github.com/Madmaxs2/zcash/crypto/suites"
	"github.com/Madmaxs2/zcash/tree/frontier"
)

func random() []byte {
	out := make([]byte, 32)
	if _, err := rand.Read(out); err != nil {
		panic(err)
	}
	return out
}

func TestInitFromFrontier(t *testing.T) {
	f := frontier.New(suites.Sha256{}, 8)
	for i := 0; i < 5; i++ {
		if err := f.Append(random()); err != nil {
			t.Fatal(err)
		}
	}

	tree := NewNoteCommitmentTree()
	if err := tree.InitFromFrontier(f); err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 5 {
		t.Fatalf("unexpected tree size: %v", tree.Size())
	}
	if !bytes.Equal(tree.Root(), f.Root()) {
		t.Fatal("tree root differs from the installed frontier")
	}

	// The bridge is a deep copy: later appends to the source frontier must
	// not leak into the wallet tree.
	if err := f.Append(random()); err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 5 {
		t.Fatal("wallet tree aliases the source frontier")
	}
}

func TestInitRequiresNoHistory(t *testing.T) {
	f := frontier.New(suites.Sha256{}, 8)
	if err := f.Append(random()); err != nil {
		t.Fatal(err)
	}

	tree := NewNoteCommitmentTree()
	tree.Checkpoint()
	if err := tree.InitFromFrontier(f); !errors.Is(err, ErrCheckpointsExist) {
		t.Fatalf("expected ErrCheckpointsExist, got: %v", err)
	}
	if tree.Size() != 0 {
		t.Fatal("failed init modified the tree")
	}

	if size, ok := tree.Rewind(); !ok || size != 0 {
		t.Fatalf("unexpected rewind result: %v %v", size, ok)
	}
	if tree.CheckpointCount() != 0 {
		t.Fatal("rewind did not drop the checkpoint")
	}
	if err := tree.InitFromFrontier(f); err != nil {
		t.Fatal(err)
	}
}
