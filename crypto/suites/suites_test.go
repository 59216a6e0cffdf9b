package suites

import (
	"testing"

	"bytes"
	"crypto/rand"
)

func random() []byte {
	out := make([]byte, 32)
	if _, err := rand.Read(out); err != nil {
		panic(err)
	}
	return out
}

func TestSuites(t *testing.T) {
	left, right := random(), random()

	for _, suite := range []MerkleSuite{Orchard{}, Sha256{}} {
		if len(suite.EmptyLeaf()) != suite.HashSize() {
			t.Fatalf("%v: empty leaf has wrong size", suite.Name())
		}

		out := suite.Combine(0, left, right)
		if len(out) != suite.HashSize() {
			t.Fatalf("%v: combined hash has wrong size", suite.Name())
		}
		// Deterministic, and separated by level and child order.
		if !bytes.Equal(out, suite.Combine(0, left, right)) {
			t.Fatalf("%v: combine is not deterministic", suite.Name())
		}
		if bytes.Equal(out, suite.Combine(1, left, right)) {
			t.Fatalf("%v: levels are not domain-separated", suite.Name())
		}
		if bytes.Equal(out, suite.Combine(0, right, left)) {
			t.Fatalf("%v: child order is not significant", suite.Name())
		}
	}

	if bytes.Equal(Orchard{}.Combine(0, left, right), Sha256{}.Combine(0, left, right)) {
		t.Fatal("suites are not distinct")
	}
}
