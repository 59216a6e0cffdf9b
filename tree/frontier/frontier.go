// Package frontier implements an incremental Merkle tree frontier: the
// minimal state needed to accept new leaves one at a time and recompute
// the current root on demand, without retaining the full tree.
//
// The frontier of a tree with its most recent leaf at position p consists
// of that leaf plus one ommer for each set bit of p: the root of the
// completed sibling subtree at that level. Appending a leaf updates the
// ommers by the same carry rule as incrementing a binary counter.
package frontier

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/Madmaxs2/zcash/crypto/suites"
)

// sliceHeaderSize is the in-memory size of a []byte header, used for
// resource accounting.
const sliceHeaderSize = 24

func dup(in []byte) []byte {
	if in == nil {
		return nil
	}
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// Frontier is the rightmost path of an append-only Merkle tree of bounded
// depth.
//
// A Frontier is a single-owner value. Append must be serialized by the
// caller against every other method if an instance is shared between
// goroutines; read-only methods may otherwise be called freely.
type Frontier struct {
	suite suites.MerkleSuite
	depth uint8

	// position and leaf are meaningful only while leaf is non-nil. ommers
	// is indexed by level: ommers[i] is non-nil exactly when bit i of
	// position is set, and len(ommers) is the bit length of position.
	position uint64
	leaf     []byte
	ommers   [][]byte
}

// New returns an empty frontier over the given suite. depth is the number
// of levels between the leaves and the root, and must be in [1, 63].
func New(suite suites.MerkleSuite, depth uint8) *Frontier {
	if depth == 0 || depth > 63 {
		panic(fmt.Errorf("unsupported tree depth: %v", depth))
	}
	return &Frontier{suite: suite, depth: depth}
}

// Suite returns the hash suite the frontier was created with.
func (f *Frontier) Suite() suites.MerkleSuite { return f.suite }

// Depth returns the depth of the tree the frontier tracks.
func (f *Frontier) Depth() uint8 { return f.depth }

// maxPosition is the largest leaf position a tree of the given depth can
// hold.
func maxPosition(depth uint8) uint64 {
	return (uint64(1) << depth) - 1
}

// Append adds cm as the next leaf of the tree. It is the only mutating
// operation. If the tree already holds 2^depth leaves, ErrTreeFull is
// returned and the frontier is unchanged.
func (f *Frontier) Append(cm []byte) error {
	if len(cm) != f.suite.HashSize() {
		panic(fmt.Errorf("commitment is wrong length: %v", len(cm)))
	}

	if f.leaf == nil {
		f.position = 0
		f.leaf = dup(cm)
		return nil
	}
	if f.position == maxPosition(f.depth) {
		return ErrTreeFull
	}

	// The prior leaf carries upward through each level where the position
	// has a set bit, exactly like incrementing a binary counter.
	carry := f.leaf
	level := 0
	for f.position>>level&1 == 1 {
		carry = f.suite.Combine(uint8(level), f.ommers[level], carry)
		f.ommers[level] = nil
		level++
	}
	for len(f.ommers) <= level {
		f.ommers = append(f.ommers, nil)
	}
	f.ommers[level] = carry

	f.position++
	f.leaf = dup(cm)
	return nil
}

// Position returns the position of the most recently appended leaf. The
// second return value is false iff no leaf has been appended.
func (f *Frontier) Position() (uint64, bool) {
	if f.leaf == nil {
		return 0, false
	}
	return f.position, true
}

// Size returns the number of leaves appended so far.
func (f *Frontier) Size() uint64 {
	if f.leaf == nil {
		return 0
	}
	return f.position + 1
}

// Root returns the current root of the tree, padding every incomplete
// subtree with the canonical empty-subtree hash of its level. It does not
// mutate the frontier; for an empty frontier it equals EmptyRoot.
func (f *Frontier) Root() []byte {
	table := EmptyRoots(f.suite, f.depth)
	if f.leaf == nil {
		return table[f.depth]
	}

	cur := f.leaf
	for i := uint8(0); i < f.depth; i++ {
		if f.position>>i&1 == 1 {
			cur = f.suite.Combine(i, f.ommers[i], cur)
		} else {
			cur = f.suite.Combine(i, cur, table[i])
		}
	}
	return cur
}

// Clone returns a deep, independent copy of the frontier.
func (f *Frontier) Clone() *Frontier {
	out := &Frontier{
		suite:    f.suite,
		depth:    f.depth,
		position: f.position,
		leaf:     dup(f.leaf),
	}
	if f.ommers != nil {
		out.ommers = make([][]byte, len(f.ommers))
		for i, ommer := range f.ommers {
			out.ommers[i] = dup(ommer)
		}
	}
	return out
}

// Equal reports whether two frontiers represent the same tree state.
func (f *Frontier) Equal(other *Frontier) bool {
	if f.depth != other.depth || f.Size() != other.Size() {
		return false
	}
	if !bytes.Equal(f.leaf, other.leaf) {
		return false
	}
	if len(f.ommers) != len(other.ommers) {
		return false
	}
	for i := range f.ommers {
		if !bytes.Equal(f.ommers[i], other.ommers[i]) {
			return false
		}
	}
	return true
}

// DynamicMemoryUsage returns the number of heap bytes backing the
// frontier's variable-sized state, for resource accounting by the host.
func (f *Frontier) DynamicMemoryUsage() uint64 {
	usage := uint64(cap(f.ommers)) * sliceHeaderSize
	for _, ommer := range f.ommers {
		usage += uint64(len(ommer))
	}
	usage += uint64(len(f.leaf))
	return usage
}

// ommerCount returns the expected length of the ommer list for a non-empty
// frontier at the given position.
func ommerCount(position uint64) int {
	return bits.Len64(position)
}
