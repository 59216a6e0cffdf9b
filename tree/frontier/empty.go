package frontier

import (
	"github.com/Madmaxs2/zcash/crypto/suites"
)

// EmptyRoots returns the table of empty-subtree hashes for levels 0
// through depth inclusive: table[0] is the suite's empty leaf and
// table[i+1] is the hash of two table[i] children.
//
// The table is a pure function of the suite and depth. It is derived on
// demand and never persisted.
func EmptyRoots(suite suites.MerkleSuite, depth uint8) [][]byte {
	table := make([][]byte, depth+1)
	table[0] = suite.EmptyLeaf()
	for i := uint8(0); i < depth; i++ {
		table[i+1] = suite.Combine(i, table[i], table[i])
	}
	return table
}

// EmptyRoot returns the root hash of a perfectly empty tree of the given
// depth.
func EmptyRoot(suite suites.MerkleSuite, depth uint8) []byte {
	return EmptyRoots(suite, depth)[depth]
}
