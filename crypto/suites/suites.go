// Package suites implements each supported Merkle hash suite.
package suites

// MerkleSuite is the interface implemented by each supported hash suite.
//
// A suite fixes the function used to combine two child nodes into their
// parent and the canonical hash of an unoccupied leaf position. Every hash
// produced or consumed by a suite is exactly HashSize() bytes.
type MerkleSuite interface {
	Name() string
	HashSize() int

	// EmptyLeaf returns the canonical hash of an unoccupied leaf position.
	EmptyLeaf() []byte

	// Combine returns the hash of the internal node at the given level
	// whose children are left and right. Level 0 combines two leaves.
	Combine(level uint8, left, right []byte) []byte
}
