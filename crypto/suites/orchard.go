package suites

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// orchardPersonalization is the domain-separation prefix for Orchard tree
// node hashes. The level byte follows the prefix so that each level of the
// tree hashes into a distinct domain.
const orchardPersonalization = "z.cash:Orchard-MerkleCRH"

// Orchard implements the MerkleSuite interface for the Orchard note
// commitment tree, hashing nodes with BLAKE2b-256.
type Orchard struct{}

var _ MerkleSuite = Orchard{}

func (s Orchard) Name() string  { return "orchard" }
func (s Orchard) HashSize() int { return 32 }

func (s Orchard) EmptyLeaf() []byte {
	out := blake2b.Sum256([]byte("z.cash:Orchard-EmptyLeaf"))
	return out[:]
}

func (s Orchard) Combine(level uint8, left, right []byte) []byte {
	if len(left) != 32 {
		panic(fmt.Errorf("left hash is wrong length: %v", len(left)))
	} else if len(right) != 32 {
		panic(fmt.Errorf("right hash is wrong length: %v", len(right)))
	}

	input := make([]byte, 0, len(orchardPersonalization)+1+64)
	input = append(input, orchardPersonalization...)
	input = append(input, level)
	input = append(input, left...)
	input = append(input, right...)

	out := blake2b.Sum256(input)
	return out[:]
}
