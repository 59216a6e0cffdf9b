package suites

import (
	"crypto/sha256"
	"fmt"
)

// Sha256 implements the MerkleSuite interface using SHA-256 with a one-byte
// domain prefix separating leaves from internal nodes. It is a lightweight
// suite intended for tests and tooling.
type Sha256 struct{}

var _ MerkleSuite = Sha256{}

func (s Sha256) Name() string  { return "sha256" }
func (s Sha256) HashSize() int { return 32 }

func (s Sha256) EmptyLeaf() []byte {
	out := sha256.Sum256([]byte{0x00})
	return out[:]
}

func (s Sha256) Combine(level uint8, left, right []byte) []byte {
	if len(left) != 32 {
		panic(fmt.Errorf("left hash is wrong length: %v", len(left)))
	} else if len(right) != 32 {
		panic(fmt.Errorf("right hash is wrong length: %v", len(right)))
	}

	input := make([]byte, 66)
	input[0] = 0x01
	input[1] = level
	copy(input[2:34], left)
	copy(input[34:66], right)

	out := sha256.Sum256(input)
	return out[:]
}
