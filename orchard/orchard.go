// Package orchard binds the generic Merkle frontier to the Orchard note
// commitment tree: 32-byte note commitments in a depth-32 tree.
package orchard

import (
	"fmt"
	"io"

	"github.com/Madmaxs2/zcash/crypto/suites"
	"github.com/Madmaxs2/zcash/tree/frontier"
	"github.com/Madmaxs2/zcash/wallet"
)

// MerkleDepth is the depth of the Orchard note commitment tree.
const MerkleDepth = 32

var suite = suites.Orchard{}

// EmptyRoot returns the root of an empty Orchard note commitment tree. No
// frontier instance is required.
func EmptyRoot() [32]byte {
	var out [32]byte
	copy(out[:], frontier.EmptyRoot(suite, MerkleDepth))
	return out
}

// Frontier is an Orchard incremental Merkle frontier.
type Frontier struct {
	inner *frontier.Frontier
}

// NewFrontier returns an empty Orchard frontier.
func NewFrontier() *Frontier {
	return &Frontier{inner: frontier.New(suite, MerkleDepth)}
}

// ParseFrontier reads an Orchard frontier from the given stream in the
// current serialization format.
func ParseFrontier(r io.Reader) (*Frontier, error) {
	inner, err := frontier.Parse(r, suite, MerkleDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to parse v5 Merkle frontier: %w", err)
	}
	return &Frontier{inner: inner}, nil
}

// Serialize writes the frontier to the given stream in the current
// serialization format.
func (f *Frontier) Serialize(w io.Writer) error {
	if err := f.inner.Serialize(w); err != nil {
		return fmt.Errorf("failed to serialize v5 Merkle frontier: %w", err)
	}
	return nil
}

// SerializeLegacy writes the frontier to the given stream in the legacy
// fixed-depth tree encoding.
func (f *Frontier) SerializeLegacy(w io.Writer) error {
	if err := f.inner.SerializeLegacy(w); err != nil {
		return fmt.Errorf("failed to serialize Merkle frontier in legacy format: %w", err)
	}
	return nil
}

// Root returns the current root of the note commitment tree.
func (f *Frontier) Root() [32]byte {
	var out [32]byte
	copy(out[:], f.inner.Root())
	return out
}

// Size returns the number of note commitments appended to the frontier.
func (f *Frontier) Size() uint64 { return f.inner.Size() }

// Position returns the position of the most recently appended note
// commitment; the second return value is false iff the frontier is empty.
func (f *Frontier) Position() (uint64, bool) { return f.inner.Position() }

// DynamicMemoryUsage returns the heap bytes backing the frontier's
// variable-sized state.
func (f *Frontier) DynamicMemoryUsage() uint64 { return f.inner.DynamicMemoryUsage() }

// Clone returns a deep, independent copy of the frontier.
func (f *Frontier) Clone() *Frontier {
	return &Frontier{inner: f.inner.Clone()}
}

// Equal reports whether two frontiers represent the same tree state.
func (f *Frontier) Equal(other *Frontier) bool { return f.inner.Equal(other.inner) }

// AppendBundle appends the output commitment of every action in the
// bundle to the frontier, in order. A nil bundle is a no-op. If any append
// would exceed the tree's capacity the frontier is left at its pre-call
// state and an error wrapping frontier.ErrTreeFull is returned: the bundle
// is applied in full or not at all.
func (f *Frontier) AppendBundle(bundle *Bundle) error {
	if bundle == nil {
		return nil
	}

	staged := f.inner.Clone()
	for _, action := range bundle.Actions() {
		cmx := action.Cmx()
		if err := staged.Append(cmx[:]); err != nil {
			return fmt.Errorf("appending note commitment: %w", err)
		}
	}
	f.inner = staged
	return nil
}

// InitWallet installs a copy of the frontier as the sole bridge state of
// the wallet's note commitment tree. It fails if the wallet tree already
// holds any checkpoints; it is defined only for a wallet with no history.
func (f *Frontier) InitWallet(w *wallet.NoteCommitmentTree) error {
	return w.InitFromFrontier(f.inner)
}
