// Package wallet implements the wallet-side note commitment tree that
// seeds witness tracking for the wallet's own notes.
package wallet

import (
	"errors"

	"github.com/Madmaxs2/zcash/tree/frontier"
)

// ErrCheckpointsExist is returned by InitFromFrontier when the tree
// already holds checkpointed history.
var ErrCheckpointsExist = errors.New("wallet tree already has checkpoints")

// NoteCommitmentTree tracks the latest frontier of the chain's note
// commitment tree, along with the checkpointed tree sizes that witnesses
// may later be rewound to.
type NoteCommitmentTree struct {
	bridge      *frontier.Frontier
	checkpoints []uint64
}

func NewNoteCommitmentTree() *NoteCommitmentTree {
	return &NoteCommitmentTree{}
}

// InitFromFrontier installs a deep copy of f as the sole bridge state of
// the tree. It is defined only for a tree with no history: if any
// checkpoints exist the tree is left unchanged and ErrCheckpointsExist is
// returned.
func (t *NoteCommitmentTree) InitFromFrontier(f *frontier.Frontier) error {
	if len(t.checkpoints) > 0 {
		return ErrCheckpointsExist
	}
	t.bridge = f.Clone()
	return nil
}

// Size returns the number of note commitments in the tree's latest bridge
// state.
func (t *NoteCommitmentTree) Size() uint64 {
	if t.bridge == nil {
		return 0
	}
	return t.bridge.Size()
}

// Root returns the root of the tree's latest bridge state, or nil if no
// bridge has been installed.
func (t *NoteCommitmentTree) Root() []byte {
	if t.bridge == nil {
		return nil
	}
	return t.bridge.Root()
}

// Checkpoint records the current tree size as a point that witnesses may
// later be rewound to.
func (t *NoteCommitmentTree) Checkpoint() {
	t.checkpoints = append(t.checkpoints, t.Size())
}

// CheckpointCount returns the number of recorded checkpoints.
func (t *NoteCommitmentTree) CheckpointCount() int {
	return len(t.checkpoints)
}

// Rewind drops the most recent checkpoint and returns its recorded size.
// The second return value is false if no checkpoints exist.
func (t *NoteCommitmentTree) Rewind() (uint64, bool) {
	if len(t.checkpoints) == 0 {
		return 0, false
	}
	size := t.checkpoints[len(t.checkpoints)-1]
	t.checkpoints = t.checkpoints[:len(t.checkpoints)-1]
	return size, true
}
