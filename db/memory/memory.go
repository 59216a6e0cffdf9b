// Package memory provides an in-memory implementation of the database
// interfaces, for tests and ephemeral runs.
package memory

import (
	"sync"

	"github.com/Madmaxs2/zcash/db"
)

func dup(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

type state struct {
	mu               sync.Mutex
	frontier, legacy []byte
}

// FrontierStore implements the db.FrontierStore interface in memory.
// Clones share the committed state with their parent.
type FrontierStore struct {
	shared *state

	batchFrontier, batchLegacy []byte
	ReadOnly                   bool
}

func NewFrontierStore() *FrontierStore {
	return &FrontierStore{shared: &state{}}
}

func (fs *FrontierStore) Clone() db.FrontierStore {
	return &FrontierStore{shared: fs.shared, ReadOnly: true}
}

func (fs *FrontierStore) GetFrontier() ([]byte, error) {
	if fs.batchFrontier != nil {
		return dup(fs.batchFrontier), nil
	}
	fs.shared.mu.Lock()
	defer fs.shared.mu.Unlock()
	return dup(fs.shared.frontier), nil
}

func (fs *FrontierStore) PutFrontier(raw []byte) error {
	if fs.ReadOnly {
		panic("store is readonly")
	}
	fs.batchFrontier = dup(raw)
	return nil
}

func (fs *FrontierStore) GetLegacy() ([]byte, error) {
	if fs.batchLegacy != nil {
		return dup(fs.batchLegacy), nil
	}
	fs.shared.mu.Lock()
	defer fs.shared.mu.Unlock()
	return dup(fs.shared.legacy), nil
}

func (fs *FrontierStore) PutLegacy(raw []byte) error {
	if fs.ReadOnly {
		panic("store is readonly")
	}
	fs.batchLegacy = dup(raw)
	return nil
}

func (fs *FrontierStore) Commit() error {
	if fs.ReadOnly {
		panic("store is readonly")
	}

	fs.shared.mu.Lock()
	defer fs.shared.mu.Unlock()
	if fs.batchFrontier != nil {
		fs.shared.frontier = fs.batchFrontier
		fs.batchFrontier = nil
	}
	if fs.batchLegacy != nil {
		fs.shared.legacy = fs.batchLegacy
		fs.batchLegacy = nil
	}
	return nil
}
