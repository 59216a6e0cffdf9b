// Package db implements database wrappers that match a common interface.
package db

// FrontierStore is the interface the frontier daemon uses to persist the
// note commitment frontier between runs.
type FrontierStore interface {
	// Clone returns a read-only clone of the current store, suitable for
	// distributing to child goroutines.
	Clone() FrontierStore

	// GetFrontier returns the persisted frontier in the current
	// serialization format, or nil if none has been stored yet.
	GetFrontier() ([]byte, error)
	// PutFrontier stages the given serialized frontier as the new head.
	PutFrontier(raw []byte) error

	// GetLegacy returns the legacy-format export of the persisted
	// frontier, or nil if none has been stored yet.
	GetLegacy() ([]byte, error)
	// PutLegacy stages the legacy-format export for prior-generation
	// readers.
	PutLegacy(raw []byte) error

	Commit() error
}
