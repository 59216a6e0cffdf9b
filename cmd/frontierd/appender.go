package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Madmaxs2/zcash/db"
	"github.com/Madmaxs2/zcash/orchard"
)

type AppendRequest struct {
	Bundle *orchard.Bundle
	Resp   chan<- AppendResponse
}

type AppendResponse struct {
	Size uint64
	Root [32]byte
	Err  error
}

// appender is a goroutine that owns the only mutable frontier: it receives
// bundles over `ch`, appends their note commitments, persists the updated
// state, and responds with the new root. Routing all mutation through one
// goroutine is the external serialization the frontier requires.
func appender(f *orchard.Frontier, store db.FrontierStore, ch chan AppendRequest) {
	for {
		req := <-ch

		start := time.Now()
		err := apply(f, store, req.Bundle)
		appendOps.WithLabelValues(fmt.Sprint(err == nil)).Inc()
		appendDur.Observe(float64(time.Since(start).Microseconds()))
		treeSize.Set(float64(f.Size()))

		select {
		case req.Resp <- AppendResponse{Size: f.Size(), Root: f.Root(), Err: err}:
		default:
		}
	}
}

// apply appends the bundle and persists both serialization formats: the
// current format is what the daemon restores from, the legacy format is
// exported for prior-generation readers.
func apply(f *orchard.Frontier, store db.FrontierStore, bundle *orchard.Bundle) error {
	if err := f.AppendBundle(bundle); err != nil {
		return err
	}

	cur := new(bytes.Buffer)
	if err := f.Serialize(cur); err != nil {
		return err
	}
	legacy := new(bytes.Buffer)
	if err := f.SerializeLegacy(legacy); err != nil {
		return err
	}

	if err := store.PutFrontier(cur.Bytes()); err != nil {
		return err
	}
	if err := store.PutLegacy(legacy.Bytes()); err != nil {
		return err
	}
	return store.Commit()
}
