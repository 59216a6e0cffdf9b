package frontier

import (
	"encoding/binary"
	"io"
	"math/bits"
)

// The legacy format predates the frontier representation. It serializes a
// fixed-depth incremental tree as its two lowest children plus a stack of
// parent ommers, each written as a presence byte followed by the hash. It
// is write-only here: new state is always parsed from the current format.

// legacyTree is the left/right/parents shape of the predecessor
// fixed-depth commitment tree.
type legacyTree struct {
	left, right []byte
	parents     [][]byte
}

// legacy replays the frontier's state into the predecessor tree shape.
// parents[i] holds the ommer at level i+1 when that subtree is complete;
// the list is trimmed to the highest complete subtree.
func (f *Frontier) legacy() *legacyTree {
	t := &legacyTree{}
	if f.leaf == nil {
		return t
	}

	if f.position%2 == 0 {
		t.left = f.leaf
	} else {
		t.left = f.ommers[0]
		t.right = f.leaf
	}
	levels := bits.Len64(f.position)
	for i := 1; i < levels; i++ {
		if f.position>>i&1 == 1 {
			t.parents = append(t.parents, f.ommers[i])
		} else {
			t.parents = append(t.parents, nil)
		}
	}
	return t
}

// SerializeLegacy writes the frontier to w in the legacy fixed-depth tree
// format, byte-for-byte compatible with prior-generation readers. It does
// not mutate the frontier.
func (f *Frontier) SerializeLegacy(w io.Writer) error {
	t := f.legacy()

	if err := writeOptional(w, t.left); err != nil {
		return err
	}
	if err := writeOptional(w, t.right); err != nil {
		return err
	}
	if err := writeCompactSize(w, uint64(len(t.parents))); err != nil {
		return err
	}
	for _, parent := range t.parents {
		if err := writeOptional(w, parent); err != nil {
			return err
		}
	}
	return nil
}

func writeOptional(w io.Writer, hash []byte) error {
	if hash == nil {
		return writeByte(w, 0)
	}
	if err := writeByte(w, 1); err != nil {
		return err
	}
	_, err := w.Write(hash)
	return err
}

// writeCompactSize writes n in the Bitcoin-derived variable-width encoding
// that legacy readers expect for list lengths.
func writeCompactSize(w io.Writer, n uint64) error {
	var buf [9]byte
	switch {
	case n < 0xfd:
		buf[0] = byte(n)
		_, err := w.Write(buf[:1])
		return err
	case n <= 0xffff:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:3], uint16(n))
		_, err := w.Write(buf[:3])
		return err
	case n <= 0xffffffff:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:5], uint32(n))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:9], n)
		_, err := w.Write(buf[:9])
		return err
	}
}
