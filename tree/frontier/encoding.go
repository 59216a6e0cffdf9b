package frontier

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Madmaxs2/zcash/crypto/suites"
)

// FormatVersion is the version tag of the current serialization format.
//
// The layout is: a version byte, a presence byte for the position (0x00
// marks an empty frontier and ends the encoding), the position as a
// uvarint, the most recent leaf, the ommer count as a uvarint, and one
// presence-marked entry per level of the ommer list.
const FormatVersion = 1

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeUvarint(w io.Writer, x uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], x)
	_, err := w.Write(buf[:n])
	return err
}

// Serialize writes the frontier to w in the current versioned format. It
// does not mutate the frontier.
func (f *Frontier) Serialize(w io.Writer) error {
	if err := writeByte(w, FormatVersion); err != nil {
		return err
	}
	if f.leaf == nil {
		return writeByte(w, 0)
	}
	if err := writeByte(w, 1); err != nil {
		return err
	}
	if err := writeUvarint(w, f.position); err != nil {
		return err
	}
	if _, err := w.Write(f.leaf); err != nil {
		return err
	}
	if err := writeUvarint(w, uint64(len(f.ommers))); err != nil {
		return err
	}
	for _, ommer := range f.ommers {
		if ommer == nil {
			if err := writeByte(w, 0); err != nil {
				return err
			}
			continue
		}
		if err := writeByte(w, 1); err != nil {
			return err
		}
		if _, err := w.Write(ommer); err != nil {
			return err
		}
	}
	return nil
}

// byteReader adapts a sequential stream to the io.ByteReader interface and
// remembers whether the last failure came from the stream, so that varint
// decoding errors can be told apart from I/O errors.
type byteReader struct {
	r   io.Reader
	err error
	buf [1]byte
}

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		br.err = noEOF(err)
		return 0, br.err
	}
	return br.buf[0], nil
}

// noEOF maps a bare EOF to io.ErrUnexpectedEOF: every read here happens
// mid-structure, so running out of bytes is always a truncated stream.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Parse reads a frontier in the current versioned format from r. On any
// failure no frontier is returned: version mismatches and structural
// inconsistencies are reported as ErrUnknownVersion and ErrMalformed,
// stream failures as the underlying I/O error.
func Parse(r io.Reader, suite suites.MerkleSuite, depth uint8) (*Frontier, error) {
	f := New(suite, depth)
	br := &byteReader{r: r}

	version, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVersion, version)
	}

	present, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	switch present {
	case 0:
		return f, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: invalid position marker %#02x", ErrMalformed, present)
	}

	position, err := binary.ReadUvarint(br)
	if err != nil {
		if br.err != nil {
			return nil, br.err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if position > maxPosition(depth) {
		return nil, fmt.Errorf("%w: position %v exceeds depth %v", ErrMalformed, position, depth)
	}

	leaf := make([]byte, suite.HashSize())
	if _, err := io.ReadFull(r, leaf); err != nil {
		return nil, noEOF(err)
	}

	count, err := binary.ReadUvarint(br)
	if err != nil {
		if br.err != nil {
			return nil, br.err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if count != uint64(ommerCount(position)) {
		return nil, fmt.Errorf("%w: ommer count %v inconsistent with position %v", ErrMalformed, count, position)
	}

	ommers := make([][]byte, count)
	for i := range ommers {
		marker, err := br.ReadByte()
		if err != nil {
			return nil, err
		}
		want := position>>i&1 == 1
		switch marker {
		case 0:
			if want {
				return nil, fmt.Errorf("%w: missing ommer at level %v for position %v", ErrMalformed, i, position)
			}
		case 1:
			if !want {
				return nil, fmt.Errorf("%w: unexpected ommer at level %v for position %v", ErrMalformed, i, position)
			}
			ommer := make([]byte, suite.HashSize())
			if _, err := io.ReadFull(r, ommer); err != nil {
				return nil, noEOF(err)
			}
			ommers[i] = ommer
		default:
			return nil, fmt.Errorf("%w: invalid ommer marker %#02x", ErrMalformed, marker)
		}
	}

	f.position = position
	f.leaf = leaf
	f.ommers = ommers
	return f, nil
}
