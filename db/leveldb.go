package db

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

const (
	leveldbFrontierKey = "frontier-head"
	leveldbLegacyKey   = "legacy-head"
)

func dup(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}

// ldbConn is a wrapper around a base LevelDB database that handles batching
// writes between commits transparently.
type ldbConn struct {
	conn     *leveldb.DB
	readonly bool
	batch    map[string][]byte
}

func newLDBConn(conn *leveldb.DB, readonly bool) *ldbConn {
	return &ldbConn{conn, readonly, make(map[string][]byte)}
}

func (c *ldbConn) Get(key string) ([]byte, error) {
	if value, ok := c.batch[key]; ok {
		return dup(value), nil
	}
	return c.conn.Get([]byte(key), nil)
}

func (c *ldbConn) Put(key string, value []byte) {
	if c.readonly {
		panic("connection is readonly")
	}
	c.batch[key] = dup(value)
}

func (c *ldbConn) Commit() error {
	if c.readonly {
		panic("connection is readonly")
	}

	b := new(leveldb.Batch)
	for key, value := range c.batch {
		b.Put([]byte(key), value)
	}
	if err := c.conn.Write(b, nil); err != nil {
		return err
	}

	c.batch = make(map[string][]byte)
	return nil
}

// ldbFrontierStore implements the FrontierStore interface over a LevelDB
// database.
type ldbFrontierStore struct {
	conn *ldbConn
}

func NewLDBFrontierStore(file string) (FrontierStore, error) {
	conn, err := leveldb.OpenFile(file, nil)
	if errors.IsCorrupted(err) {
		conn, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &ldbFrontierStore{newLDBConn(conn, false)}, nil
}

func (ldb *ldbFrontierStore) Clone() FrontierStore {
	return &ldbFrontierStore{newLDBConn(ldb.conn.conn, true)}
}

func (ldb *ldbFrontierStore) get(key string) ([]byte, error) {
	raw, err := ldb.conn.Get(key)
	if err == leveldb.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return raw, nil
}

func (ldb *ldbFrontierStore) GetFrontier() ([]byte, error) {
	return ldb.get(leveldbFrontierKey)
}

func (ldb *ldbFrontierStore) PutFrontier(raw []byte) error {
	ldb.conn.Put(leveldbFrontierKey, raw)
	return nil
}

func (ldb *ldbFrontierStore) GetLegacy() ([]byte, error) {
	return ldb.get(leveldbLegacyKey)
}

func (ldb *ldbFrontierStore) PutLegacy(raw []byte) error {
	ldb.conn.Put(leveldbLegacyKey, raw)
	return nil
}

func (ldb *ldbFrontierStore) Commit() error {
	return ldb.conn.Commit()
}
