package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// records is the single bucket all keys live in.
const records = "records"

// Bolt is a Store backed by a bbolt database file. Each Set is one bbolt
// write transaction, which gives the wholesale atomic-write guarantee.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(records))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Get returns the value at key, or ErrNotFound.
func (s *Bolt) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(records)).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		// data is only valid inside the transaction.
		value = append([]byte(nil), data...)
		return nil
	})
	return value, err
}

// Set replaces the value at key wholesale.
func (s *Bolt) Set(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(records)).Put([]byte(key), value)
	})
}

// Close closes the database file.
func (s *Bolt) Close() error { return s.db.Close() }

var _ Store = (*Bolt)(nil)
