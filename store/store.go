// Package store is the key-value persistence boundary of the invoicer.
//
// A Store holds whole serialized records under string keys. Writes replace
// the value at a key wholesale; there is no field-level update. An absent
// key is reported with ErrNotFound, distinct from an empty value, so callers
// can fall back to their defaults on first use.
package store

import "errors"

// ErrNotFound is returned by Get when no value was ever set for the key.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed store of opaque serialized values.
type Store interface {
	// Get returns the value at key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set replaces the value at key wholesale. The write is atomic: a
	// concurrent or later Get never observes a partial value.
	Set(key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}
