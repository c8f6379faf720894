package store

import (
	"errors"
	"path/filepath"
	"testing"
)

// stores under test share the same contract; exercise both implementations.
func testStores(t *testing.T) map[string]Store {
	boltStore, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("unexpected error opening bolt store: %v", err)
	}
	t.Cleanup(func() { boltStore.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"bolt":   boltStore,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("absent key", func(t *testing.T) {
				_, err := s.Get("missing")
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("got %v, want ErrNotFound", err)
				}
			})

			t.Run("set then get", func(t *testing.T) {
				if err := s.Set("k", []byte(`{"a":1}`)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got, err := s.Get("k")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if want := `{"a":1}`; string(got) != want {
					t.Errorf("got %q, want %q", got, want)
				}
			})

			t.Run("wholesale replace", func(t *testing.T) {
				if err := s.Set("k", []byte(`[]`)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got, err := s.Get("k")
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if want := `[]`; string(got) != want {
					t.Errorf("got %q, want %q", got, want)
				}
			})

			t.Run("empty sequence is not absent", func(t *testing.T) {
				if err := s.Set("seq", []byte(`[]`)); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				got, err := s.Get("seq")
				if err != nil {
					t.Fatalf("an empty sequence must not read as absent: %v", err)
				}
				if want := `[]`; string(got) != want {
					t.Errorf("got %q, want %q", got, want)
				}
			})
		})
	}
}
