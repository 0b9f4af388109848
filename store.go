package daybook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StateKey is the fixed key under which the whole day state is persisted.
const StateKey = "daystate"

// Store is a flat key-value store, the persistence boundary of the tool.
// Get returns a *NotFoundError for an absent key; any other failure from an
// implementation is a plain error that the adapter wraps as persistence
// failure.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// DirStore stores each key as a file "<dir>/<key>.json".
type DirStore struct {
	dir string
}

// OpenDirStore creates the data directory if needed and returns a store
// over it.
func OpenDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (d *DirStore) Dir() string { return d.dir }

func (d *DirStore) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func (d *DirStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Kind: "state key", ID: key}
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", d.path(key), err)
	}
	return data, nil
}

func (d *DirStore) Put(key string, data []byte) error {
	if err := os.WriteFile(d.path(key), data, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", d.path(key), err)
	}
	return nil
}

// MemStore is an in-memory Store, handy for tests.
type MemStore map[string][]byte

func (m MemStore) Get(key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, &NotFoundError{Kind: "state key", ID: key}
	}
	return data, nil
}

func (m MemStore) Put(key string, data []byte) error {
	m[key] = data
	return nil
}

// SaveState serializes the day state and writes it under key. A write
// failure surfaces as a *PersistenceError, never silently.
func SaveState(store Store, key string, s *DayState) error {
	var buf bytes.Buffer
	if err := EncodeState(&buf, s); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := store.Put(key, buf.Bytes()); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// LoadState reads the day state stored under key. An absent key is reported
// as a *NotFoundError (first run); unreadable or corrupted data as a
// *PersistenceError. The caller decides whether to fall back to an empty
// state.
func LoadState(store Store, key string) (*DayState, error) {
	data, err := store.Get(key)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	s, err := DecodeState(bytes.NewReader(data))
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return s, nil
}
