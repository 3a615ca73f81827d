package pocket

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Backend is the durable key-value slot the store persists into. It mirrors
// a browser-local storage primitive: one opaque blob per key, overwritten
// whole. Implementations are swappable so tests never touch real storage.
type Backend interface {
	// Get returns the blob stored under key, with ok false when the key has
	// never been written.
	Get(key string) (blob []byte, ok bool, err error)
	// Set overwrites the blob stored under key.
	Set(key string, blob []byte) error
}

// FileBackend keeps one JSON file per key inside a data directory.
type FileBackend struct {
	Dir string
}

func (b FileBackend) path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

// Get reads the file for the key. A missing file is not an error.
func (b FileBackend) Get(key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read data file %q: %w", b.path(key), err)
	}
	return blob, true, nil
}

// Set writes the blob for the key, creating the data directory on first use.
func (b FileBackend) Set(key string, blob []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("cannot create data dir %q: %w", b.Dir, err)
	}
	if err := os.WriteFile(b.path(key), blob, 0o644); err != nil {
		return fmt.Errorf("cannot write data file %q: %w", b.path(key), err)
	}
	return nil
}

// MemoryBackend is an in-memory Backend for tests and ephemeral sessions.
type MemoryBackend struct {
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(key string) ([]byte, bool, error) {
	blob, ok := b.blobs[key]
	return blob, ok, nil
}

func (b *MemoryBackend) Set(key string, blob []byte) error {
	b.blobs[key] = append([]byte(nil), blob...)
	return nil
}
