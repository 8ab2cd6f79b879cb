package pagestate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

// Backend is a string keyed blob store the Store persists through.
type Backend interface {
	// GetItem returns the value saved under key. found is false if nothing
	// is saved under key.
	GetItem(ctx context.Context, key string) (value []byte, found bool, err error)
	// SetItem saves value under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value []byte) error
	// RemoveItem deletes the value saved under key. Removing a missing key is
	// not an error.
	RemoveItem(ctx context.Context, key string) error
}

// Check that *MemoryBackend and *FileBackend implement Backend.
var (
	_ Backend = (*MemoryBackend)(nil)
	_ Backend = (*FileBackend)(nil)
)

// MemoryBackend keeps items in memory. The zero value is ready to use.
type MemoryBackend struct {
	mtx   sync.RWMutex
	items map[string][]byte
}

// NewMemoryBackend returns a MemoryBackend holding a copy of items.
func NewMemoryBackend(items map[string][]byte) *MemoryBackend {
	mb := &MemoryBackend{items: make(map[string][]byte, len(items))}
	for k, v := range items {
		mb.items[k] = append([]byte(nil), v...)
	}
	return mb
}

// GetItem implements Backend.
func (mb *MemoryBackend) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	mb.mtx.RLock()
	defer mb.mtx.RUnlock()
	v, found := mb.items[key]
	if !found {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// SetItem implements Backend.
func (mb *MemoryBackend) SetItem(_ context.Context, key string, value []byte) error {
	mb.mtx.Lock()
	defer mb.mtx.Unlock()
	if mb.items == nil {
		mb.items = make(map[string][]byte)
	}
	mb.items[key] = append([]byte(nil), value...)
	return nil
}

// RemoveItem implements Backend.
func (mb *MemoryBackend) RemoveItem(_ context.Context, key string) error {
	mb.mtx.Lock()
	defer mb.mtx.Unlock()
	delete(mb.items, key)
	return nil
}

// FileBackend saves each item as <key>.json in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed and returns a FileBackend rooted at it.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("state directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll error: %w", err)
	}

	return &FileBackend{dir: dir}, nil
}

func (fb *FileBackend) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: invalid storage key %q", db.ErrorInvalidRequest, key)
	}
	return filepath.Join(fb.dir, key+".json"), nil
}

// GetItem implements Backend.
func (fb *FileBackend) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	path, err := fb.path(key)
	if err != nil {
		return nil, false, err
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile error: %w", err)
	}

	return b, true, nil
}

// SetItem implements Backend. The value is written to a temporary file that
// is then renamed over the item, so readers never see a partial write.
func (fb *FileBackend) SetItem(_ context.Context, key string, value []byte) error {
	path, err := fb.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(fb.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp error: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("tmp.Write error: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close error: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename error: %w", err)
	}

	return nil
}

// RemoveItem implements Backend.
func (fb *FileBackend) RemoveItem(_ context.Context, key string) error {
	path, err := fb.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("os.Remove error: %w", err)
	}

	return nil
}
