package capture

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

var ErrPreviewNotFound = errors.New("preview not found")

// Registry spools captured image bytes on disk and hands out opaque preview
// handles. A handle is released exactly once: the second release of the same
// id reports ErrPreviewNotFound, which also catches double-remove bugs.
type Registry struct {
	dir   string
	mu    sync.Mutex
	files map[string]string
}

func NewRegistry(dir string) (*Registry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Registry{dir: dir, files: make(map[string]string)}, nil
}

func (r *Registry) Put(data []byte) (string, error) {
	id := uuid.NewString()
	path := filepath.Join(r.dir, "preview_"+id)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	r.mu.Lock()
	r.files[id] = path
	r.mu.Unlock()
	return id, nil
}

func (r *Registry) Bytes(id string) ([]byte, error) {
	r.mu.Lock()
	path, ok := r.files[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrPreviewNotFound
	}
	return os.ReadFile(path)
}

func (r *Registry) Release(id string) error {
	r.mu.Lock()
	path, ok := r.files[id]
	if ok {
		delete(r.files, id)
	}
	r.mu.Unlock()
	if !ok {
		return ErrPreviewNotFound
	}
	return os.Remove(path)
}

// Len reports live handles; teardown paths assert it reaches zero.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.files)
}
