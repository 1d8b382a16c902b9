package blob

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/Leo-Expose/PokeBase/internal/errors"
)

// Memory is an in-memory Source for tests.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemory returns an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (m *Memory) Driver() Driver { return DriverMemory }

// Put stores a sprite under key, replacing any existing contents.
func (m *Memory) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
}

func (m *Memory) Open(_ context.Context, key string) (*Object, error) {
	m.mu.RLock()
	data, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("sprite %q not found", key)
	}

	return &Object{
		Body:        io.NopCloser(bytes.NewReader(data)),
		Size:        int64(len(data)),
		ContentType: contentTypeFor(key),
	}, nil
}
