package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MemoryStorage keeps objects in process memory. Presigned URLs use the memory:// scheme.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

func (m *MemoryStorage) PutObject(_ context.Context, objectKey, _ string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = append([]byte(nil), body...)
	return nil
}

func (m *MemoryStorage) GetObject(_ context.Context, objectKey string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	body, ok := m.objects[objectKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, objectKey)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (m *MemoryStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignedURLExpiry
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[objectKey]; !ok {
		return "", fmt.Errorf("%w: %s", ErrObjectNotFound, objectKey)
	}
	return fmt.Sprintf("memory://%s?expires=%d", objectKey, int(expires.Seconds())), nil
}

func (m *MemoryStorage) DeleteObject(_ context.Context, objectKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, objectKey)
	return nil
}

// Keys lists stored object keys in no particular order.
func (m *MemoryStorage) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}
