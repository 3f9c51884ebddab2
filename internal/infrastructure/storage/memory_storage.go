package storage

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/acme/backend/internal/application/sponsor"
)

var _ sponsor.DocumentStorage = (*MemoryStorage)(nil)

// MemoryStorage keeps objects in process memory. It serves local development
// when no object store is configured; its URLs are not downloadable.
type MemoryStorage struct {
	BaseURL    string
	Expiration time.Duration

	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data        []byte
	contentType string
}

// NewMemoryStorage creates an empty MemoryStorage
func NewMemoryStorage(baseURL string) *MemoryStorage {
	if baseURL == "" {
		baseURL = "http://localhost/documents"
	}
	return &MemoryStorage{
		BaseURL:    baseURL,
		Expiration: 15 * time.Minute,
		objects:    make(map[string]memoryObject),
	}
}

// Upload stores a copy of data
func (s *MemoryStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return ErrStorageKeyRequired
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storageKey] = memoryObject{data: cp, contentType: contentType}
	return nil
}

// GenerateDownloadURL builds a URL for a stored key
func (s *MemoryStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, ErrStorageKeyRequired
	}
	if expiresIn <= 0 {
		expiresIn = s.Expiration
	}
	expiresAt := time.Now().Add(expiresIn)
	u := s.BaseURL + "/" + storageKey + "?expires=" + url.QueryEscape(expiresAt.UTC().Format(time.RFC3339))
	return u, expiresAt, nil
}

// Get returns a stored object
func (s *MemoryStorage) Get(storageKey string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[storageKey]
	return obj.data, obj.contentType, ok
}
