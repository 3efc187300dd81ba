package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ContentStorage keeps uploads in memory and serves them under baseURL.
type ContentStorage struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string][]byte
}

var _ interfaces.IContentStorage = (*ContentStorage)(nil)

func NewContentStorage(baseURL string) *ContentStorage {
	return &ContentStorage{baseURL: strings.TrimRight(baseURL, "/"), objects: map[string][]byte{}}
}

func (c *ContentStorage) Upload(_ context.Context, data []byte, category string) (entities.MediaRef, error) {
	id := fmt.Sprintf("%s/%s", category, uuid.NewString())
	c.mu.Lock()
	c.objects[id] = append([]byte{}, data...)
	c.mu.Unlock()
	return entities.MediaRef{URL: c.baseURL + "/" + id, StorageID: id}, nil
}

func (c *ContentStorage) Delete(_ context.Context, storageID string) error {
	c.mu.Lock()
	delete(c.objects, storageID)
	c.mu.Unlock()
	return nil
}

func (c *ContentStorage) Get(storageID string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.objects[storageID]
	return b, ok
}
