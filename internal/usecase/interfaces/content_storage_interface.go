package interfaces

import (
	"context"

	"atelier_orders/internal/domain/entities"
)

// IContentStorage abstracts binary-content storage (inspiration photos).
//
// Delete is best-effort from the caller's point of view.
type IContentStorage interface {
	Upload(ctx context.Context, data []byte, category string) (entities.MediaRef, error)
	Delete(ctx context.Context, storageID string) error
}
