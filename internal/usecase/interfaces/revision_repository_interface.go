package interfaces

import (
	"context"

	"atelier_orders/internal/domain/entities"
)

// RevisionFilter narrows revision listings. Zero fields do not filter.
type RevisionFilter struct {
	Status      entities.RevisionStatus
	CustomerRef string
}

// IRevisionRepository abstracts persistence for the append-only revision
// ledger.
//
// CreateWithOrder and UpdateWithOrder commit the revision write and the
// owning order write as one unit: either both are durable or neither is.
// The order write is conditional on expectedOrderVersion, the revision
// update on expectedStatus; a failed condition yields ErrConcurrentUpdate.

type IRevisionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Revision, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Revision, error)
	List(ctx context.Context, filter RevisionFilter, page Page) ([]entities.Revision, error)
	Count(ctx context.Context, filter RevisionFilter) (int, error)
	CreateWithOrder(ctx context.Context, r entities.Revision, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error)
	Update(ctx context.Context, r entities.Revision, expectedStatus entities.RevisionStatus) (entities.Revision, error)
	UpdateWithOrder(ctx context.Context, r entities.Revision, expectedStatus entities.RevisionStatus, o entities.Order, expectedOrderVersion int64) (entities.Revision, entities.Order, error)
}
