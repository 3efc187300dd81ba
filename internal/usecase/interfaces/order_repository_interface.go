package interfaces

import (
	"context"
	"time"

	"atelier_orders/internal/domain/entities"
)

// OrderFilter narrows order listings. Zero fields do not filter.
type OrderFilter struct {
	Status       entities.OrderStatus
	Statuses     []entities.OrderStatus
	CustomerRef  string
	RushOnly     bool
	DeliveryFrom *time.Time
	DeliveryTo   *time.Time
}

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// GetByID returns a zero Order (empty ID) when the id does not resolve.
// Update is a conditional single-document write: it stores o with
// Version = expectedVersion+1 only if the stored version is still
// expectedVersion, otherwise it returns ErrConcurrentUpdate.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
	List(ctx context.Context, filter OrderFilter, page Page) ([]entities.Order, error)
	Count(ctx context.Context, filter OrderFilter) (int, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}
