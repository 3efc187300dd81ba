package interfaces

import (
	"context"

	"atelier_orders/internal/domain/entities"
)

// IClientProfileRepository abstracts persistence for ClientProfile.
//
// Upsert creates or updates contact fields and never touches TotalOrders.
// IncrementOrderCount adds one atomically; SetOrderCount overwrites it
// (used by recount).

type IClientProfileRepository interface {
	Upsert(ctx context.Context, p entities.ClientProfile) (entities.ClientProfile, error)
	IncrementOrderCount(ctx context.Context, customerRef string) error
	SetOrderCount(ctx context.Context, customerRef string, count int) error
	GetByCustomerRef(ctx context.Context, customerRef string) (entities.ClientProfile, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (entities.ClientProfile, error)
	List(ctx context.Context, page Page) ([]entities.ClientProfile, error)
	Count(ctx context.Context) (int, error)
}
