package usecase

import (
	"context"
	"strings"
	"time"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ClientProfilePage is one page of profiles plus the unpaged total.
type ClientProfilePage struct {
	Items []entities.ClientProfile
	Total int
	Page  interfaces.Page
}

// IClientProfileUseCase keeps one contact profile per customer in sync
// with order submissions.
type IClientProfileUseCase interface {
	UpsertFromSubmission(ctx context.Context, customerRef string, snapshot entities.ProfileSnapshot) (entities.ClientProfile, error)
	IncrementOrderCount(ctx context.Context, customerRef string) error
	RecountOrders(ctx context.Context, customerRef string) (int, error)
	GetByCustomerRef(ctx context.Context, customerRef string) (*entities.ClientProfile, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*entities.ClientProfile, error)
	List(ctx context.Context, page interfaces.Page) (ClientProfilePage, error)
}

type ClientProfileUseCase struct {
	repo   interfaces.IClientProfileRepository
	orders interfaces.IOrderRepository
	now    func() time.Time
}

var _ IClientProfileUseCase = (*ClientProfileUseCase)(nil)

func NewClientProfileUseCase(repo interfaces.IClientProfileRepository, orders interfaces.IOrderRepository, clock func() time.Time) *ClientProfileUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &ClientProfileUseCase{repo: repo, orders: orders, now: func() time.Time { return clock().UTC() }}
}

// UpsertFromSubmission overwrites the contact fields with the latest
// submission. TotalOrders is left to IncrementOrderCount.
func (u *ClientProfileUseCase) UpsertFromSubmission(ctx context.Context, customerRef string, snapshot entities.ProfileSnapshot) (entities.ClientProfile, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return entities.ClientProfile{}, ErrInvalidCustomerRef
	}
	now := u.now()
	p, err := u.repo.Upsert(ctx, entities.ClientProfile{
		CustomerRef:     customerRef,
		FullName:        strings.TrimSpace(snapshot.FullName),
		PhoneNumber:     strings.TrimSpace(snapshot.PhoneNumber),
		City:            strings.TrimSpace(snapshot.City),
		InstagramHandle: strings.TrimSpace(snapshot.InstagramHandle),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		log.WithError(err).WithField("customer_ref", customerRef).Error("[client][usecase] upsert failed")
		return entities.ClientProfile{}, errors.Wrap(err, "upsert client profile")
	}
	return p, nil
}

// IncrementOrderCount adds one to the customer's order counter. Callers on
// the order-creation path only log the error; RecountOrders heals drift.
func (u *ClientProfileUseCase) IncrementOrderCount(ctx context.Context, customerRef string) error {
	if err := u.repo.IncrementOrderCount(ctx, customerRef); err != nil {
		log.WithError(err).WithField("customer_ref", customerRef).Warn("[client][usecase] increment order count failed")
		return errors.Wrap(err, "increment order count")
	}
	return nil
}

// RecountOrders sets TotalOrders to the number of stored orders for the
// customer.
func (u *ClientProfileUseCase) RecountOrders(ctx context.Context, customerRef string) (int, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return 0, ErrInvalidCustomerRef
	}
	p, err := u.repo.GetByCustomerRef(ctx, customerRef)
	if err != nil {
		return 0, errors.Wrap(err, "load client profile")
	}
	if p.CustomerRef == "" {
		return 0, ErrClientProfileNotFound
	}
	n, err := u.orders.Count(ctx, interfaces.OrderFilter{CustomerRef: customerRef})
	if err != nil {
		return 0, errors.Wrap(err, "count orders")
	}
	if err := u.repo.SetOrderCount(ctx, customerRef, n); err != nil {
		return 0, errors.Wrap(err, "set order count")
	}
	if n != p.TotalOrders {
		log.WithFields(log.Fields{"customer_ref": customerRef, "was": p.TotalOrders, "now": n}).Info("[client][usecase] order count corrected")
	}
	return n, nil
}

func (u *ClientProfileUseCase) GetByCustomerRef(ctx context.Context, customerRef string) (*entities.ClientProfile, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return nil, ErrInvalidCustomerRef
	}
	p, err := u.repo.GetByCustomerRef(ctx, customerRef)
	if err != nil {
		return nil, errors.Wrap(err, "load client profile")
	}
	if p.CustomerRef == "" {
		return nil, nil
	}
	return &p, nil
}

func (u *ClientProfileUseCase) FindByPhone(ctx context.Context, phoneNumber string) (*entities.ClientProfile, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, nil
	}
	p, err := u.repo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, errors.Wrap(err, "find client profile by phone")
	}
	if p.CustomerRef == "" {
		return nil, nil
	}
	return &p, nil
}

func (u *ClientProfileUseCase) List(ctx context.Context, page interfaces.Page) (ClientProfilePage, error) {
	page = interfaces.NewPage(page.Number, page.Size)
	out := ClientProfilePage{Page: page}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.repo.List(gctx, page)
		out.Items = items
		return err
	})
	g.Go(func() error {
		total, err := u.repo.Count(gctx)
		out.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return ClientProfilePage{}, errors.Wrap(err, "list client profiles")
	}
	return out, nil
}
