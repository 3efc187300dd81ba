package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/domain/pricing"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const originatingNote = "Initial measurement set from order creation"

// RevisionPage is one page of revisions plus the unpaged total.
type RevisionPage struct {
	Items []entities.Revision
	Total int
	Page  interfaces.Page
}

// IRevisionUseCase is the revision ledger: the append-only, numbered
// history of measurement and preference snapshots per order.
type IRevisionUseCase interface {
	RequestRevision(ctx context.Context, orderID string, patch entities.RevisionPatch) (entities.Revision, error)
	SetStatus(ctx context.Context, revisionID string, status entities.RevisionStatus, actorRef, notes string) (entities.Revision, error)
	MarkFeePaid(ctx context.Context, revisionID string) (entities.Revision, error)
	GetByID(ctx context.Context, revisionID string) (*entities.Revision, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Revision, error)
	ListPending(ctx context.Context, page interfaces.Page) (RevisionPage, error)
	ListAll(ctx context.Context, page interfaces.Page) (RevisionPage, error)
	ListByCustomer(ctx context.Context, customerRef string, page interfaces.Page) (RevisionPage, error)
}

type RevisionUseCase struct {
	orders    interfaces.IOrderRepository
	revisions interfaces.IRevisionRepository
	notifier  *Notifier
	locks     *orderLocks
	now       func() time.Time
}

var _ IRevisionUseCase = (*RevisionUseCase)(nil)

func NewRevisionUseCase(orders interfaces.IOrderRepository, revisions interfaces.IRevisionRepository, notifier *Notifier, clock func() time.Time) *RevisionUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RevisionUseCase{
		orders:    orders,
		revisions: revisions,
		notifier:  notifier,
		locks:     newOrderLocks(),
		now:       func() time.Time { return clock().UTC() },
	}
}

// createOriginating writes revision 0 for an order whose history is empty,
// copying the order's creation-time snapshot. When the history already has
// an entry the order is returned untouched.
func (u *RevisionUseCase) createOriginating(ctx context.Context, orderID string) (entities.Order, error) {
	var result entities.Order
	err := u.locks.run(orderID, func() error {
		o, err := u.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.HasOriginatingSnapshot() {
			result = o
			return nil
		}
		_, updated, err := u.appendOriginating(ctx, o)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	return result, err
}

// appendOriginating must run under the order's lock.
func (u *RevisionUseCase) appendOriginating(ctx context.Context, o entities.Order) (entities.Revision, entities.Order, error) {
	now := u.now()
	rev := entities.Revision{
		ID:              uuid.NewString(),
		OrderID:         o.ID,
		CustomerRef:     o.CustomerRef,
		RevisionNumber:  0,
		Measurements:    o.Measurements.Clone(),
		Inspiration:     cloneMedia(o.Inspiration),
		BodyConcerns:    o.BodyConcerns,
		ColorPreference: o.ColorPreference,
		IsFree:          true,
		Status:          entities.RevisionStatusApproved,
		AdminNotes:      originatingNote,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	next := o
	next.History = []string{rev.ID}
	next.UpdatedAt = now

	created, updated, err := u.revisions.CreateWithOrder(ctx, rev, next, o.Version)
	if err != nil {
		return entities.Revision{}, entities.Order{}, err
	}
	log.WithFields(log.Fields{"order_id": o.ID, "revision_id": created.ID}).Info("[revision][usecase] originating snapshot recorded")
	return created, updated, nil
}

func (u *RevisionUseCase) RequestRevision(ctx context.Context, orderID string, patch entities.RevisionPatch) (entities.Revision, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Revision{}, ErrInvalidOrderID
	}
	if err := patch.Measurements.Validate(); err != nil {
		return entities.Revision{}, fmt.Errorf("%w: %v", ErrInvalidMeasurements, err)
	}

	var (
		created entities.Revision
		order   entities.Order
	)
	err := u.locks.run(orderID, func() error {
		o, err := u.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status == entities.OrderStatusDelivered {
			return ErrOrderDelivered
		}
		if !o.HasOriginatingSnapshot() {
			log.WithField("order_id", o.ID).Warn("[revision][usecase] history empty; repairing before revision")
			if _, o, err = u.appendOriginating(ctx, o); err != nil {
				return err
			}
		}

		sequence := len(o.History)
		fee, free := pricing.RevisionFee(o.BasePrice, sequence)
		now := u.now()

		rev := entities.Revision{
			ID:              uuid.NewString(),
			OrderID:         o.ID,
			CustomerRef:     o.CustomerRef,
			RevisionNumber:  sequence,
			Measurements:    o.Measurements.Merge(patch.Measurements),
			Inspiration:     cloneMedia(o.Inspiration),
			BodyConcerns:    o.BodyConcerns,
			ColorPreference: o.ColorPreference,
			IsFree:          free,
			RevisionFee:     fee,
			Status:          entities.RevisionStatusPending,
			RevisionReason:  strings.TrimSpace(patch.Reason),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if patch.Inspiration != nil {
			rev.Inspiration = cloneMedia(patch.Inspiration)
		}
		if patch.BodyConcerns != nil {
			rev.BodyConcerns = *patch.BodyConcerns
		}
		if patch.ColorPreference != nil {
			rev.ColorPreference = *patch.ColorPreference
		}

		next := o
		next.History = append(append([]string{}, o.History...), rev.ID)
		next.RevisionCount = o.RevisionCount + 1
		next.Status = entities.OrderStatusRevisionRequested
		next.UpdatedAt = now
		if !free {
			next.TotalPrice = o.TotalPrice.Add(fee)
			next.DepositAmount = pricing.DepositFor(next.TotalPrice)
		}

		created, order, err = u.revisions.CreateWithOrder(ctx, rev, next, o.Version)
		return err
	})
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Warn("[revision][usecase] request revision failed")
		return entities.Revision{}, err
	}

	log.WithFields(log.Fields{
		"order_id":        order.ID,
		"revision_id":     created.ID,
		"revision_number": created.RevisionNumber,
		"fee":             created.RevisionFee.String(),
	}).Info("[revision][usecase] revision requested")
	u.notifier.Customer(order.CustomerRef, msgRevisionSubmitted(created.IsFree, created.RevisionFee))
	u.notifier.Operators(msgAdminNewRevision(order, created, u.notifier.AdminURL()))
	return created, nil
}

func (u *RevisionUseCase) SetStatus(ctx context.Context, revisionID string, status entities.RevisionStatus, actorRef, notes string) (entities.Revision, error) {
	revisionID = strings.TrimSpace(revisionID)
	if revisionID == "" {
		return entities.Revision{}, ErrInvalidRevisionID
	}
	if !status.IsValid() {
		return entities.Revision{}, ErrInvalidRevisionStatus
	}

	first, err := u.loadRevision(ctx, revisionID)
	if err != nil {
		return entities.Revision{}, err
	}

	var updated entities.Revision
	err = u.locks.run(first.OrderID, func() error {
		rev, err := u.loadRevision(ctx, revisionID)
		if err != nil {
			return err
		}
		if !rev.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrRevisionTransition, rev.Status, status)
		}

		now := u.now()
		next := rev
		next.Status = status
		next.UpdatedAt = now
		if notes = strings.TrimSpace(notes); notes != "" {
			next.AdminNotes = notes
		}
		if status == entities.RevisionStatusApproved {
			next.ApprovedBy = actorRef
			next.ApprovedAt = &now
		}

		if status != entities.RevisionStatusApplied {
			updated, err = u.revisions.Update(ctx, next, rev.Status)
			return err
		}

		o, err := u.loadOrder(ctx, rev.OrderID)
		if err != nil {
			return err
		}
		nextOrder := o
		nextOrder.Measurements = rev.Measurements.Clone()
		nextOrder.Inspiration = cloneMedia(rev.Inspiration)
		nextOrder.BodyConcerns = rev.BodyConcerns
		nextOrder.ColorPreference = rev.ColorPreference
		nextOrder.UpdatedAt = now
		updated, _, err = u.revisions.UpdateWithOrder(ctx, next, rev.Status, nextOrder, o.Version)
		return err
	})
	if err != nil {
		log.WithError(err).WithFields(log.Fields{"revision_id": revisionID, "status": status}).Warn("[revision][usecase] set status failed")
		return entities.Revision{}, err
	}

	log.WithFields(log.Fields{"revision_id": updated.ID, "order_id": updated.OrderID, "status": updated.Status, "actor": actorRef}).Info("[revision][usecase] status changed")
	switch updated.Status {
	case entities.RevisionStatusApproved:
		u.notifier.Customer(updated.CustomerRef, msgRevisionApproved(updated.OrderID))
	case entities.RevisionStatusRejected:
		u.notifier.Customer(updated.CustomerRef, msgRevisionRejected(updated.OrderID, updated.AdminNotes))
	case entities.RevisionStatusApplied:
		u.notifier.Customer(updated.CustomerRef, msgRevisionApplied(updated.OrderID))
	}
	return updated, nil
}

// MarkFeePaid records payment of a paid revision's fee. Marking an already
// paid revision returns it unchanged.
func (u *RevisionUseCase) MarkFeePaid(ctx context.Context, revisionID string) (entities.Revision, error) {
	revisionID = strings.TrimSpace(revisionID)
	if revisionID == "" {
		return entities.Revision{}, ErrInvalidRevisionID
	}
	first, err := u.loadRevision(ctx, revisionID)
	if err != nil {
		return entities.Revision{}, err
	}

	var (
		updated entities.Revision
		changed bool
	)
	err = u.locks.run(first.OrderID, func() error {
		rev, err := u.loadRevision(ctx, revisionID)
		if err != nil {
			return err
		}
		if rev.IsFree {
			return ErrRevisionFeeNotRequired
		}
		if rev.RevisionFeePaid {
			updated = rev
			return nil
		}
		now := u.now()
		next := rev
		next.RevisionFeePaid = true
		next.RevisionFeePaidAt = &now
		next.UpdatedAt = now
		if updated, err = u.revisions.Update(ctx, next, rev.Status); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return entities.Revision{}, err
	}
	if changed {
		log.WithFields(log.Fields{"revision_id": updated.ID, "order_id": updated.OrderID}).Info("[revision][usecase] fee marked paid")
		u.notifier.Customer(updated.CustomerRef, msgRevisionFeePaid(updated.OrderID))
	}
	return updated, nil
}

func (u *RevisionUseCase) GetByID(ctx context.Context, revisionID string) (*entities.Revision, error) {
	revisionID = strings.TrimSpace(revisionID)
	if revisionID == "" {
		return nil, ErrInvalidRevisionID
	}
	rev, err := u.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, errors.Wrap(err, "load revision")
	}
	if rev.ID == "" {
		return nil, nil
	}
	return &rev, nil
}

// ListByOrderID returns the order's revisions sorted by revision number.
func (u *RevisionUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Revision, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	revs, err := u.revisions.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list revisions")
	}
	return revs, nil
}

func (u *RevisionUseCase) ListPending(ctx context.Context, page interfaces.Page) (RevisionPage, error) {
	return u.page(ctx, interfaces.RevisionFilter{Status: entities.RevisionStatusPending}, page)
}

func (u *RevisionUseCase) ListAll(ctx context.Context, page interfaces.Page) (RevisionPage, error) {
	return u.page(ctx, interfaces.RevisionFilter{}, page)
}

func (u *RevisionUseCase) ListByCustomer(ctx context.Context, customerRef string, page interfaces.Page) (RevisionPage, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return RevisionPage{}, ErrInvalidCustomerRef
	}
	return u.page(ctx, interfaces.RevisionFilter{CustomerRef: customerRef}, page)
}

func (u *RevisionUseCase) page(ctx context.Context, filter interfaces.RevisionFilter, page interfaces.Page) (RevisionPage, error) {
	page = interfaces.NewPage(page.Number, page.Size)
	out := RevisionPage{Page: page}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.revisions.List(gctx, filter, page)
		out.Items = items
		return err
	})
	g.Go(func() error {
		total, err := u.revisions.Count(gctx, filter)
		out.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return RevisionPage{}, errors.Wrap(err, "list revisions")
	}
	return out, nil
}

func (u *RevisionUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "load order")
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *RevisionUseCase) loadRevision(ctx context.Context, revisionID string) (entities.Revision, error) {
	rev, err := u.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return entities.Revision{}, errors.Wrap(err, "load revision")
	}
	if rev.ID == "" {
		return entities.Revision{}, ErrRevisionNotFound
	}
	return rev, nil
}

func cloneMedia(m *entities.MediaRef) *entities.MediaRef {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}
