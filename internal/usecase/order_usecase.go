package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/domain/pricing"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/cenkalti/backoff"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	inspirationCategory = "inspirations"
	walkInPrefix        = "walkin_"
)

// OrderPage is one page of orders plus the unpaged total.
type OrderPage struct {
	Items []entities.Order
	Total int
	Page  interfaces.Page
}

// DashboardStats summarises every stored order.
type DashboardStats struct {
	TotalOrders   int             `json:"total_orders"`
	ActiveOrders  int             `json:"active_orders"`
	PendingQuotes int             `json:"pending_quotes"`
	RushOrders    int             `json:"rush_orders"`
	ReadyOrders   int             `json:"ready_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	BalanceDue    decimal.Decimal `json:"balance_due"`
}

// OrderUseCaseConfig tunes retries. Zero values fall back to defaults.
type OrderUseCaseConfig struct {
	UploadAttempts   int
	UploadRetryDelay time.Duration
	RepairAttempts   int
	RepairRetryDelay time.Duration
	Clock            func() time.Time
}

func (c OrderUseCaseConfig) withDefaults() OrderUseCaseConfig {
	if c.UploadAttempts < 1 {
		c.UploadAttempts = 3
	}
	if c.UploadRetryDelay <= 0 {
		c.UploadRetryDelay = 2 * time.Second
	}
	if c.RepairAttempts < 1 {
		c.RepairAttempts = 5
	}
	if c.RepairRetryDelay <= 0 {
		c.RepairRetryDelay = 5 * time.Second
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// IOrderUseCase is the order state machine: creation, quoting, payment
// confirmation and administrative status changes.
type IOrderUseCase interface {
	Create(ctx context.Context, customerRef string, submission entities.OrderSubmission) (entities.Order, error)
	SubmitOrder(ctx context.Context, customerRef string, submission entities.OrderSubmission, photo []byte) (entities.Order, error)
	CreateManualOrder(ctx context.Context, actorRef string, submission entities.OrderSubmission) (entities.Order, error)
	Quote(ctx context.Context, orderID string, basePrice decimal.Decimal, deliveryDate *time.Time) (entities.Order, error)
	Reschedule(ctx context.Context, orderID string, deliveryDate time.Time) (entities.Order, error)
	ConfirmDeposit(ctx context.Context, orderID string) (entities.Order, error)
	ConfirmFinalPayment(ctx context.Context, orderID string) (entities.Order, error)
	ChangeStatus(ctx context.Context, orderID string, status entities.OrderStatus, actorRef string) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	List(ctx context.Context, filter interfaces.OrderFilter, page interfaces.Page) (OrderPage, error)
	ListByCustomer(ctx context.Context, customerRef string, page interfaces.Page) (OrderPage, error)
	Stats(ctx context.Context) (DashboardStats, error)
	RepairHistory(ctx context.Context, orderID string) (entities.Order, error)
	RepairAllHistories(ctx context.Context) (int, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	ledger   *RevisionUseCase
	profiles IClientProfileUseCase
	storage  interfaces.IContentStorage
	notifier *Notifier
	cfg      OrderUseCaseConfig
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, ledger *RevisionUseCase, profiles IClientProfileUseCase, storage interfaces.IContentStorage, notifier *Notifier, cfg OrderUseCaseConfig) *OrderUseCase {
	cfg = cfg.withDefaults()
	clock := cfg.Clock
	return &OrderUseCase{
		repo:     repo,
		ledger:   ledger,
		profiles: profiles,
		storage:  storage,
		notifier: notifier,
		cfg:      cfg,
		now:      func() time.Time { return clock().UTC() },
	}
}

// Create stores a new order in form_submitted, records its originating
// revision and bumps the customer's order counter. A failure after the
// order itself is stored does not fail the call: a missing originating
// revision is repaired in the background and a missed counter bump is left
// to RecountOrders.
func (u *OrderUseCase) Create(ctx context.Context, customerRef string, s entities.OrderSubmission) (entities.Order, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return entities.Order{}, ErrInvalidCustomerRef
	}
	if err := validateSubmission(s); err != nil {
		return entities.Order{}, err
	}

	if _, err := u.profiles.UpsertFromSubmission(ctx, customerRef, s.Profile()); err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	rush := pricing.ClassifyRush(s.PreferredDeliveryDate, now)
	acceptedAt := now
	o := entities.Order{
		ID:                       uuid.NewString(),
		CustomerRef:              customerRef,
		ClientProfile:            s.Profile(),
		OrderType:                s.OrderType,
		Occasion:                 s.Occasion,
		FabricPreference:         strings.TrimSpace(s.FabricPreference),
		CollectionID:             strings.TrimSpace(s.CollectionID),
		EventDate:                s.EventDate.UTC(),
		PreferredDeliveryDate:    s.PreferredDeliveryDate.UTC(),
		IsRushOrder:              rush.IsRush,
		RushMultiplier:           rush.Multiplier,
		DaysUntilDelivery:        rush.DaysUntil,
		Measurements:             s.Measurements.Clone(),
		BodyConcerns:             strings.TrimSpace(s.BodyConcerns),
		ColorPreference:          strings.TrimSpace(s.ColorPreference),
		Inspiration:              cloneMedia(s.Inspiration),
		TermsAccepted:            true,
		TermsAcceptedAt:          &acceptedAt,
		RevisionPolicyAccepted:   true,
		RevisionPolicyAcceptedAt: &acceptedAt,
		BasePrice:                decimal.Zero,
		TotalPrice:               decimal.Zero,
		DepositAmount:            decimal.Zero,
		Status:                   entities.OrderStatusFormSubmitted,
		History:                  []string{},
		Version:                  1,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.WithError(err).WithField("customer_ref", customerRef).Error("[order][usecase] create failed")
		return entities.Order{}, errors.Wrap(err, "create order")
	}
	fields := log.Fields{"order_id": created.ID, "customer_ref": customerRef, "rush_multiplier": created.RushMultiplier.String()}

	if withHistory, err := u.ledger.createOriginating(ctx, created.ID); err != nil {
		log.WithError(err).WithFields(fields).Error("[order][usecase] originating revision failed; scheduling repair")
		u.scheduleRepair(created.ID)
	} else {
		created = withHistory
	}

	_ = u.profiles.IncrementOrderCount(ctx, customerRef)

	log.WithFields(fields).Info("[order][usecase] order created")
	u.notifier.Customer(customerRef, msgOrderReceived())
	u.notifier.Operators(msgAdminNewOrder(created, u.notifier.AdminURL()))
	return created, nil
}

// SubmitOrder uploads the optional inspiration photo and then creates the
// order. The upload is dropped again when creation fails.
func (u *OrderUseCase) SubmitOrder(ctx context.Context, customerRef string, s entities.OrderSubmission, photo []byte) (entities.Order, error) {
	if strings.TrimSpace(customerRef) == "" {
		return entities.Order{}, ErrInvalidCustomerRef
	}
	if err := validateSubmission(s); err != nil {
		return entities.Order{}, err
	}
	if len(photo) == 0 {
		return u.Create(ctx, customerRef, s)
	}

	ref, err := u.uploadPhoto(ctx, photo)
	if err != nil {
		return entities.Order{}, err
	}
	s.Inspiration = &ref

	o, err := u.Create(ctx, customerRef, s)
	if err != nil {
		if delErr := u.storage.Delete(ctx, ref.StorageID); delErr != nil {
			log.WithError(delErr).WithField("storage_id", ref.StorageID).Warn("[order][usecase] orphaned upload not removed")
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (u *OrderUseCase) uploadPhoto(ctx context.Context, photo []byte) (entities.MediaRef, error) {
	mt := mimetype.Detect(photo)
	if !strings.HasPrefix(mt.String(), "image/") {
		return entities.MediaRef{}, fmt.Errorf("%w: detected %s", ErrInvalidPhoto, mt.String())
	}
	if u.storage == nil {
		return entities.MediaRef{}, fmt.Errorf("%w: content storage not configured", ErrUploadFailed)
	}

	var ref entities.MediaRef
	attempt := 0
	op := func() error {
		attempt++
		r, err := u.storage.Upload(ctx, photo, inspirationCategory)
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("[order][usecase] photo upload attempt failed")
			return err
		}
		ref = r
		return nil
	}
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(u.cfg.UploadRetryDelay), uint64(u.cfg.UploadAttempts-1))
	if err := backoff.Retry(op, policy); err != nil {
		return entities.MediaRef{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return ref, nil
}

// CreateManualOrder records a walk-in order entered by an operator. The
// customer is matched by phone number, otherwise a walk-in reference is
// derived from it. Missing measurements are stored as zero.
func (u *OrderUseCase) CreateManualOrder(ctx context.Context, actorRef string, s entities.OrderSubmission) (entities.Order, error) {
	if strings.TrimSpace(s.FullName) == "" || strings.TrimSpace(s.PhoneNumber) == "" || !s.OrderType.IsValid() {
		return entities.Order{}, fmt.Errorf("%w: full name, phone number and order type are required", ErrInvalidSubmission)
	}
	if err := s.Measurements.Validate(); err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", ErrInvalidMeasurements, err)
	}
	s.Measurements = s.Measurements.WithDefaults()
	s.TermsAccepted = true
	s.RevisionPolicyAccepted = true

	customerRef := walkInPrefix + digitsOnly(s.PhoneNumber)
	existing, err := u.profiles.FindByPhone(ctx, s.PhoneNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if existing != nil {
		customerRef = existing.CustomerRef
	}

	log.WithFields(log.Fields{"actor": actorRef, "customer_ref": customerRef}).Info("[order][usecase] manual order")
	return u.Create(ctx, customerRef, s)
}

// Quote prices the order and moves it to bill_sent. The rush tier is
// recomputed against the current time. Quoting again re-prices and returns
// the order to bill_sent.
func (u *OrderUseCase) Quote(ctx context.Context, orderID string, basePrice decimal.Decimal, deliveryDate *time.Time) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !basePrice.IsPositive() {
		return entities.Order{}, ErrInvalidPrice
	}
	if deliveryDate != nil && deliveryDate.IsZero() {
		return entities.Order{}, ErrInvalidDeliveryDate
	}

	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if deliveryDate != nil {
			o.PreferredDeliveryDate = deliveryDate.UTC()
		}
		applyRush(o, now)
		q := pricing.PriceOrder(basePrice, o.RushMultiplier)
		o.BasePrice = basePrice
		o.TotalPrice = q.TotalPrice
		o.DepositAmount = q.DepositAmount
		o.Status = entities.OrderStatusBillSent
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	log.WithFields(log.Fields{"order_id": updated.ID, "total": updated.TotalPrice.String(), "deposit": updated.DepositAmount.String()}).Info("[order][usecase] quote sent")
	u.notifier.Customer(updated.CustomerRef, msgOrderQuote(updated.TotalPrice, updated.PreferredDeliveryDate, updated.TotalPrice.Sub(updated.BasePrice)))
	return updated, nil
}

// Reschedule changes the delivery date and reclassifies the rush tier. A
// quoted order is re-priced from its base price with its revision fees kept;
// the status is kept.
func (u *OrderUseCase) Reschedule(ctx context.Context, orderID string, deliveryDate time.Time) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if deliveryDate.IsZero() {
		return entities.Order{}, ErrInvalidDeliveryDate
	}

	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.Status == entities.OrderStatusDelivered {
			return ErrOrderDelivered
		}
		fees := revisionFeesIn(*o)
		o.PreferredDeliveryDate = deliveryDate.UTC()
		applyRush(o, now)
		if o.BasePrice.IsPositive() {
			q := pricing.PriceOrder(o.BasePrice, o.RushMultiplier)
			o.TotalPrice = q.TotalPrice.Add(fees)
			o.DepositAmount = pricing.DepositFor(o.TotalPrice)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.WithFields(log.Fields{"order_id": updated.ID, "rush_multiplier": updated.RushMultiplier.String()}).Info("[order][usecase] delivery rescheduled")
	u.notifier.Customer(updated.CustomerRef, msgDeliveryRescheduled(updated.PreferredDeliveryDate, updated.TotalPrice))
	return updated, nil
}

func (u *OrderUseCase) ConfirmDeposit(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if !o.DepositPaid {
			o.DepositCollected = o.DepositAmount
		}
		o.DepositPaid = true
		o.DepositPaidAt = &now
		o.Status = entities.OrderStatusPaid
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.WithField("order_id", updated.ID).Info("[order][usecase] deposit confirmed")
	u.notifier.Customer(updated.CustomerRef, msgOrderConfirmed(updated.OrderType, updated.PreferredDeliveryDate))
	return updated, nil
}

// ConfirmFinalPayment records that the balance was settled. The status is
// not changed.
func (u *OrderUseCase) ConfirmFinalPayment(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		o.FinalPaymentPaid = true
		o.FinalPaymentPaidAt = &now
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.WithField("order_id", updated.ID).Info("[order][usecase] final payment confirmed")
	u.notifier.Customer(updated.CustomerRef, msgFinalPaymentReceived(updated.ID))
	return updated, nil
}

// ChangeStatus sets any known status. Moves that are not a single step
// along the main line are allowed for operators but logged with the actor.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, status entities.OrderStatus, actorRef string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, status)
	}

	var previous entities.OrderStatus
	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		previous = o.Status
		o.Status = status
		o.StatusChangedBy = actorRef
		o.StatusChangedAt = &now
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	fields := log.Fields{"order_id": updated.ID, "from": previous, "to": status, "actor": actorRef}
	if !previous.IsMainLineStep(status) {
		log.WithFields(fields).Warn("[order][usecase] status jump outside the main line")
	} else {
		log.WithFields(fields).Info("[order][usecase] status changed")
	}

	switch status {
	case entities.OrderStatusReady:
		u.notifier.Customer(updated.CustomerRef, msgOrderReady(updated.BalanceDue()))
	case entities.OrderStatusDelivered:
		u.notifier.Customer(updated.CustomerRef, msgOrderDelivered())
	default:
		u.notifier.Customer(updated.CustomerRef, msgStatusUpdate(status))
	}
	return updated, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "load order")
	}
	if o.ID == "" {
		return nil, nil
	}
	return &o, nil
}

// List returns orders newest first.
func (u *OrderUseCase) List(ctx context.Context, filter interfaces.OrderFilter, page interfaces.Page) (OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return OrderPage{}, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, filter.Status)
	}
	page = interfaces.NewPage(page.Number, page.Size)
	out := OrderPage{Page: page}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := u.repo.List(gctx, filter, page)
		out.Items = items
		return err
	})
	g.Go(func() error {
		total, err := u.repo.Count(gctx, filter)
		out.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return OrderPage{}, errors.Wrap(err, "list orders")
	}
	return out, nil
}

func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerRef string, page interfaces.Page) (OrderPage, error) {
	customerRef = strings.TrimSpace(customerRef)
	if customerRef == "" {
		return OrderPage{}, ErrInvalidCustomerRef
	}
	return u.List(ctx, interfaces.OrderFilter{CustomerRef: customerRef}, page)
}

func (u *OrderUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, errors.Wrap(err, "list orders")
	}
	s := DashboardStats{TotalOrders: len(orders), TotalRevenue: decimal.Zero, BalanceDue: decimal.Zero}
	for _, o := range orders {
		if o.Status != entities.OrderStatusDelivered {
			s.ActiveOrders++
		}
		switch o.Status {
		case entities.OrderStatusFormSubmitted:
			s.PendingQuotes++
		case entities.OrderStatusReady:
			s.ReadyOrders++
		}
		if o.RushMultiplier.GreaterThan(pricing.MultiplierStandard) {
			s.RushOrders++
		}
		s.TotalRevenue = s.TotalRevenue.Add(o.TotalPrice)
		if !o.FinalPaymentPaid {
			s.BalanceDue = s.BalanceDue.Add(o.BalanceDue())
		}
	}
	return s, nil
}

// RepairHistory records the originating revision for an order whose
// history is empty. Orders that already have one are returned unchanged.
func (u *OrderUseCase) RepairHistory(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	return u.ledger.createOriginating(ctx, orderID)
}

// RepairAllHistories repairs every stored order with an empty history and
// returns how many were repaired.
func (u *OrderUseCase) RepairAllHistories(ctx context.Context) (int, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list orders")
	}
	repaired, failed := 0, 0
	for _, o := range orders {
		if o.HasOriginatingSnapshot() {
			continue
		}
		if _, err := u.RepairHistory(ctx, o.ID); err != nil {
			failed++
			log.WithError(err).WithField("order_id", o.ID).Error("[order][usecase] history repair failed")
			continue
		}
		repaired++
	}
	log.WithFields(log.Fields{"repaired": repaired, "failed": failed}).Info("[order][usecase] history repair finished")
	if failed > 0 {
		return repaired, errors.Errorf("%d order histories could not be repaired", failed)
	}
	return repaired, nil
}

func (u *OrderUseCase) scheduleRepair(orderID string) {
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(u.cfg.RepairRetryDelay), uint64(u.cfg.RepairAttempts))
	u.notifier.Go(func() {
		err := backoff.Retry(func() error {
			_, err := u.RepairHistory(context.Background(), orderID)
			return err
		}, policy)
		if err != nil {
			log.WithError(err).WithField("order_id", orderID).Error("[order][usecase] background history repair gave up")
			return
		}
		log.WithField("order_id", orderID).Info("[order][usecase] background history repair succeeded")
	})
}

// mutate applies fn to the freshly loaded order under the order's lock and
// writes it back conditionally, retrying lost writes.
func (u *OrderUseCase) mutate(ctx context.Context, orderID string, fn func(o *entities.Order, now time.Time) error) (entities.Order, error) {
	var updated entities.Order
	err := u.ledger.locks.run(orderID, func() error {
		o, err := u.ledger.loadOrder(ctx, orderID)
		if err != nil {
			return err
		}
		now := u.now()
		next := o
		if err := fn(&next, now); err != nil {
			return err
		}
		next.UpdatedAt = now
		updated, err = u.repo.Update(ctx, next, o.Version)
		return err
	})
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Warn("[order][usecase] update failed")
		return entities.Order{}, err
	}
	return updated, nil
}

func applyRush(o *entities.Order, now time.Time) {
	rush := pricing.ClassifyRush(o.PreferredDeliveryDate, now)
	o.IsRushOrder = rush.IsRush
	o.RushMultiplier = rush.Multiplier
	o.DaysUntilDelivery = rush.DaysUntil
}

// revisionFeesIn is the part of the total added by revision fees. The
// quoted part is always round(base * multiplier) and fees are added
// unrounded, so the difference is exact.
func revisionFeesIn(o entities.Order) decimal.Decimal {
	if !o.BasePrice.IsPositive() {
		return decimal.Zero
	}
	fees := o.TotalPrice.Sub(pricing.PriceOrder(o.BasePrice, o.RushMultiplier).TotalPrice)
	if fees.IsNegative() {
		return decimal.Zero
	}
	return fees
}

func validateSubmission(s entities.OrderSubmission) error {
	if !s.TermsAccepted || !s.RevisionPolicyAccepted {
		return ErrAgreementRequired
	}
	var missing []string
	if strings.TrimSpace(s.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(s.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if strings.TrimSpace(s.City) == "" {
		missing = append(missing, "city")
	}
	if !s.OrderType.IsValid() {
		missing = append(missing, "orderType")
	}
	if !s.Occasion.IsValid() {
		missing = append(missing, "occasion")
	}
	if s.EventDate.IsZero() {
		missing = append(missing, "eventDate")
	}
	if s.PreferredDeliveryDate.IsZero() {
		missing = append(missing, "preferredDeliveryDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or invalid %s", ErrInvalidSubmission, strings.Join(missing, ", "))
	}
	if err := s.Measurements.ValidateComplete(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMeasurements, err)
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
