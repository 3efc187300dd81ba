package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound      = newKindError(ErrNotFound, "payment not found")
	ErrInvalidPaymentID     = newKindError(ErrInvalidInput, "invalid payment id")
	ErrInvalidMPPayload     = newKindError(ErrInvalidInput, "invalid mercado pago payload")
	ErrNothingToPay         = newKindError(ErrInvalidInput, "nothing to pay")
	ErrAlreadyPaid          = newKindError(ErrIllegalTransition, "already paid")
	ErrSettledByBalance     = newKindError(ErrIllegalTransition, "already settled by the balance payment")
	ErrPaymentNotApproved   = newKindError(ErrIllegalTransition, "payment not approved by provider")
	ErrGatewayBadRequest    = newKindError(ErrInvalidInput, "payment gateway bad request")
	ErrGatewayUnauthorized  = newKindError(ErrUpstreamUnavailable, "payment gateway unauthorized")
	ErrGatewayInvalidUsers  = newKindError(ErrInvalidInput, "payment gateway invalid users involved")
	ErrGatewayPayerNotFound = newKindError(ErrInvalidInput, "payment gateway customer not found")
	ErrGatewayUnavailable   = newKindError(ErrUpstreamUnavailable, "payment gateway unavailable")
)

// PaymentConfig carries the provider settings the use case needs.
type PaymentConfig struct {
	MockMode        bool
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
	Clock           func() time.Time
}

// IPaymentUseCase charges order amounts through the payment provider and
// confirms them on the order or revision once approved.
type IPaymentUseCase interface {
	PayDeposit(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	PayBalance(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	PayRevisionFee(ctx context.Context, revisionID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.BillingPayment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	gateway   interfaces.IPaymentGateway
	orders    IOrderUseCase
	revisions IRevisionUseCase
	cfg       PaymentConfig
	now       func() time.Time
	locks     *orderLocks
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IBillingPaymentRepository, gateway interfaces.IPaymentGateway, orders IOrderUseCase, revisions IRevisionUseCase, cfg PaymentConfig) *PaymentUseCase {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &PaymentUseCase{
		repo:      repo,
		gateway:   gateway,
		orders:    orders,
		revisions: revisions,
		cfg:       cfg,
		now:       func() time.Time { return clock().UTC() },
		locks:     newOrderLocks(),
	}
}

// charge describes one amount to collect.
type charge struct {
	orderID     string
	revisionID  string
	purpose     entities.PaymentPurpose
	amount      decimal.Decimal
	description string
}

// PayDeposit charges the quoted deposit. Charges for one order are
// serialised so an amount is never collected twice.
func (u *PaymentUseCase) PayDeposit(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.BillingPayment{}, ErrInvalidOrderID
	}
	unlock := u.locks.lock(orderID)
	defer unlock()

	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if o.DepositPaid || o.FinalPaymentPaid {
		return entities.BillingPayment{}, ErrAlreadyPaid
	}
	if !o.DepositAmount.IsPositive() {
		return entities.BillingPayment{}, fmt.Errorf("%w: order has not been quoted", ErrNothingToPay)
	}

	p, err := u.process(ctx, charge{
		orderID:     o.ID,
		purpose:     entities.PaymentPurposeDeposit,
		amount:      o.DepositAmount,
		description: fmt.Sprintf("Deposit for order %s", o.ID),
	}, mpPayload)
	if err != nil {
		return p, err
	}
	if _, err := u.orders.ConfirmDeposit(ctx, o.ID); err != nil {
		log.WithError(err).WithFields(log.Fields{"order_id": o.ID, "payment_id": p.ID}).Error("[payment][usecase] deposit charged but not confirmed")
		return p, err
	}
	return p, nil
}

// PayBalance charges whatever of the total has not been collected yet,
// revision fees included.
func (u *PaymentUseCase) PayBalance(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.BillingPayment{}, ErrInvalidOrderID
	}
	unlock := u.locks.lock(orderID)
	defer unlock()

	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if o.FinalPaymentPaid {
		return entities.BillingPayment{}, ErrAlreadyPaid
	}
	due, err := u.outstanding(ctx, o)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if !due.IsPositive() {
		return entities.BillingPayment{}, ErrNothingToPay
	}

	p, err := u.process(ctx, charge{
		orderID:     o.ID,
		purpose:     entities.PaymentPurposeBalance,
		amount:      due,
		description: fmt.Sprintf("Balance for order %s", o.ID),
	}, mpPayload)
	if err != nil {
		return p, err
	}
	if _, err := u.orders.ConfirmFinalPayment(ctx, o.ID); err != nil {
		log.WithError(err).WithFields(log.Fields{"order_id": o.ID, "payment_id": p.ID}).Error("[payment][usecase] balance charged but not confirmed")
		return p, err
	}
	return p, nil
}

// PayRevisionFee charges one revision's fee unless the balance payment
// already covered it.
func (u *PaymentUseCase) PayRevisionFee(ctx context.Context, revisionID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	revisionID = strings.TrimSpace(revisionID)
	if revisionID == "" {
		return entities.BillingPayment{}, ErrInvalidRevisionID
	}
	rev, err := u.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if rev == nil {
		return entities.BillingPayment{}, ErrRevisionNotFound
	}

	unlock := u.locks.lock(rev.OrderID)
	defer unlock()

	if rev, err = u.revisions.GetByID(ctx, revisionID); err != nil {
		return entities.BillingPayment{}, err
	}
	if rev == nil {
		return entities.BillingPayment{}, ErrRevisionNotFound
	}
	if rev.IsFree {
		return entities.BillingPayment{}, ErrRevisionFeeNotRequired
	}
	if rev.RevisionFeePaid {
		return entities.BillingPayment{}, ErrAlreadyPaid
	}
	o, err := u.loadOrder(ctx, rev.OrderID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	due, err := u.outstanding(ctx, o)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if due.LessThan(rev.RevisionFee) {
		return entities.BillingPayment{}, ErrSettledByBalance
	}

	p, err := u.process(ctx, charge{
		orderID:     rev.OrderID,
		revisionID:  rev.ID,
		purpose:     entities.PaymentPurposeRevisionFee,
		amount:      rev.RevisionFee,
		description: fmt.Sprintf("Revision %d fee for order %s", rev.RevisionNumber, rev.OrderID),
	}, mpPayload)
	if err != nil {
		return p, err
	}
	if _, err := u.revisions.MarkFeePaid(ctx, rev.ID); err != nil {
		log.WithError(err).WithFields(log.Fields{"revision_id": rev.ID, "payment_id": p.ID}).Error("[payment][usecase] revision fee charged but not confirmed")
		return p, err
	}
	return p, nil
}

// outstanding is the order total minus what has been collected: approved
// charges, plus a deposit or revision fees confirmed by an operator
// without a recorded charge.
func (u *PaymentUseCase) outstanding(ctx context.Context, o entities.Order) (decimal.Decimal, error) {
	payments, err := u.repo.ListByOrderID(ctx, o.ID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "list payments")
	}
	collected := decimal.Zero
	depositCharged := false
	chargedRevisions := map[string]bool{}
	for _, p := range payments {
		if p.Status != entities.PaymentStatusApproved {
			continue
		}
		collected = collected.Add(p.Amount)
		switch p.Purpose {
		case entities.PaymentPurposeDeposit:
			depositCharged = true
		case entities.PaymentPurposeRevisionFee:
			chargedRevisions[p.RevisionID] = true
		}
	}
	if o.DepositPaid && !depositCharged {
		collected = collected.Add(o.DepositCollected)
	}

	revs, err := u.revisions.ListByOrderID(ctx, o.ID)
	if err != nil {
		return decimal.Zero, err
	}
	for _, r := range revs {
		if !r.IsFree && r.RevisionFeePaid && !chargedRevisions[r.ID] {
			collected = collected.Add(r.RevisionFee)
		}
	}
	return o.TotalPrice.Sub(collected), nil
}

// process sends the charge to the provider (or fakes an approval in mock
// mode) and records the outcome. Only approved charges return no error.
func (u *PaymentUseCase) process(ctx context.Context, c charge, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	fields := log.Fields{"order_id": c.orderID, "purpose": c.purpose, "amount": c.amount.String()}
	log.WithFields(fields).WithField("payload_len", len(mpPayload)).Info("[payment][usecase] charge start")

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.cfg.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return entities.BillingPayment{}, fmt.Errorf("%w: %v", ErrInvalidMPPayload, err)
	}
	if !u.cfg.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.BillingPayment{}, fmt.Errorf("%w: payment_method_id is required", ErrInvalidMPPayload)
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.BillingPayment{}, fmt.Errorf("%w: payer is required", ErrInvalidMPPayload)
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = c.orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = c.description
	}
	// The stored order or revision is the source of truth for the amount.
	reqMap["transaction_amount"] = c.amount.InexactFloat64()

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
		err            error
	)
	if u.cfg.MockMode {
		providerID, providerStatus, providerResp, err = u.mockCharge(reqMap)
	} else {
		if u.gateway == nil {
			return entities.BillingPayment{}, fmt.Errorf("%w: gateway not configured", ErrGatewayUnavailable)
		}
		body, mErr := json.Marshal(reqMap)
		if mErr != nil {
			return entities.BillingPayment{}, errors.Wrap(mErr, "encode payment payload")
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, body)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.WithError(err).WithFields(fields).Warn("[payment][usecase] provider call failed")
		return entities.BillingPayment{}, err
	}

	var parsed map[string]interface{}
	if uErr := json.Unmarshal(providerResp, &parsed); uErr != nil {
		log.WithError(uErr).WithFields(fields).Warn("[payment][usecase] provider response not json")
	}

	p := entities.BillingPayment{
		ID:           providerID,
		OrderID:      c.orderID,
		RevisionID:   c.revisionID,
		Purpose:      c.purpose,
		Amount:       c.amount,
		Date:         u.now(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).WithFields(fields).WithField("payment_id", p.ID).Error("[payment][usecase] payment record not stored")
		return entities.BillingPayment{}, errors.Wrap(err, "store payment")
	}
	log.WithFields(fields).WithFields(log.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][usecase] charge recorded")

	if created.Status != entities.PaymentStatusApproved {
		return created, fmt.Errorf("%w: provider status %q", ErrPaymentNotApproved, providerStatus)
	}
	return created, nil
}

func (u *PaymentUseCase) mockCharge(reqMap map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	id := "mock-" + uuid.NewString()
	resp := map[string]any{}
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.WithField("payment_id", id).Info("[payment][usecase] mock mode; provider skipped")
	return id, "approved", b, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, errors.Wrap(err, "load payment")
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.BillingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	ps, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "list payments")
	}
	return ps, nil
}

func (u *PaymentUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o == nil {
		return entities.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email
// when neither payer.id nor payer.email was sent.
func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.cfg.TestPayerEmail != "":
		payer["email"] = u.cfg.TestPayerEmail
	case u.cfg.SandboxToken:
		payer["email"] = "test_user@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.cfg.SandboxToken || u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.cfg.TestPayerUserID {
		return
	}
	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

// classifyGatewayError maps provider error bodies onto the taxonomy.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrGatewayPayerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrGatewayBadRequest
	}
	return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
}
