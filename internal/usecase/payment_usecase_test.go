package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"atelier_orders/internal/domain/entities"
	mock_interfaces "atelier_orders/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cardPayload = `{"payment_method_id":"visa","token":"tok","payer":{"email":"buyer@example.com"}}`

func newPaymentHarness(t *testing.T, ctrl *gomock.Controller, cfg PaymentConfig) (*harness, *PaymentUseCase, *mock_interfaces.MockIPaymentGateway) {
	h := newHarness(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	cfg.Clock = fixedClock
	return h, NewPaymentUseCase(h.store.Payments(), gateway, h.orders, h.ledger, cfg), gateway
}

func TestPaymentUseCase_PayDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("approved charge confirms deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, gateway := newPaymentHarness(t, ctrl, PaymentConfig{})
		o := quotedOrder(t, h, 6, 1000)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				require.NoError(t, json.Unmarshal(body, &m))
				assert.Equal(t, 420.0, m["transaction_amount"])
				assert.Equal(t, o.ID, m["external_reference"])
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})

		p, err := uc.PayDeposit(ctx, o.ID, json.RawMessage(cardPayload))
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusApproved, p.Status)
		assert.Equal(t, entities.PaymentPurposeDeposit, p.Purpose)
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(420)))

		stored := h.storedOrder(t, o.ID)
		assert.True(t, stored.DepositPaid)
		assert.Equal(t, entities.OrderStatusPaid, stored.Status)

		_, err = uc.PayDeposit(ctx, o.ID, json.RawMessage(cardPayload))
		assert.True(t, errors.Is(err, ErrAlreadyPaid))
	})

	t.Run("unquoted order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{})
		o := h.createOrder(t, "cust-1", 20)

		_, err := uc.PayDeposit(ctx, o.ID, json.RawMessage(cardPayload))
		assert.True(t, errors.Is(err, ErrNothingToPay))
	})

	t.Run("rejected by provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, gateway := newPaymentHarness(t, ctrl, PaymentConfig{})
		o := quotedOrder(t, h, 20, 1000)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{}`), nil)

		p, err := uc.PayDeposit(ctx, o.ID, json.RawMessage(cardPayload))
		require.True(t, errors.Is(err, ErrPaymentNotApproved))
		assert.Equal(t, entities.PaymentStatusDenied, p.Status)
		assert.False(t, h.storedOrder(t, o.ID).DepositPaid)
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{})
		o := quotedOrder(t, h, 20, 1000)

		_, err := uc.PayDeposit(ctx, o.ID, json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		assert.True(t, errors.Is(err, ErrInvalidMPPayload))
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{})
		_, err := uc.PayDeposit(ctx, "missing", json.RawMessage(cardPayload))
		assert.True(t, errors.Is(err, ErrOrderNotFound))
	})
}

func TestPaymentUseCase_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
	o := quotedOrder(t, h, 20, 1000)
	_, err := h.orders.ConfirmDeposit(context.Background(), o.ID)
	require.NoError(t, err)

	p, err := uc.PayBalance(context.Background(), o.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentPurposeBalance, p.Purpose)
	assert.Equal(t, "700", p.Amount.String())
	assert.True(t, h.storedOrder(t, o.ID).FinalPaymentPaid)

	listed, err := uc.ListByOrderID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = uc.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrPaymentNotFound))
}

func TestPaymentUseCase_PayRevisionFee(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
	o := quotedOrder(t, h, 20, 1000)
	rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
	require.NoError(t, err)

	p, err := uc.PayRevisionFee(ctx, rev.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, rev.ID, p.RevisionID)
	assert.Equal(t, "100", p.Amount.String())

	stored, _ := h.ledger.GetByID(ctx, rev.ID)
	assert.True(t, stored.RevisionFeePaid)

	_, err = uc.PayRevisionFee(ctx, rev.ID, nil)
	assert.True(t, errors.Is(err, ErrAlreadyPaid))

	_, err = uc.PayRevisionFee(ctx, h.storedOrder(t, o.ID).History[0], nil)
	assert.True(t, errors.Is(err, ErrRevisionFeeNotRequired))
}

func collectedFor(t *testing.T, uc *PaymentUseCase, orderID string) decimal.Decimal {
	t.Helper()
	ps, err := uc.ListByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	sum := decimal.Zero
	for _, p := range ps {
		if p.Status == entities.PaymentStatusApproved {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

func TestPaymentUseCase_CollectsExactlyTheTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit, revision fee, balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
		o := quotedOrder(t, h, 20, 1000)

		dep, err := uc.PayDeposit(ctx, o.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "300", dep.Amount.String())

		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{Reason: "sleeves"})
		require.NoError(t, err)
		fee, err := uc.PayRevisionFee(ctx, rev.ID, nil)
		require.NoError(t, err)
		assert.NotEqual(t, dep.ID, fee.ID)

		bal, err := uc.PayBalance(ctx, o.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "700", bal.Amount.String())

		stored := h.storedOrder(t, o.ID)
		assert.Equal(t, "1100", stored.TotalPrice.String())
		assert.True(t, collectedFor(t, uc, o.ID).Equal(stored.TotalPrice))
	})

	t.Run("balance covers an unpaid revision fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
		o := quotedOrder(t, h, 20, 1000)
		_, err := uc.PayDeposit(ctx, o.ID, nil)
		require.NoError(t, err)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)

		bal, err := uc.PayBalance(ctx, o.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "800", bal.Amount.String())

		_, err = uc.PayRevisionFee(ctx, rev.ID, nil)
		assert.True(t, errors.Is(err, ErrSettledByBalance))
		assert.True(t, collectedFor(t, uc, o.ID).Equal(h.storedOrder(t, o.ID).TotalPrice))
	})

	t.Run("fee confirmed by an operator is not charged again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
		o := quotedOrder(t, h, 20, 1000)
		_, err := h.orders.ConfirmDeposit(ctx, o.ID)
		require.NoError(t, err)
		rev, err := h.ledger.RequestRevision(ctx, o.ID, entities.RevisionPatch{})
		require.NoError(t, err)
		_, err = h.ledger.MarkFeePaid(ctx, rev.ID)
		require.NoError(t, err)

		bal, err := uc.PayBalance(ctx, o.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "700", bal.Amount.String())
	})

	t.Run("no deposit after the balance is settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
		o := quotedOrder(t, h, 20, 1000)

		bal, err := uc.PayBalance(ctx, o.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "1000", bal.Amount.String())

		_, err = uc.PayDeposit(ctx, o.ID, nil)
		assert.True(t, errors.Is(err, ErrAlreadyPaid))
		assert.Equal(t, "1000", collectedFor(t, uc, o.ID).String())
	})
}

func TestPaymentUseCase_ConcurrentDepositsChargeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, uc, _ := newPaymentHarness(t, ctrl, PaymentConfig{MockMode: true})
	o := quotedOrder(t, h, 20, 1000)

	const n = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.PayDeposit(context.Background(), o.ID, nil); err == nil {
				succeeded.Add(1)
			} else {
				assert.True(t, errors.Is(err, ErrAlreadyPaid), "unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, "300", collectedFor(t, uc, o.ID).String())
}

func TestClassifyGatewayError(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{`{"message":"Customer not found","code":2002}`, ErrGatewayPayerNotFound},
		{`{"cause":[{"code":2034,"description":"Invalid users involved"}]}`, ErrGatewayInvalidUsers},
		{`{"error":"unauthorized","status":401}`, ErrGatewayUnauthorized},
		{`{"error":"bad_request","status":400}`, ErrGatewayBadRequest},
		{`connection reset`, ErrGatewayUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			assert.True(t, errors.Is(classifyGatewayError(errors.New(tc.msg)), tc.want))
		})
	}
	assert.Nil(t, classifyGatewayError(nil))
}

func TestPaymentUseCase_SandboxPayerDefaults(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentConfig{SandboxToken: true, TestPayerEmail: "sandbox@testuser.com", TestPayerUserID: "123"})

	m := map[string]any{"payer": map[string]any{"id": 123}}
	uc.normalizeSandboxPayer(m)
	uc.ensurePayerDefaults(m)
	payer := m["payer"].(map[string]any)
	assert.Equal(t, "sandbox@testuser.com", payer["email"])
	assert.NotContains(t, payer, "id")
	assert.Equal(t, "customer", payer["type"])

	empty := map[string]any{}
	uc.ensurePayerDefaults(empty)
	assert.True(t, hasPayer(empty))
}
