package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	response "atelier_orders/internal/adapter/http/dto/response"
	"atelier_orders/internal/domain/entities"
	"atelier_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// BillingPaymentHandler handles the Mercado Pago payment routes.

type BillingPaymentHandler struct {
	usecase   usecase.IPaymentUseCase
	orders    *OrderHandler
	revisions usecase.IRevisionUseCase
	mockMode  bool
}

// NewBillingPaymentHandler builds the handler. In mockMode a malformed
// body is replaced by an empty payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IPaymentUseCase, orders usecase.IOrderUseCase, revisions usecase.IRevisionUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, orders: NewOrderHandler(orders), revisions: revisions, mockMode: mockMode}
}

type payFunc func(ctx context.Context, id string, mpPayload json.RawMessage) (entities.BillingPayment, error)

func (h *BillingPaymentHandler) PayDeposit(c *gin.Context) {
	h.payOrder(c, entities.PaymentPurposeDeposit, h.usecase.PayDeposit)
}

func (h *BillingPaymentHandler) PayBalance(c *gin.Context) {
	h.payOrder(c, entities.PaymentPurposeBalance, h.usecase.PayBalance)
}

func (h *BillingPaymentHandler) payOrder(c *gin.Context, purpose entities.PaymentPurpose, pay payFunc) {
	mpPayload, ok := h.payload(c)
	if !ok {
		return
	}
	o, ok := h.orders.loadOwned(c)
	if !ok {
		return
	}
	h.charge(c, purpose, o.ID, mpPayload, pay)
}

// PayRevisionFee charges the fee of one of the caller's revisions.
func (h *BillingPaymentHandler) PayRevisionFee(c *gin.Context) {
	mpPayload, ok := h.payload(c)
	if !ok {
		return
	}
	rev, err := h.revisions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "payment", err)
		return
	}
	if rev == nil || rev.CustomerRef != customerRef(c) {
		writeError(c, errRevisionNotFound)
		return
	}
	h.charge(c, entities.PaymentPurposeRevisionFee, rev.ID, mpPayload, h.usecase.PayRevisionFee)
}

func (h *BillingPaymentHandler) payload(c *gin.Context) (json.RawMessage, bool) {
	mpPayload, err := readMPPayload(c)
	if err == nil {
		return mpPayload, true
	}
	if h.mockMode {
		log.WithError(err).Warn("[payment][handler] payload invalid in mock mode; using empty payload")
		return json.RawMessage("{}"), true
	}
	writeError(c, errInvalidRequest)
	return nil, false
}

func (h *BillingPaymentHandler) charge(c *gin.Context, purpose entities.PaymentPurpose, id string, mpPayload json.RawMessage, pay payFunc) {
	logger := log.WithFields(log.Fields{"purpose": purpose, "target_id": id})

	created, err := pay(c.Request.Context(), id, mpPayload)
	if errors.Is(err, usecase.ErrPaymentNotApproved) && created.ID != "" {
		logger.WithField("payment_id", created.ID).Info("[payment][handler] payment not approved")
		c.JSON(http.StatusPaymentRequired, response.FromBillingPayment(created))
		return
	}
	if err != nil {
		fail(c, "payment", err)
		return
	}
	logger.WithFields(log.Fields{"payment_id": created.ID, "status": created.Status}).Info("[payment][handler] charged")
	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

func (h *BillingPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

func (h *BillingPaymentHandler) ListOrderPayments(c *gin.Context) {
	ps, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, "payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(ps))
}

// readMPPayload accepts either {"mp_payload": {...}} or the bare provider
// payload. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
