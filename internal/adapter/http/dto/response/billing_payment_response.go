package response

import (
	"time"

	"atelier_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BillingPaymentResponse struct {
	PaymentID   string          `json:"payment_id"`
	OrderID     string          `json:"order_id"`
	RevisionID  string          `json:"revision_id,omitempty"`
	Purpose     string          `json:"purpose"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      string          `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		RevisionID:   p.RevisionID,
		Purpose:      string(p.Purpose),
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromBillingPayments(ps []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
