package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the outcome reported by the payment provider.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentPurpose says which engine amount a charge settles.
type PaymentPurpose string

const (
	PaymentPurposeDeposit     PaymentPurpose = "deposit"
	PaymentPurposeBalance     PaymentPurpose = "balance"
	PaymentPurposeRevisionFee PaymentPurpose = "revision_fee"
)

// BillingPayment is a provider charge recorded against an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response (JSON) for audit.
//   - MPPayload is the parsed representation.

type BillingPayment struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	RevisionID string          `json:"revision_id,omitempty"`
	Purpose    PaymentPurpose  `json:"purpose"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Status     PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
