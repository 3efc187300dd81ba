package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload of the payment routes.
//
// `mp_payload` is forwarded to Mercado Pago after the engine fills in the
// amount, description and external reference.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
