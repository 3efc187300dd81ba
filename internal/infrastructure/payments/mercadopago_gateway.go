// Package payments wraps the Mercado Pago SDK behind IPaymentGateway.
package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"atelier_orders/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "mercado pago sdk config")
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment submits an enriched payment request and returns the
// provider id, its status and the raw provider response.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	logger := log.WithField("payload_len", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, errors.Wrap(err, "decode payment request")
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		logger.WithError(err).Warn("[payment][gateway] create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, errors.Wrap(err, "encode provider response")
	}
	id := fmt.Sprintf("%d", resp.ID)
	logger.WithFields(log.Fields{"provider_payment_id": id, "provider_status": resp.Status}).Info("[payment][gateway] created")

	return id, resp.Status, b, nil
}
