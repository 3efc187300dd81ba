package request

import (
	"strings"
	"time"

	"atelier_orders/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OrderSubmissionRequest is the intake form. Customers send it as JSON or,
// with an inspiration photo, as the "payload" field of a multipart form.
type OrderSubmissionRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	City            string `json:"city"`
	InstagramHandle string `json:"instagram_handle"`

	OrderType        string `json:"order_type" binding:"required"`
	Occasion         string `json:"occasion" binding:"required"`
	FabricPreference string `json:"fabric_preference"`
	CollectionID     string `json:"collection_id"`

	EventDate             time.Time `json:"event_date" binding:"required"`
	PreferredDeliveryDate time.Time `json:"preferred_delivery_date" binding:"required"`

	Measurements    map[string]float64 `json:"measurements"`
	BodyConcerns    string             `json:"body_concerns"`
	ColorPreference string             `json:"color_preference"`
	Inspiration     *MediaRefRequest   `json:"inspiration"`

	TermsAccepted          bool `json:"terms_accepted"`
	RevisionPolicyAccepted bool `json:"revision_policy_accepted"`
}

// MediaRefRequest points to an already uploaded object.
type MediaRefRequest struct {
	URL       string `json:"url" binding:"required"`
	StorageID string `json:"storage_id"`
}

func (r OrderSubmissionRequest) ToSubmission() entities.OrderSubmission {
	return entities.OrderSubmission{
		FullName:               strings.TrimSpace(r.FullName),
		PhoneNumber:            strings.TrimSpace(r.PhoneNumber),
		City:                   strings.TrimSpace(r.City),
		InstagramHandle:        strings.TrimSpace(r.InstagramHandle),
		OrderType:              entities.OrderType(r.OrderType),
		Occasion:               entities.Occasion(r.Occasion),
		FabricPreference:       r.FabricPreference,
		CollectionID:           r.CollectionID,
		EventDate:              r.EventDate,
		PreferredDeliveryDate:  r.PreferredDeliveryDate,
		Measurements:           toMeasurements(r.Measurements),
		BodyConcerns:           r.BodyConcerns,
		ColorPreference:        r.ColorPreference,
		Inspiration:            r.Inspiration.toMediaRef(),
		TermsAccepted:          r.TermsAccepted,
		RevisionPolicyAccepted: r.RevisionPolicyAccepted,
	}
}

func (m *MediaRefRequest) toMediaRef() *entities.MediaRef {
	if m == nil || strings.TrimSpace(m.URL) == "" {
		return nil
	}
	return &entities.MediaRef{URL: strings.TrimSpace(m.URL), StorageID: m.StorageID}
}

func toMeasurements(m map[string]float64) entities.Measurements {
	if m == nil {
		return nil
	}
	out := make(entities.Measurements, len(m))
	for k, v := range m {
		out[entities.MeasurementName(k)] = v
	}
	return out
}

// QuoteRequest sets the base price. DeliveryDate, when present, replaces
// the preferred delivery date before the rush tier is computed.
type QuoteRequest struct {
	BasePrice    decimal.Decimal `json:"base_price" swaggertype:"string" example:"1000"`
	DeliveryDate *time.Time      `json:"delivery_date"`
}

type RescheduleRequest struct {
	DeliveryDate time.Time `json:"delivery_date" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
