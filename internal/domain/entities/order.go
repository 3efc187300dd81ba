package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a garment order.
//
// Main line: form_submitted -> bill_sent -> paid -> in_progress -> ready -> delivered.
// revision_requested is a side state entered by a revision request from any
// state except delivered; leaving it is an explicit status change.
type OrderStatus string

const (
	OrderStatusFormSubmitted     OrderStatus = "form_submitted"
	OrderStatusBillSent          OrderStatus = "bill_sent"
	OrderStatusPaid              OrderStatus = "paid"
	OrderStatusInProgress        OrderStatus = "in_progress"
	OrderStatusReady             OrderStatus = "ready"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusRevisionRequested OrderStatus = "revision_requested"
)

var orderMainLine = []OrderStatus{
	OrderStatusFormSubmitted,
	OrderStatusBillSent,
	OrderStatusPaid,
	OrderStatusInProgress,
	OrderStatusReady,
	OrderStatusDelivered,
}

func (s OrderStatus) IsValid() bool {
	return s == OrderStatusRevisionRequested || s.mainLineIndex() >= 0
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered
}

// IsMainLineStep reports whether moving from s to next is either staying
// put or advancing exactly one step along the main line, or returning from
// revision_requested. Anything else is an administrative jump.
func (s OrderStatus) IsMainLineStep(next OrderStatus) bool {
	if s == next || s == OrderStatusRevisionRequested || next == OrderStatusRevisionRequested {
		return true
	}
	from, to := s.mainLineIndex(), next.mainLineIndex()
	return from >= 0 && to == from+1
}

func (s OrderStatus) mainLineIndex() int {
	for i, st := range orderMainLine {
		if st == s {
			return i
		}
	}
	return -1
}

type OrderType string

const (
	OrderTypeCustomEventDress OrderType = "custom_event_dress"
	OrderTypeSignatureDress   OrderType = "signature_dress"
)

func (t OrderType) IsValid() bool {
	return t == OrderTypeCustomEventDress || t == OrderTypeSignatureDress
}

type Occasion string

const (
	OccasionWedding    Occasion = "wedding"
	OccasionParty      Occasion = "party"
	OccasionGraduation Occasion = "graduation"
	OccasionOther      Occasion = "other"
)

func (o Occasion) IsValid() bool {
	switch o {
	case OccasionWedding, OccasionParty, OccasionGraduation, OccasionOther:
		return true
	}
	return false
}

// ProfileSnapshot is the submitter's contact data as it was when the order
// was created. It is not updated when the client profile changes.
type ProfileSnapshot struct {
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	City            string `json:"city"`
	InstagramHandle string `json:"instagram_handle"`
}

// MediaRef points to an object held by the content storage.
type MediaRef struct {
	URL       string `json:"url"`
	StorageID string `json:"storage_id"`
}

// Order is the central aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_ref-index: customer_ref / created_at
//   - GSI status-index: status / created_at
//
// Invariant: DepositAmount == round(TotalPrice * 0.30) after any write that
// sets TotalPrice. History holds revision ids oldest first; it may be empty
// while the originating snapshot is being repaired.
type Order struct {
	ID            string          `json:"id"`
	CustomerRef   string          `json:"customer_ref"`
	ClientProfile ProfileSnapshot `json:"client_profile"`

	OrderType        OrderType `json:"order_type"`
	Occasion         Occasion  `json:"occasion"`
	FabricPreference string    `json:"fabric_preference"`
	CollectionID     string    `json:"collection_id,omitempty"`

	EventDate             time.Time       `json:"event_date"`
	PreferredDeliveryDate time.Time       `json:"preferred_delivery_date"`
	IsRushOrder           bool            `json:"is_rush_order"`
	RushMultiplier        decimal.Decimal `json:"rush_multiplier"`
	DaysUntilDelivery     int             `json:"days_until_delivery"`

	Measurements    Measurements `json:"measurements"`
	BodyConcerns    string       `json:"body_concerns"`
	ColorPreference string       `json:"color_preference"`
	Inspiration     *MediaRef    `json:"inspiration,omitempty"`

	TermsAccepted            bool       `json:"terms_accepted"`
	TermsAcceptedAt          *time.Time `json:"terms_accepted_at,omitempty"`
	RevisionPolicyAccepted   bool       `json:"revision_policy_accepted"`
	RevisionPolicyAcceptedAt *time.Time `json:"revision_policy_accepted_at,omitempty"`

	BasePrice          decimal.Decimal `json:"base_price"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	DepositAmount      decimal.Decimal `json:"deposit_amount"`
	DepositPaid        bool            `json:"deposit_paid"`
	DepositPaidAt      *time.Time      `json:"deposit_paid_at,omitempty"`
	FinalPaymentPaid   bool            `json:"final_payment_paid"`
	FinalPaymentPaidAt *time.Time      `json:"final_payment_paid_at,omitempty"`

	// DepositCollected is the deposit amount at confirmation. Later
	// revision fees move DepositAmount but not what was collected.
	DepositCollected decimal.Decimal `json:"deposit_collected"`

	Status          OrderStatus `json:"status"`
	StatusChangedBy string      `json:"status_changed_by,omitempty"`
	StatusChangedAt *time.Time  `json:"status_changed_at,omitempty"`
	RevisionCount   int         `json:"revision_count"`
	History         []string    `json:"history"`

	AdminNotes string `json:"admin_notes"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BalanceDue is the amount still owed: total minus the deposit when paid.
func (o Order) BalanceDue() decimal.Decimal {
	if o.DepositPaid {
		return o.TotalPrice.Sub(o.DepositAmount)
	}
	return o.TotalPrice
}

// HasOriginatingSnapshot reports whether history[0] exists.
func (o Order) HasOriginatingSnapshot() bool {
	return len(o.History) > 0
}
