package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type RevisionStatus string

const (
	RevisionStatusPending  RevisionStatus = "pending"
	RevisionStatusApproved RevisionStatus = "approved"
	RevisionStatusRejected RevisionStatus = "rejected"
	RevisionStatusApplied  RevisionStatus = "applied"
)

func (s RevisionStatus) IsValid() bool {
	switch s {
	case RevisionStatusPending, RevisionStatusApproved, RevisionStatusRejected, RevisionStatusApplied:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is one of the allowed edges:
// pending -> approved, pending -> rejected, approved -> applied.
func (s RevisionStatus) CanTransitionTo(next RevisionStatus) bool {
	switch s {
	case RevisionStatusPending:
		return next == RevisionStatusApproved || next == RevisionStatusRejected
	case RevisionStatusApproved:
		return next == RevisionStatusApplied
	}
	return false
}

// Revision is a numbered measurement/preference snapshot of an order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id / revision_number
//   - GSI status-index: status / created_at
//   - GSI customer_ref-index: customer_ref / created_at
//
// Revisions are append-only; nothing deletes them.
type Revision struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	CustomerRef    string `json:"customer_ref"`
	RevisionNumber int    `json:"revision_number"`

	Measurements    Measurements `json:"measurements"`
	Inspiration     *MediaRef    `json:"inspiration,omitempty"`
	BodyConcerns    string       `json:"body_concerns"`
	ColorPreference string       `json:"color_preference"`

	IsFree            bool            `json:"is_free"`
	RevisionFee       decimal.Decimal `json:"revision_fee"`
	RevisionFeePaid   bool            `json:"revision_fee_paid"`
	RevisionFeePaidAt *time.Time      `json:"revision_fee_paid_at,omitempty"`

	Status         RevisionStatus `json:"status"`
	RevisionReason string         `json:"revision_reason"`
	ApprovedBy     string         `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	AdminNotes     string         `json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RevisionPatch is a revision request. Nil pointers and absent measurement
// keys inherit the order's current value.
type RevisionPatch struct {
	Measurements    Measurements
	Inspiration     *MediaRef
	BodyConcerns    *string
	ColorPreference *string
	Reason          string
}
