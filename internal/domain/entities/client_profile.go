package entities

import "time"

// ClientProfile is the per-customer record kept in sync with submissions.
//
// Storage model (DynamoDB):
//   - PK: customer_ref
//   - GSI phone_number-index: phone_number
type ClientProfile struct {
	CustomerRef     string    `json:"customer_ref"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number"`
	City            string    `json:"city"`
	InstagramHandle string    `json:"instagram_handle"`
	TotalOrders     int       `json:"total_orders"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderSubmission is the intake form as received from a customer or an
// operator entering a walk-in order.
type OrderSubmission struct {
	FullName        string
	PhoneNumber     string
	City            string
	InstagramHandle string

	OrderType        OrderType
	Occasion         Occasion
	FabricPreference string
	CollectionID     string

	EventDate             time.Time
	PreferredDeliveryDate time.Time

	Measurements    Measurements
	BodyConcerns    string
	ColorPreference string
	Inspiration     *MediaRef

	TermsAccepted          bool
	RevisionPolicyAccepted bool
}

// Profile returns the contact part of the submission.
func (s OrderSubmission) Profile() ProfileSnapshot {
	return ProfileSnapshot{
		FullName:        s.FullName,
		PhoneNumber:     s.PhoneNumber,
		City:            s.City,
		InstagramHandle: s.InstagramHandle,
	}
}
