package usecase

import "github.com/pkg/errors"

// Error taxonomy roots. Every sentinel below unwraps to exactly one of them
// so transports can map by kind with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrIllegalTransition   = errors.New("illegal transition")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var (
	ErrOrderNotFound         = newKindError(ErrNotFound, "order not found")
	ErrRevisionNotFound      = newKindError(ErrNotFound, "revision not found")
	ErrClientProfileNotFound = newKindError(ErrNotFound, "client profile not found")

	ErrInvalidOrderID         = newKindError(ErrInvalidInput, "invalid order id")
	ErrInvalidRevisionID      = newKindError(ErrInvalidInput, "invalid revision id")
	ErrInvalidCustomerRef     = newKindError(ErrInvalidInput, "invalid customer reference")
	ErrAgreementRequired      = newKindError(ErrInvalidInput, "terms and revision policy must both be accepted")
	ErrInvalidSubmission      = newKindError(ErrInvalidInput, "invalid order submission")
	ErrInvalidMeasurements    = newKindError(ErrInvalidInput, "invalid measurements")
	ErrInvalidPrice           = newKindError(ErrInvalidInput, "invalid base price")
	ErrInvalidDeliveryDate    = newKindError(ErrInvalidInput, "invalid delivery date")
	ErrInvalidOrderStatus     = newKindError(ErrInvalidInput, "invalid order status")
	ErrInvalidRevisionStatus  = newKindError(ErrInvalidInput, "invalid revision status")
	ErrInvalidPhoto           = newKindError(ErrInvalidInput, "inspiration photo must be an image")
	ErrRevisionFeeNotRequired = newKindError(ErrInvalidInput, "revision is free")

	ErrRevisionTransition = newKindError(ErrIllegalTransition, "revision status change not allowed")
	ErrOrderDelivered     = newKindError(ErrIllegalTransition, "order already delivered")

	ErrUploadFailed = newKindError(ErrUpstreamUnavailable, "failed to upload photo to storage")
)

type kindError struct {
	msg  string
	kind error
}

func newKindError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
