package request

import "atelier_orders/internal/domain/entities"

// RevisionRequest carries only what changes. Absent fields keep the
// order's current value; a measurement sent as 0 is an override.
type RevisionRequest struct {
	Measurements    map[string]float64 `json:"measurements"`
	Inspiration     *MediaRefRequest   `json:"inspiration"`
	BodyConcerns    *string            `json:"body_concerns"`
	ColorPreference *string            `json:"color_preference"`
	Reason          string             `json:"reason"`
}

func (r RevisionRequest) ToPatch() entities.RevisionPatch {
	return entities.RevisionPatch{
		Measurements:    toMeasurements(r.Measurements),
		Inspiration:     r.Inspiration.toMediaRef(),
		BodyConcerns:    r.BodyConcerns,
		ColorPreference: r.ColorPreference,
		Reason:          r.Reason,
	}
}

type RevisionStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
