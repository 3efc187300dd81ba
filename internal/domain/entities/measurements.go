package entities

import (
	"fmt"
	"math"
)

// MeasurementName is one of the body measurements taken for a garment.
type MeasurementName string

const (
	MeasurementBust          MeasurementName = "bust"
	MeasurementWaist         MeasurementName = "waist"
	MeasurementHips          MeasurementName = "hips"
	MeasurementShoulderWidth MeasurementName = "shoulderWidth"
	MeasurementDressLength   MeasurementName = "dressLength"
	MeasurementArmLength     MeasurementName = "armLength"
	MeasurementHeight        MeasurementName = "height"
)

// MeasurementNames is the closed schema of accepted measurement keys.
var MeasurementNames = []MeasurementName{
	MeasurementBust,
	MeasurementWaist,
	MeasurementHips,
	MeasurementShoulderWidth,
	MeasurementDressLength,
	MeasurementArmLength,
	MeasurementHeight,
}

func (n MeasurementName) IsValid() bool {
	for _, known := range MeasurementNames {
		if n == known {
			return true
		}
	}
	return false
}

// Measurements maps a measurement name to its value (centimetres).
//
// Presence is decided by key, never by value: a 0 stored under a key is a
// real measurement.
type Measurements map[MeasurementName]float64

// Validate checks keys against the schema and rejects negative or
// non-finite values. It does not require every key to be present.
func (m Measurements) Validate() error {
	for name, v := range m {
		if !name.IsValid() {
			return fmt.Errorf("unknown measurement %q", name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid value for measurement %q", name)
		}
	}
	return nil
}

// ValidateComplete is Validate plus the requirement that every schema key
// is present.
func (m Measurements) ValidateComplete() error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, name := range MeasurementNames {
		if _, ok := m[name]; !ok {
			return fmt.Errorf("missing measurement %q", name)
		}
	}
	return nil
}

// WithDefaults returns a copy where missing schema keys are set to 0.
func (m Measurements) WithDefaults() Measurements {
	out := m.Clone()
	for _, name := range MeasurementNames {
		if _, ok := out[name]; !ok {
			out[name] = 0
		}
	}
	return out
}

func (m Measurements) Clone() Measurements {
	out := make(Measurements, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns a copy of m with every key present in patch overridden.
func (m Measurements) Merge(patch Measurements) Measurements {
	out := m.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}
