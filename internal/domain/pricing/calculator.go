// Package pricing holds the rush classification and price arithmetic.
//
// Every function is pure: the only external input is the reference time
// passed by the caller. Money is decimal and rounded half away from zero to
// whole currency units.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MultiplierUrgent   = decimal.RequireFromString("1.4")
	MultiplierExpress  = decimal.RequireFromString("1.2")
	MultiplierStandard = decimal.NewFromInt(1)

	DepositRate     = decimal.RequireFromString("0.30")
	RevisionFeeRate = decimal.RequireFromString("0.10")
)

const (
	urgentDays  = 7
	expressDays = 14
	day         = 24 * time.Hour
)

// RushClassification is the result of ClassifyRush.
type RushClassification struct {
	DaysUntil  int
	IsRush     bool
	Multiplier decimal.Decimal
}

// Quote is the result of PriceOrder.
type Quote struct {
	TotalPrice    decimal.Decimal
	DepositAmount decimal.Decimal
}

// ClassifyRush maps a delivery date to a rush tier.
//
// daysUntil = ceil((delivery - now) / 24h). Tiers, first match wins:
// < 7 days -> 1.4, < 14 days -> 1.2, otherwise 1.0.
func ClassifyRush(delivery, now time.Time) RushClassification {
	diff := delivery.UTC().Sub(now.UTC())
	days := int(math.Ceil(float64(diff) / float64(day)))

	var c RushClassification
	c.DaysUntil = days
	switch {
	case days < urgentDays:
		c.IsRush, c.Multiplier = true, MultiplierUrgent
	case days < expressDays:
		c.IsRush, c.Multiplier = true, MultiplierExpress
	default:
		c.IsRush, c.Multiplier = false, MultiplierStandard
	}
	c.Multiplier = clampMultiplier(c.Multiplier)
	return c
}

// PriceOrder returns total = round(base * multiplier) and its deposit.
func PriceOrder(basePrice, multiplier decimal.Decimal) Quote {
	total := Round(basePrice.Mul(clampMultiplier(multiplier)))
	return Quote{TotalPrice: total, DepositAmount: DepositFor(total)}
}

// DepositFor returns round(total * 0.30).
func DepositFor(total decimal.Decimal) decimal.Decimal {
	return Round(total.Mul(DepositRate))
}

// RevisionFee returns the fee for the revision with the given sequence
// number. Sequence 0 (the originating snapshot) is free; every later one
// costs 10% of the base price at the time of the request.
func RevisionFee(basePrice decimal.Decimal, sequence int) (fee decimal.Decimal, free bool) {
	if sequence == 0 {
		return decimal.Zero, true
	}
	return basePrice.Mul(RevisionFeeRate), false
}

// Round rounds half away from zero to whole units.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func clampMultiplier(m decimal.Decimal) decimal.Decimal {
	if m.LessThan(MultiplierStandard) {
		return MultiplierStandard
	}
	if m.GreaterThan(MultiplierUrgent) {
		return MultiplierUrgent
	}
	return m
}
