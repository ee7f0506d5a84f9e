package captable

import "github.com/shopspring/decimal"

// Percent is a percentage rounded to two decimal places.
type Percent struct {
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ratio returns part/total as a percentage. total must not be zero.
func ratio(part, total int64) Percent {
	v := decimal.NewFromInt(part).Mul(hundred).DivRound(decimal.NewFromInt(total), 2)
	return Percent{value: v}
}

// Decimal returns the exact percentage value, 37.5 for 37.5%.
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

func (p Percent) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }
