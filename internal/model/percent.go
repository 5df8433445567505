package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a ratio expressed in percent. Defined is false when the ratio
// had a zero denominator; Value is then zero and means "no data", not "no change".
type Percent struct {
	Value   decimal.Decimal `json:"value"`
	Defined bool            `json:"defined"`
}

// PercentOf returns num / den * 100, undefined when den is zero.
func PercentOf(num, den decimal.Decimal) Percent {
	if den.IsZero() {
		return Percent{Value: decimal.Zero}
	}
	return Percent{Value: num.Mul(hundred).Div(den), Defined: true}
}

// Round returns Value rounded half away from zero to places decimals.
func (p Percent) Round(places int32) decimal.Decimal {
	return p.Value.Round(places)
}

// String renders one decimal place, or "n/a" when undefined.
func (p Percent) String() string {
	if !p.Defined {
		return "n/a"
	}
	return p.Value.StringFixed(1) + "%"
}
