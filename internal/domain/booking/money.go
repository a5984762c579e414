package booking

import "fmt"

// Money is an amount in integer minor currency units (kobo for NGN).
// Pricing never touches floating point so repeated additions stay exact.
type Money int64

func NewMoney(minor int64) Money {
	return Money(minor)
}

func (m Money) Minor() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) MulQty(qty int32) Money {
	return m * Money(qty)
}

// Percent returns pct% of the amount. All observed discount rates divide
// evenly into minor units for catalog prices, so integer division is exact in
// practice; any remainder is truncated in the customer's favour.
func (m Money) Percent(pct int64) Money {
	return m * Money(pct) / 100
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

// Major formats the amount in major units for display/email rendering.
func (m Money) Major() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
