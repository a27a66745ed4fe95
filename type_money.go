package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// maxMoney bounds the amounts NewMoney accepts: their minor units must fit
// the int64 of go-money.
var maxMoney = decimal.New(1, 15)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// NewMoney reads an amount in currency from a decoded value.
// It returns false when the value is not a finite number below 1e15.
func NewMoney(v any, currency string) (Money, bool) {
	d, ok := toDecimal(v)
	if !ok || d.Abs().GreaterThanOrEqual(maxMoney) {
		return Money{}, false
	}
	return Money{value: d, cur: currency}, true
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount with the currency symbol and grouping, rounded to
// the currency fraction: "Rs 1,234.50" for NPR.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
