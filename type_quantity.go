package portfolio

import (
	"math"

	"github.com/shopspring/decimal"
)

// toDecimal converts a decoded number, or a numeric looking string, to a
// decimal. Only finite numbers are accepted. Values are read as float64 so
// that the digits of the result stay bounded.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case Quantity:
		return v.value, true
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

// Quantity is an exact number of units.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity reads a quantity from a decoded value.
func NewQuantity(v any) (Quantity, bool) {
	d, ok := toDecimal(v)
	return Quantity{value: d}, ok
}

// String returns the shortest exact representation, "1.5" for 1.50.
func (q Quantity) String() string { return q.value.String() }
