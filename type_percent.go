package portfolio

import "fmt"

// Percent is a ratio already expressed in percent: 12.5 is "12.50%".
type Percent float64

// NewPercent reads a percent from a decoded value.
func NewPercent(v any) (Percent, bool) {
	d, ok := toDecimal(v)
	if !ok {
		return 0, false
	}
	return Percent(d.InexactFloat64()), true
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the percent with a sign, "-" when it rounds to zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
