package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue returns the display text of a decoded value.
//
// Numbers and numeric looking strings are read as float64 and rendered like
// JavaScript's toFixed(2): 5 is "5.00", "3.1" is "3.10", "1.005" is "1.00"
// and "1e400" is "Infinity". nil and the empty string render as "".
// Anything else renders as its string form, unchanged.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		if f, ok := parseNumber(v); ok {
			return toFixed(f)
		}
		return v
	case json.Number:
		if f, ok := parseNumber(v.String()); ok {
			return toFixed(f)
		}
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case decimal.Decimal:
		return toFixed(v.InexactFloat64())
	case Quantity:
		return toFixed(v.value.InexactFloat64())
	case fmt.Stringer:
		return v.String()
	}
	if f, ok := toFloat(v); ok {
		return toFixed(f)
	}
	return fmt.Sprint(v)
}

// toFixed formats f with two decimals as Number.prototype.toFixed(2) does.
//
// The exact binary value of f is rounded half away from zero, so 1.005 is
// "1.00" and 0.125 is "0.13". A negative value keeps its sign when it rounds
// to zero. Magnitudes of 1e21 or more use the shortest exponent form.
func toFixed(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	sign := ""
	if f < 0 {
		sign = "-"
	}
	// |f|×100 has at most 60 significant bits: exact at 128 bits.
	y := new(big.Float).SetPrec(128).SetFloat64(math.Abs(f))
	y.Mul(y, big.NewFloat(100))
	n, _ := y.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(y, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}

// parseNumber reads a numeric looking string: a decimal literal with an
// optional sign and exponent, or Infinity. Literals beyond the float64 range
// become infinite.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	// strconv also reads "inf" and "nan" in any case, JavaScript only "Infinity".
	body := strings.TrimLeft(s, "+-")
	if lower := strings.ToLower(body); body != "Infinity" && (strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan")) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// toFloat converts a decoded number, or a numeric looking string, to a
// float64. The result may be NaN or infinite.
func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case Quantity:
		return v.value.InexactFloat64(), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
