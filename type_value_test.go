package portfolio

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func quantity(t *testing.T, v any) Quantity {
	t.Helper()
	q, ok := NewQuantity(v)
	if !ok {
		t.Fatalf("NewQuantity(%#v) not a number", v)
	}
	return q
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"blank string", "  ", "  "},
		{"int", 5, "5.00"},
		{"negative int64", int64(-12), "-12.00"},
		{"uint8", uint8(7), "7.00"},
		{"float", 1234.5, "1234.50"},
		{"float rounding", 2.345, "2.35"},
		{"float negative rounding", -2.345, "-2.35"},
		{"float below the tie", 1.005, "1.00"},
		{"string below the tie", "2.675", "2.67"},
		{"exact tie away from zero", 0.125, "0.13"},
		{"small negative keeps its sign", "-0.001", "-0.00"},
		{"negative zero", math.Copysign(0, -1), "0.00"},
		{"large integer digits", 1e20, "100000000000000000000.00"},
		{"exponent form", 1e21, "1e+21"},
		{"negative exponent form", json.Number("-1.5e22"), "-1.5e+22"},
		{"beyond float64", json.Number("1e400"), "Infinity"},
		{"beyond float64 negative", "-1e400", "-Infinity"},
		{"Infinity string", "Infinity", "Infinity"},
		{"inf is text", "inf", "inf"},
		{"hex is text", "0x10", "0x10"},
		{"tiny", "1e-400", "0.00"},
		{"json number", json.Number("3.14159"), "3.14"},
		{"json number exponent", json.Number("1e3"), "1000.00"},
		{"numeric string", "3.1", "3.10"},
		{"numeric string spaces", " 42 ", "42.00"},
		{"negative numeric string", "-0.5", "-0.50"},
		{"text", "NABIL", "NABIL"},
		{"text with digits", "12abc", "12abc"},
		{"bool", true, "true"},
		{"decimal", decimal.RequireFromString("1.005"), "1.00"},
		{"quantity", quantity(t, "3"), "3.00"},
		{"percent", Percent(12.5), "12.50%"},
		{"NaN", math.NaN(), "NaN"},
		{"Inf", math.Inf(1), "Infinity"},
		{"negative Inf", math.Inf(-1), "-Infinity"},
		{"slice", []int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValue_TwoDecimalsForAllNumbers(t *testing.T) {
	for _, v := range []any{0, 1, -1, 0.1, 99.999, "7", "1e-3", json.Number("42")} {
		got := FormatValue(v)
		d, err := decimal.NewFromString(got)
		if err != nil {
			t.Errorf("FormatValue(%#v) = %q, not a number: %v", v, got, err)
			continue
		}
		if d.StringFixed(2) != got {
			t.Errorf("FormatValue(%#v) = %q, want exactly two decimals", v, got)
		}
	}
}

func TestFormatValue_HugeExponentsStayShort(t *testing.T) {
	for _, v := range []any{json.Number("1e50000000"), "-1e50000000", "1e-50000000", json.Number("9e999999999")} {
		done := make(chan string, 1)
		go func() { done <- FormatValue(v) }()
		select {
		case got := <-done:
			if len(got) > 32 {
				t.Errorf("FormatValue(%v) has %d characters, want a short text", v, len(got))
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("FormatValue(%v) did not return", v)
		}
	}
}
