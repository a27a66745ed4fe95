package table

import (
	"fmt"

	"github.com/etnz/portfolio-pdf"
)

// Kind selects how a column renders its values.
type Kind int

const (
	// Text renders values with portfolio.FormatValue.
	Text Kind = iota
	// Money renders numbers as amounts in the column currency.
	Money
	// Percent renders numbers as percentages.
	Percent
	// Quantity renders numbers with their exact digits.
	Quantity
	// SignedMoney renders amounts with an explicit sign, "-" for zero.
	SignedMoney
	// SignedPercent renders percentages with an explicit sign, "-" for zero.
	SignedPercent
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Money:
		return "money"
	case Percent:
		return "percent"
	case Quantity:
		return "quantity"
	case SignedMoney:
		return "signed money"
	case SignedPercent:
		return "signed percent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column selects a record field to render and its header text.
type Column struct {
	Key   string
	Label string
	Kind  Kind
	// Currency is the ISO code used by Money columns.
	Currency string
	Align    Align
}

// IsMoney reports whether the column renders amounts in its Currency.
func (c Column) IsMoney() bool { return c.Kind == Money || c.Kind == SignedMoney }

// C is a short hand for a plain, left aligned column.
func C(key, label string) Column { return Column{Key: key, Label: label} }

// Format returns the display text of v in this column.
// Values a typed column cannot read fall back to portfolio.FormatValue.
func (c Column) Format(v any) string {
	switch c.Kind {
	case Money:
		if m, ok := portfolio.NewMoney(v, c.Currency); ok {
			return m.String()
		}
	case Percent:
		if p, ok := portfolio.NewPercent(v); ok {
			return p.String()
		}
	case Quantity:
		if q, ok := portfolio.NewQuantity(v); ok {
			return q.String()
		}
	case SignedMoney:
		if m, ok := portfolio.NewMoney(v, c.Currency); ok {
			return m.SignedString()
		}
	case SignedPercent:
		if p, ok := portfolio.NewPercent(v); ok {
			return p.SignedString()
		}
	}
	return portfolio.FormatValue(v)
}

// IndexOf returns the index of the column with key, -1 if none.
func IndexOf(cols []Column, key string) int {
	for i, c := range cols {
		if c.Key == key {
			return i
		}
	}
	return -1
}
