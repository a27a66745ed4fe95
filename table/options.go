package table

import (
	"fmt"
	"strings"
)

// Policy decides how measured column widths map onto the page width.
type Policy int

const (
	// Natural keeps the measured widths, the table may be narrower or wider
	// than the page.
	Natural Policy = iota
	// ScaleToFit scales every column by the same factor so that the table
	// fills the usable page width exactly.
	ScaleToFit
)

var policyNames = map[Policy]string{Natural: "natural", ScaleToFit: "scale"}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "natural" or "scale".
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Natural, fmt.Errorf("unknown width policy %q, want natural or scale", s)
}

// BreakPolicy decides when the pager starts a new page.
type BreakPolicy int

const (
	// BreakPerRow checks every row, parent or nested, so that no row is ever
	// drawn below the printable height.
	BreakPerRow BreakPolicy = iota
	// BreakAfterGroup checks only between groups (a parent and its nested
	// rows). A long group can run past the bottom of the page.
	BreakAfterGroup
	// KeepGroups moves a group to the next page when it does not fit on the
	// current one but fits on a fresh page, and checks every row otherwise.
	KeepGroups
)

var breakNames = map[BreakPolicy]string{BreakPerRow: "row", BreakAfterGroup: "group", KeepGroups: "keep"}

func (b BreakPolicy) String() string {
	if s, ok := breakNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BreakPolicy(%d)", int(b))
}

// ParseBreakPolicy parses "row", "group" or "keep".
func ParseBreakPolicy(s string) (BreakPolicy, error) {
	for b, name := range breakNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return BreakPerRow, fmt.Errorf("unknown page break policy %q, want row, group or keep", s)
}

// Options are the typographic settings of a table.
type Options struct {
	FontSize float64
	// Padding is the horizontal space on each side of a cell text.
	Padding float64
	// RowHeight is the height of every row, FontSize+8 when zero.
	RowHeight float64
	// Indicator prefixes the name of nested rows in the indicator column.
	Indicator string
	// IndicatorKey is the key of the column showing the nested row name,
	// the first column when empty or unknown.
	IndicatorKey string
	// ChildValues fills the other cells of nested rows with their values;
	// when false they stay empty.
	ChildValues bool
	// CollapseParents hides the parent row of holdings that have nested rows.
	CollapseParents bool
	// Ellipsis ends text cut to fit its cell.
	Ellipsis string
	Break    BreakPolicy
	Theme    Theme
}

// DefaultOptions returns the settings shared by the standard presets.
func DefaultOptions() Options {
	return Options{
		FontSize:    10,
		Padding:     6,
		Indicator:   "↳ ",
		ChildValues: true,
		Ellipsis:    "…",
		Break:       BreakPerRow,
		Theme:       Plain,
	}
}

func (o Options) rowHeight() float64 {
	if o.RowHeight > 0 {
		return o.RowHeight
	}
	return o.FontSize + 8
}

// indicatorIndex returns the index of the indicator column.
func (o Options) indicatorIndex(cols []Column) int {
	if i := IndexOf(cols, o.IndicatorKey); i >= 0 && o.IndicatorKey != "" {
		return i
	}
	return 0
}

// nestedLabel is the text of the indicator column for a nested row.
func (o Options) nestedLabel(depth int, name string) string {
	return strings.Repeat("  ", depth-1) + o.Indicator + name
}
