package table

import "strings"

// Ellipsize returns s cut so that it measures at most width, ending with
// ellipsis when cut. It returns "" when not even the ellipsis fits.
func Ellipsize(m Metrics, s string, width float64, ellipsis string) string {
	if m.TextWidth(s) <= width {
		return s
	}
	if m.TextWidth(ellipsis) > width {
		return ""
	}
	runes := []rune(s)
	// the longest prefix that fits, found by bisection: width grows with length.
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.TextWidth(strings.TrimRight(string(runes[:mid]), " ")+ellipsis) <= width {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.TrimRight(string(runes[:lo]), " ") + ellipsis
}
