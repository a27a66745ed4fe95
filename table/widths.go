package table

import (
	"github.com/etnz/portfolio-pdf"
)

// ComputeWidths returns one width per column such that the header label and
// every cell text, of parent and nested rows, fit without being cut, plus the
// padding on each side.
//
// Labels are measured in the bold face, cells in the regular one. The
// indicator column also fits the indicator followed by each nested row name.
func ComputeWidths(m Metrics, records []*portfolio.Record, cols []Column, opts Options) []float64 {
	widths := make([]float64, len(cols))

	m.SetFont(Bold, opts.FontSize)
	for i, col := range cols {
		widths[i] = m.TextWidth(col.Label)
	}

	m.SetFont(Regular, opts.FontSize)
	ind := opts.indicatorIndex(cols)
	for _, rec := range records {
		forEachRow(rec, opts, func(depth int, r *portfolio.Record) {
			for i, col := range cols {
				text := cellText(depth, r, i, col, ind, opts)
				if w := m.TextWidth(text); w > widths[i] {
					widths[i] = w
				}
			}
		})
	}

	for i := range widths {
		widths[i] += 2 * opts.Padding
	}
	return widths
}

// Fit maps measured widths onto the usable page width.
//
// With ScaleToFit every width is multiplied by usable/sum(widths), so the
// result sums to usable. Natural widths are returned unchanged, as are
// widths that cannot be scaled (zero sum or no usable width).
func Fit(widths []float64, usable float64, policy Policy) []float64 {
	out := make([]float64, len(widths))
	copy(out, widths)
	if policy != ScaleToFit {
		return out
	}
	total := Sum(widths)
	if total <= 0 || usable <= 0 {
		return out
	}
	scale := usable / total
	for i := range out {
		out[i] *= scale
	}
	return out
}

// Sum returns the total width of the columns.
func Sum(widths []float64) float64 {
	var total float64
	for _, w := range widths {
		total += w
	}
	return total
}

// forEachRow calls fn for every row the record produces, in drawing order.
func forEachRow(rec *portfolio.Record, opts Options, fn func(depth int, r *portfolio.Record)) {
	rec.Walk(func(depth int, r *portfolio.Record) {
		if depth == 0 && opts.CollapseParents && r.HasChildren() {
			return
		}
		fn(depth, r)
	})
}

// cellText is the text of column i for a row at depth.
func cellText(depth int, r *portfolio.Record, i int, col Column, indicator int, opts Options) string {
	switch {
	case depth == 0:
		return col.Format(r.Get(col.Key))
	case i == indicator:
		return opts.nestedLabel(depth, r.Name())
	case opts.ChildValues:
		return col.Format(r.Get(col.Key))
	default:
		return ""
	}
}
