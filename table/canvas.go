// Package table lays out holding records as a bordered, paginated table.
//
// The package does not know about PDF. It streams rectangles and text onto a
// Canvas, measuring text with the canvas font metrics, so that the same
// layout code serves every page geometry and every column set.
package table

// FontStyle selects the regular or bold face of the table font.
type FontStyle int

const (
	Regular FontStyle = iota
	Bold
)

// Align is the horizontal alignment of text in a cell.
type Align int

const (
	Left Align = iota
	Center
	Right
)

// Paint tells how a rectangle is drawn.
type Paint int

const (
	Stroke Paint = iota
	Fill
	FillStroke
)

// Color is an RGB color.
type Color struct{ R, G, B uint8 }

// RGB returns a pointer to a color, for the optional colors of a Theme.
func RGB(r, g, b uint8) *Color { return &Color{r, g, b} }

// Metrics measures text in the current font.
type Metrics interface {
	SetFont(style FontStyle, size float64)
	TextWidth(s string) float64
}

// Canvas is the drawing surface a table is streamed onto.
//
// Coordinates are in the canvas unit, origin at the top left corner of the
// page, y growing downwards.
type Canvas interface {
	Metrics
	SetDrawColor(c Color)
	SetFillColor(c Color)
	SetTextColor(c Color)
	SetLineWidth(w float64)
	// Rect draws a rectangle.
	Rect(x, y, w, h float64, paint Paint)
	// Text writes s in the box (x, y, w, h), vertically centered.
	Text(x, y, w, h float64, s string, align Align)
	// AddPage starts a new page; it must be called before the first drawing.
	AddPage()
	PageSize() (w, h float64)
	Margins() (left, top, right, bottom float64)
}
