package table

import "unicode/utf8"

// textOp is a text drawn on a fakeCanvas.
type textOp struct {
	page       int
	x, y, w, h float64
	s          string
	style      FontStyle
}

// rectOp is a rectangle drawn on a fakeCanvas.
type rectOp struct {
	page       int
	x, y, w, h float64
	paint      Paint
}

// fakeCanvas records drawing operations. Every rune is half the font size
// wide, 0.6 in bold.
type fakeCanvas struct {
	w, h                     float64
	left, top, right, bottom float64

	style FontStyle
	size  float64
	page  int
	texts []textOp
	rects []rectOp
}

func newFakeCanvas(w, h, margin float64) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, left: margin, top: margin, right: margin, bottom: margin}
}

func (f *fakeCanvas) SetFont(style FontStyle, size float64) { f.style, f.size = style, size }

func (f *fakeCanvas) TextWidth(s string) float64 {
	k := 0.5
	if f.style == Bold {
		k = 0.6
	}
	return float64(utf8.RuneCountInString(s)) * f.size * k
}

func (f *fakeCanvas) SetDrawColor(Color) {}
func (f *fakeCanvas) SetFillColor(Color) {}
func (f *fakeCanvas) SetTextColor(Color) {}
func (f *fakeCanvas) SetLineWidth(float64) {}

func (f *fakeCanvas) Rect(x, y, w, h float64, paint Paint) {
	f.rects = append(f.rects, rectOp{f.page, x, y, w, h, paint})
}

func (f *fakeCanvas) Text(x, y, w, h float64, s string, _ Align) {
	f.texts = append(f.texts, textOp{f.page, x, y, w, h, s, f.style})
}

func (f *fakeCanvas) AddPage() { f.page++ }
func (f *fakeCanvas) PageSize() (float64, float64) { return f.w, f.h }
func (f *fakeCanvas) Margins() (float64, float64, float64, float64) {
	return f.left, f.top, f.right, f.bottom
}

// textsAt returns the texts drawn in the column starting at x.
func (f *fakeCanvas) textsAt(x float64) []textOp {
	var out []textOp
	for _, t := range f.texts {
		if t.x == x {
			out = append(out, t)
		}
	}
	return out
}
