package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/portfolio-pdf/table"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// Font is the core font used for every text.
const Font = "Helvetica"

// glyphs replaces runes missing from the core fonts by a close cp1252 glyph.
var glyphs = strings.NewReplacer("↳", "»", "→", "»", "−", "-")

// encode turns s into the cp1252 bytes expected by the core fonts. Runes
// without a cp1252 code become "?".
func encode(s string) string {
	s = glyphs.Replace(s)
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Canvas is a table.Canvas writing a PDF document.
type Canvas struct {
	pdf    *fpdf.Fpdf
	w, h   float64
	margin float64
}

var _ table.Canvas = (*Canvas)(nil)

// NewCanvas returns an empty document with pages of the given geometry.
func NewCanvas(page Page) (*Canvas, error) {
	w, h, err := page.Dimensions()
	if err != nil {
		return nil, err
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(page.Margin, page.Margin, page.Margin)
	pdf.SetAutoPageBreak(false, page.Margin)
	pdf.SetCellMargin(0)
	pdf.SetCreator("ppdf", true)
	c := &Canvas{pdf: pdf, w: w, h: h, margin: page.Margin}
	c.SetFont(table.Regular, 10)
	return c, nil
}

// SetTitle sets the document title.
func (c *Canvas) SetTitle(title string) { c.pdf.SetTitle(title, true) }

// Resize changes the size of the pages added from now on.
func (c *Canvas) Resize(w, h float64) { c.w, c.h = w, h }

func (c *Canvas) SetFont(style table.FontStyle, size float64) {
	s := ""
	if style == table.Bold {
		s = "B"
	}
	c.pdf.SetFont(Font, s, size)
}

func (c *Canvas) TextWidth(s string) float64 { return c.pdf.GetStringWidth(encode(s)) }

func (c *Canvas) SetDrawColor(col table.Color) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetFillColor(col table.Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetTextColor(col table.Color) {
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *Canvas) SetLineWidth(w float64) { c.pdf.SetLineWidth(w) }

func (c *Canvas) Rect(x, y, w, h float64, paint table.Paint) {
	style := "D"
	switch paint {
	case table.Fill:
		style = "F"
	case table.FillStroke:
		style = "FD"
	}
	c.pdf.Rect(x, y, w, h, style)
}

func (c *Canvas) Text(x, y, w, h float64, s string, align table.Align) {
	a := "L"
	switch align {
	case table.Center:
		a = "C"
	case table.Right:
		a = "R"
	}
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, encode(s), "", 0, a, false, 0, "")
}

func (c *Canvas) AddPage() {
	c.pdf.AddPageFormat("P", fpdf.SizeType{Wd: c.w, Ht: c.h})
}

func (c *Canvas) PageSize() (float64, float64) { return c.w, c.h }

func (c *Canvas) Margins() (left, top, right, bottom float64) {
	return c.margin, c.margin, c.margin, c.margin
}

// Pages returns the number of pages added so far.
func (c *Canvas) Pages() int { return c.pdf.PageNo() }

// WriteTo writes the finished document to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if err := c.pdf.Error(); err != nil {
		return 0, fmt.Errorf("could not build pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return 0, fmt.Errorf("could not build pdf: %w", err)
	}
	return buf.WriteTo(w)
}

// WriteFile writes the finished document to path. Nothing is written when the
// document could not be built.
func (c *Canvas) WriteFile(path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write pdf file %q: %w", path, err)
	}
	return nil
}
