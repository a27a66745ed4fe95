// Package pdf draws tables into PDF documents with github.com/go-pdf/fpdf.
package pdf

import (
	"fmt"
	"sort"
	"strings"
)

// Orientation of a page.
type Orientation int

const (
	Portrait Orientation = iota
	// Landscape swaps the width and the height of the page size.
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// sizes are the named page sizes, portrait, in points.
var sizes = map[string][2]float64{
	"A3":     {841.89, 1190.55},
	"A4":     {595.28, 841.89},
	"A5":     {419.53, 595.28},
	"Letter": {612, 792},
	"Legal":  {612, 1008},
}

// SizeNames lists the named page sizes.
func SizeNames() []string {
	names := make([]string, 0, len(sizes))
	for n := range sizes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Page is the geometry of the pages of a document, in points.
type Page struct {
	// Size is a named size, Width and Height are used when empty.
	Size          string
	Width, Height float64
	Orientation   Orientation
	// Margin is the blank space on every side of the page.
	Margin float64
}

// Dimensions returns the width and the height of the page once oriented.
func (p Page) Dimensions() (w, h float64, err error) {
	w, h = p.Width, p.Height
	if p.Size != "" {
		var s [2]float64
		var ok bool
		for name, v := range sizes {
			if strings.EqualFold(name, p.Size) {
				s, ok = v, true
				break
			}
		}
		if !ok {
			return 0, 0, fmt.Errorf("unknown page size %q, want one of %v", p.Size, SizeNames())
		}
		w, h = s[0], s[1]
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid page size %vx%v", w, h)
	}
	if p.Orientation == Landscape {
		w, h = h, w
	}
	if 2*p.Margin >= w || 2*p.Margin >= h {
		return 0, 0, fmt.Errorf("margin %v leaves no room on a %vx%v page", p.Margin, w, h)
	}
	return w, h, nil
}

// Usable returns the width between the left and the right margins.
func (p Page) Usable() (float64, error) {
	w, _, err := p.Dimensions()
	if err != nil {
		return 0, err
	}
	return w - 2*p.Margin, nil
}

// WithWidth returns a custom page as high as p and w wide.
func (p Page) WithWidth(w float64) (Page, error) {
	_, h, err := p.Dimensions()
	if err != nil {
		return p, err
	}
	return Page{Width: w, Height: h, Orientation: Portrait, Margin: p.Margin}, nil
}

func (p Page) String() string {
	if p.Size != "" {
		return fmt.Sprintf("%s %s", p.Size, p.Orientation)
	}
	w, h, _ := p.Dimensions()
	return fmt.Sprintf("%gx%g", w, h)
}
