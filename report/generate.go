package report

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/portfolio-pdf"
	"github.com/etnz/portfolio-pdf/pdf"
	"github.com/etnz/portfolio-pdf/table"
)

// Now is the clock stamping output file names.
var Now = time.Now

// Result describes a generated, or measured, report.
type Result struct {
	Variant string
	// Path is empty for a measured report.
	Path    string
	Width   float64
	Height  float64
	Columns []table.Column
	Stats   table.Stats
}

// MarshalJSON writes the result with the column widths in column order.
func (r Result) MarshalJSON() ([]byte, error) {
	type column struct {
		Key   string  `json:"key"`
		Label string  `json:"label"`
		Width float64 `json:"width"`
	}
	cols := make([]column, len(r.Columns))
	for i, c := range r.Columns {
		cols[i] = column{Key: c.Key, Label: c.Label}
		if i < len(r.Stats.Widths) {
			cols[i].Width = r.Stats.Widths[i]
		}
	}
	var w jsonObjectWriter
	w.Append("preset", r.Variant)
	w.Optional("path", r.Path)
	w.EmbedFrom(struct {
		Width  float64 `json:"page_width"`
		Height float64 `json:"page_height"`
	}{r.Width, r.Height})
	w.Optional("pages", r.Stats.Pages)
	w.Optional("rows", r.Stats.Rows)
	w.Append("table_width", r.Stats.TableWidth)
	w.Append("columns", cols)
	return w.MarshalJSON()
}

// layout measures records on c and returns the page and the column widths of
// the report. The canvas is resized when the page fits the table.
func layout(c *pdf.Canvas, v Variant, records []*portfolio.Record) (pdf.Page, []float64, error) {
	widths := table.ComputeWidths(c, records, v.Columns, v.Options)
	page := v.Page
	if v.FitPage {
		p, err := page.WithWidth(table.Sum(widths) + 2*page.Margin)
		if err != nil {
			return page, nil, err
		}
		w, h, err := p.Dimensions()
		if err != nil {
			return page, nil, err
		}
		c.Resize(w, h)
		page = p
	}
	usable, err := page.Usable()
	if err != nil {
		return page, nil, err
	}
	return page, table.Fit(widths, usable, v.Policy), nil
}

// Measure computes the page and the column widths of a report without
// drawing it.
func Measure(v Variant, records []*portfolio.Record) (Result, error) {
	c, err := pdf.NewCanvas(v.Page)
	if err != nil {
		return Result{}, fmt.Errorf("invalid page for preset %q: %w", v.Name, err)
	}
	_, widths, err := layout(c, v, records)
	if err != nil {
		return Result{}, fmt.Errorf("invalid page for preset %q: %w", v.Name, err)
	}
	w, h := c.PageSize()
	return Result{
		Variant: v.Name,
		Width:   w,
		Height:  h,
		Columns: v.Columns,
		Stats:   table.Stats{Widths: widths, TableWidth: table.Sum(widths)},
	}, nil
}

// Generate draws records with the preset v and writes the document in dir.
// The file is only created once the whole document has been drawn.
func Generate(ctx context.Context, v Variant, records []*portfolio.Record, dir string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	c, err := pdf.NewCanvas(v.Page)
	if err != nil {
		return Result{}, fmt.Errorf("invalid page for preset %q: %w", v.Name, err)
	}
	c.SetTitle(fmt.Sprintf("Portfolio holdings (%s)", v.Name))

	_, widths, err := layout(c, v, records)
	if err != nil {
		return Result{}, fmt.Errorf("invalid page for preset %q: %w", v.Name, err)
	}
	stats, err := v.Renderer().Render(ctx, c, records, widths)
	if err != nil {
		return Result{}, fmt.Errorf("could not render preset %q: %w", v.Name, err)
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("could not create output directory %q: %w", dir, err)
		}
	}
	path := filepath.Join(dir, v.FileName(Now()))
	if err := c.WriteFile(path); err != nil {
		return Result{}, err
	}
	log.Printf("✅ PDF generated: %s", path)

	w, h := c.PageSize()
	return Result{Variant: v.Name, Path: path, Width: w, Height: h, Columns: v.Columns, Stats: stats}, nil
}

// GenerateAll generates every preset in turn, stopping at the first error.
func GenerateAll(ctx context.Context, vs []Variant, records []*portfolio.Record, dir string) ([]Result, error) {
	results := make([]Result, 0, len(vs))
	for _, v := range vs {
		res, err := Generate(ctx, v, records, dir)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// LookupAll returns the presets called names.
func LookupAll(names []string) ([]Variant, error) {
	vs := make([]Variant, 0, len(names))
	for _, n := range names {
		v, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
