package table

import (
	"context"
	"fmt"

	"github.com/etnz/portfolio-pdf"
)

// Renderer streams holdings onto a canvas as a paginated table.
type Renderer struct {
	Columns []Column
	Options Options
	Policy  Policy
}

// Stats describes a rendered table.
type Stats struct {
	Pages int
	// Rows counts body rows, parent and nested.
	Rows int
	// Headers counts header rows, one per page.
	Headers    int
	Widths     []float64
	TableWidth float64
}

// Widths measures records with m and fits the result to the usable width.
func (r *Renderer) Widths(m Metrics, records []*portfolio.Record, usable float64) []float64 {
	return Fit(ComputeWidths(m, records, r.Columns, r.Options), usable, r.Policy)
}

// Render draws the header and every row of records, starting a new page
// whenever the next row would go past the bottom margin. widths holds one
// width per column, usually obtained from Widths.
func (r *Renderer) Render(ctx context.Context, c Canvas, records []*portfolio.Record, widths []float64) (Stats, error) {
	if len(widths) != len(r.Columns) {
		return Stats{}, fmt.Errorf("got %d widths for %d columns", len(widths), len(r.Columns))
	}
	p := &pager{
		r:      r,
		c:      c,
		widths: widths,
		opts:   r.Options,
		ind:    r.Options.indicatorIndex(r.Columns),
		rowH:   r.Options.rowHeight(),
	}
	p.stats.Widths = widths
	p.stats.TableWidth = Sum(widths)

	if err := p.newPage(ctx); err != nil {
		return p.stats, err
	}
	for _, rec := range records {
		if err := p.group(ctx, rec); err != nil {
			return p.stats, err
		}
	}
	return p.stats, nil
}

type row struct {
	depth int
	rec   *portfolio.Record
}

// pager holds the cursor of a table being drawn.
type pager struct {
	r      *Renderer
	c      Canvas
	widths []float64
	opts   Options
	ind    int
	rowH   float64

	y, top, bottom float64
	rowsOnPage     int
	parents        int
	stats          Stats
}

func (p *pager) newPage(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.c.AddPage()
	p.stats.Pages++

	w, h := p.c.PageSize()
	_, top, _, bottom := p.c.Margins()
	if bg := p.opts.Theme.Background; bg != nil {
		p.c.SetFillColor(*bg)
		p.c.Rect(0, 0, w, h, Fill)
	}
	p.top, p.bottom = top, h-bottom
	p.y = top
	p.rowsOnPage = 0
	p.header()
	return nil
}

// fits reports whether n more rows fit below the cursor.
func (p *pager) fits(n int) bool {
	return p.y+float64(n)*p.rowH <= p.bottom
}

// breakBefore starts a new page unless the page holds no row yet, so that a
// fresh page always receives at least one row.
func (p *pager) breakBefore(ctx context.Context, n int) error {
	if p.fits(n) || p.rowsOnPage == 0 {
		return nil
	}
	return p.newPage(ctx)
}

func (p *pager) group(ctx context.Context, rec *portfolio.Record) error {
	var rows []row
	forEachRow(rec, p.opts, func(depth int, r *portfolio.Record) {
		rows = append(rows, row{depth, r})
	})
	if len(rows) == 0 {
		return nil
	}

	switch p.opts.Break {
	case BreakAfterGroup:
		if err := p.breakBefore(ctx, 1); err != nil {
			return err
		}
		for _, rw := range rows {
			p.row(rw)
		}
		return nil
	case KeepGroups:
		freshPage := p.bottom - (p.top + p.rowH)
		if !p.fits(len(rows)) && float64(len(rows))*p.rowH <= freshPage && p.rowsOnPage > 0 {
			if err := p.newPage(ctx); err != nil {
				return err
			}
		}
	}
	for _, rw := range rows {
		if err := p.breakBefore(ctx, 1); err != nil {
			return err
		}
		p.row(rw)
	}
	return nil
}

func (p *pager) header() {
	th := p.opts.Theme
	p.c.SetFont(Bold, p.opts.FontSize)
	x, _, _, _ := p.c.Margins()
	for i, col := range p.r.Columns {
		p.cell(x, p.widths[i], col.Label, col.Align, th.HeaderFill, th.HeaderText)
		x += p.widths[i]
	}
	p.y += p.rowH
	p.stats.Headers++
}

func (p *pager) row(rw row) {
	th := p.opts.Theme
	fill := th.ChildFill
	if rw.depth == 0 {
		fill = th.rowFill(p.parents)
		p.parents++
	}
	p.c.SetFont(Regular, p.opts.FontSize)
	x, _, _, _ := p.c.Margins()
	for i, col := range p.r.Columns {
		text := cellText(rw.depth, rw.rec, i, col, p.ind, p.opts)
		p.cell(x, p.widths[i], text, col.Align, fill, th.Text)
		x += p.widths[i]
	}
	p.y += p.rowH
	p.rowsOnPage++
	p.stats.Rows++
}

// cell draws one bordered cell at the cursor line.
func (p *pager) cell(x, w float64, text string, align Align, fill *Color, fg Color) {
	th := p.opts.Theme
	p.c.SetDrawColor(th.Grid)
	p.c.SetLineWidth(th.LineWidth)
	paint := Stroke
	if fill != nil {
		p.c.SetFillColor(*fill)
		paint = FillStroke
	}
	p.c.Rect(x, p.y, w, p.rowH, paint)

	inner := w - 2*p.opts.Padding
	if inner <= 0 {
		return
	}
	text = Ellipsize(p.c, text, inner, p.opts.Ellipsis)
	if text == "" {
		return
	}
	p.c.SetTextColor(fg)
	p.c.Text(x+p.opts.Padding, p.y, inner, p.rowH, text, align)
}
