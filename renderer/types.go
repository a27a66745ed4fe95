package renderer

import (
	"github.com/etnz/portfolio-pdf/report"
)

// ColumnWidth is the final width of a column.
type ColumnWidth struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Width float64 `json:"width"`
}

// Widths is the layout of a preset for a given input.
type Widths struct {
	Preset     string        `json:"preset"`
	PageWidth  float64       `json:"page_width"`
	PageHeight float64       `json:"page_height"`
	TableWidth float64       `json:"table_width"`
	Columns    []ColumnWidth `json:"columns"`
}

// NewWidths returns the layout of a measured report.
func NewWidths(r report.Result) *Widths {
	w := &Widths{
		Preset:     r.Variant,
		PageWidth:  r.Width,
		PageHeight: r.Height,
		TableWidth: r.Stats.TableWidth,
	}
	for i, c := range r.Columns {
		cw := ColumnWidth{Key: c.Key, Label: c.Label}
		if i < len(r.Stats.Widths) {
			cw.Width = r.Stats.Widths[i]
		}
		w.Columns = append(w.Columns, cw)
	}
	return w
}

// Preset summarizes a report preset.
type Preset struct {
	Name        string `json:"name"`
	Page        string `json:"page"`
	Policy      string `json:"policy"`
	Theme       string `json:"theme"`
	Columns     int    `json:"columns"`
	Output      string `json:"output"`
	Description string `json:"description"`
}

// NewPresets summarizes presets.
func NewPresets(vs []report.Variant) []Preset {
	out := make([]Preset, 0, len(vs))
	for _, v := range vs {
		p := Preset{
			Name:        v.Name,
			Page:        v.Page.String(),
			Policy:      v.Policy.String(),
			Theme:       v.Options.Theme.Name,
			Columns:     len(v.Columns),
			Output:      v.Output,
			Description: v.Description,
		}
		if v.FitPage {
			p.Page += ", fit to table"
		}
		out = append(out, p)
	}
	return out
}

// Generated is a written report file.
type Generated struct {
	Preset string `json:"preset"`
	Path   string `json:"path"`
	Pages  int    `json:"pages"`
	Rows   int    `json:"rows"`
}

// NewGenerated summarizes generated reports.
func NewGenerated(results []report.Result) []Generated {
	out := make([]Generated, 0, len(results))
	for _, r := range results {
		out = append(out, Generated{Preset: r.Variant, Path: r.Path, Pages: r.Stats.Pages, Rows: r.Stats.Rows})
	}
	return out
}
