package table

import (
	"fmt"
	"sort"
)

// Theme holds the colors of a table. Nil colors are not painted.
type Theme struct {
	Name string
	// Background fills the whole page before the table is drawn.
	Background *Color
	Grid       Color
	LineWidth  float64
	HeaderFill *Color
	HeaderText Color
	Text       Color
	// RowFills alternate on parent rows.
	RowFills  []Color
	ChildFill *Color
}

var (
	// Plain draws black borders and text on a white page.
	Plain = Theme{
		Name:      "plain",
		LineWidth: 1,
	}

	// Grey adds a light grey header and a thin grey grid.
	Grey = Theme{
		Name:       "grey",
		Grid:       Color{128, 128, 128},
		LineWidth:  0.25,
		HeaderFill: RGB(211, 211, 211),
	}

	// Dark is white text on dark slate rows.
	Dark = Theme{
		Name:       "dark",
		Background: RGB(28, 29, 34),
		Grid:       Color{128, 128, 128},
		LineWidth:  0.25,
		HeaderFill: RGB(28, 29, 34),
		HeaderText: Color{245, 245, 245},
		Text:       Color{255, 255, 255},
		RowFills:   []Color{{36, 36, 51}, {64, 64, 87}},
		ChildFill:  RGB(64, 64, 87),
	}
)

var themes = map[string]Theme{Plain.Name: Plain, Grey.Name: Grey, Dark.Name: Dark}

// ThemeByName returns one of the predefined themes.
func ThemeByName(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q, want one of %v", name, ThemeNames())
	}
	return t, nil
}

// ThemeNames lists the predefined themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// rowFill returns the fill of the i-th parent row, nil if not filled.
func (t Theme) rowFill(i int) *Color {
	if len(t.RowFills) == 0 {
		return nil
	}
	return &t.RowFills[i%len(t.RowFills)]
}
