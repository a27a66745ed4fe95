package renderer

import (
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/portfolio-pdf/report"
	"github.com/etnz/portfolio-pdf/table"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// decode reads a testdata JSON file into v.
func decode(t *testing.T, file string, v any) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to decode %s: %v", file, err)
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name      string
		templates []string
		render    func(t *testing.T) string
	}{
		{
			name:      "widths",
			templates: []string{"widths.md"},
			render: func(t *testing.T) string {
				var w Widths
				decode(t, "widths.json", &w)
				return RenderWidths(&w)
			},
		},
		{
			name:      "presets",
			templates: []string{"presets.md", "presets_table.md"},
			render: func(t *testing.T) string {
				var p []Preset
				decode(t, "presets.json", &p)
				return RenderPresets(p)
			},
		},
		{
			name:      "generated",
			templates: []string{"generated.md"},
			render: func(t *testing.T) string {
				var g []Generated
				decode(t, "generated.json", &g)
				return RenderGenerated(g)
			},
		},
	}

	// every embedded template must be rendered by a test case
	tested := map[string]bool{}
	for _, tc := range testCases {
		for _, f := range tc.templates {
			tested[f] = true
		}
	}
	files, err := fs.Glob(templates, "*.md")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	for _, f := range files {
		if !tested[f] {
			t.Errorf("untested template found: %s. Please add a test case to TestRender.", f)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.render(t)
			goldenFile := filepath.Join("testdata", tc.name+".golden")
			want, err := os.ReadFile(goldenFile)
			if err != nil {
				t.Fatalf("failed to read golden file: %v", err)
			}
			if strings.TrimSpace(got) == strings.TrimSpace(string(want)) {
				return
			}
			if *fixGolden {
				if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
					t.Fatalf("failed to update golden file: %v", err)
				}
				t.Logf("updated golden file: %s", goldenFile)
				return
			}
			t.Errorf("%s mismatch:\n--- got ---\n%s\n--- want ---\n%s", tc.name, got, want)
		})
	}
}

func TestNewWidths(t *testing.T) {
	res := report.Result{
		Variant: "a4",
		Width:   841.89,
		Height:  595.28,
		Columns: []table.Column{table.C("symbol", "Symbol"), table.C("ltp", "LTP")},
		Stats:   table.Stats{Widths: []float64{40, 60}, TableWidth: 100},
	}
	w := NewWidths(res)
	if w.Preset != "a4" || w.TableWidth != 100 || len(w.Columns) != 2 {
		t.Fatalf("NewWidths() = %+v", w)
	}
	if got := w.Columns[1]; got.Key != "ltp" || got.Width != 60 {
		t.Errorf("NewWidths().Columns[1] = %+v, want ltp 60", got)
	}
	if got := RenderWidths(w); !strings.Contains(got, "| ltp | LTP | 60.00 |") {
		t.Errorf("RenderWidths() = %q, want the ltp row", got)
	}
}

func TestNewPresets(t *testing.T) {
	presets := NewPresets(report.Variants())
	if len(presets) != len(report.Names()) {
		t.Fatalf("NewPresets() returned %d presets, want %d", len(presets), len(report.Names()))
	}
	byName := map[string]Preset{}
	for _, p := range presets {
		byName[p.Name] = p
	}
	tests := []struct {
		name, page, policy, theme string
	}{
		{"a4", "A4 landscape", "scale", "plain"},
		{"limitless", "2132x600", "natural", "plain"},
		{"summary", "841.89x595.28, fit to table", "natural", "grey"},
		{"dark", "A4 portrait", "scale", "dark"},
	}
	for _, tt := range tests {
		p := byName[tt.name]
		if p.Page != tt.page || p.Policy != tt.policy || p.Theme != tt.theme {
			t.Errorf("preset %s = %q %q %q, want %q %q %q", tt.name, p.Page, p.Policy, p.Theme, tt.page, tt.policy, tt.theme)
		}
	}
	out := RenderPresets(presets)
	for _, name := range report.Names() {
		if !strings.Contains(out, "| "+name+" |") {
			t.Errorf("RenderPresets() does not list %s", name)
		}
	}
}

func TestNewGenerated(t *testing.T) {
	g := NewGenerated([]report.Result{{Variant: "v1", Path: "v1.pdf", Stats: table.Stats{Pages: 3, Rows: 70}}})
	want := Generated{Preset: "v1", Path: "v1.pdf", Pages: 3, Rows: 70}
	if len(g) != 1 || g[0] != want {
		t.Errorf("NewGenerated() = %+v, want [%+v]", g, want)
	}
}
