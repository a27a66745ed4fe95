package pdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/portfolio-pdf"
	"github.com/etnz/portfolio-pdf/table"
)

func TestPageDimensions(t *testing.T) {
	tests := []struct {
		page  Page
		wantW float64
		wantH float64
	}{
		{Page{Size: "A4"}, 595.28, 841.89},
		{Page{Size: "A4", Orientation: Landscape}, 841.89, 595.28},
		{Page{Size: "a3", Orientation: Landscape, Margin: 30}, 1190.55, 841.89},
		{Page{Size: "Letter"}, 612, 792},
		{Page{Width: 600, Height: 2132, Orientation: Landscape}, 2132, 600},
		{Page{Width: 1200, Height: 595.28}, 1200, 595.28},
	}
	for _, tt := range tests {
		w, h, err := tt.page.Dimensions()
		if err != nil {
			t.Errorf("%v.Dimensions() error = %v", tt.page, err)
			continue
		}
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("%v.Dimensions() = %v, %v, want %v, %v", tt.page, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestPageDimensions_Errors(t *testing.T) {
	for _, p := range []Page{
		{Size: "B52"},
		{},
		{Width: -1, Height: 10},
		{Size: "A4", Margin: 400},
	} {
		if _, _, err := p.Dimensions(); err == nil {
			t.Errorf("%#v.Dimensions(): want error", p)
		}
	}
}

func TestPageWithWidth(t *testing.T) {
	p, err := Page{Size: "A4", Orientation: Landscape, Margin: 10}.WithWidth(1500)
	if err != nil {
		t.Fatalf("WithWidth() error = %v", err)
	}
	w, h, _ := p.Dimensions()
	if w != 1500 || h != 595.28 || p.Margin != 10 {
		t.Errorf("WithWidth() = %vx%v margin %v, want 1500x595.28 margin 10", w, h, p.Margin)
	}
	if u, _ := p.Usable(); u != 1480 {
		t.Errorf("Usable() = %v, want 1480", u)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"NABIL", "NABIL"},
		{"↳ alice", "\xbb alice"},
		{"12.50 €", "12.50 \x80"},
		{"…", "\x85"},
		{"日本", "??"},
	}
	for _, tt := range tests {
		if got := encode(tt.in); got != tt.want {
			t.Errorf("encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanvas_TextWidth(t *testing.T) {
	c, err := NewCanvas(Page{Size: "A4"})
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	c.SetFont(table.Regular, 10)
	regular := c.TextWidth("Symbol")
	c.SetFont(table.Bold, 10)
	bold := c.TextWidth("Symbol")
	if regular <= 0 || bold <= regular {
		t.Errorf("TextWidth() regular = %v, bold = %v, want 0 < regular < bold", regular, bold)
	}
	c.SetFont(table.Regular, 20)
	if got := c.TextWidth("Symbol"); got <= regular {
		t.Errorf("TextWidth() at size 20 = %v, want more than %v", got, regular)
	}
}

func TestCanvas_WriteFile(t *testing.T) {
	page := Page{Size: "A4", Orientation: Landscape, Margin: 40}
	c, err := NewCanvas(page)
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	records := []*portfolio.Record{
		portfolio.NewRecord(map[string]any{"symbol": "NABIL", "ltp": "512.5"},
			portfolio.NewRecord(map[string]any{portfolio.NameKey: "alice"})),
	}
	r := &table.Renderer{
		Columns: []table.Column{table.C("symbol", "Symbol"), table.C("ltp", "LTP")},
		Options: table.DefaultOptions(),
		Policy:  table.ScaleToFit,
	}
	usable, _ := page.Usable()
	st, err := r.Render(context.Background(), c, records, r.Widths(c, records, usable))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if st.Pages != 1 || c.Pages() != 1 {
		t.Errorf("pages = %d (canvas %d), want 1", st.Pages, c.Pages())
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read %q: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("WriteFile() wrote %q..., want a PDF", data[:min(len(data), 8)])
	}
}

func TestCanvas_WriteFileError(t *testing.T) {
	c, err := NewCanvas(Page{Size: "A5"})
	if err != nil {
		t.Fatalf("NewCanvas() error = %v", err)
	}
	c.AddPage()
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")
	if err := c.WriteFile(path); err == nil {
		t.Errorf("WriteFile(%q): want error", path)
	}
}
