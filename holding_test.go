package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecord_Walk(t *testing.T) {
	r := NewRecord(map[string]any{"symbol": "NABIL"},
		NewRecord(map[string]any{NameKey: "alice"}),
		NewRecord(map[string]any{NameKey: "bob"},
			NewRecord(map[string]any{NameKey: "carol"}),
		),
	)

	type visit struct {
		Depth int
		Name  string
	}
	var got []visit
	r.Walk(func(depth int, r *Record) {
		got = append(got, visit{depth, r.Name()})
	})
	want := []visit{{0, ""}, {1, "alice"}, {1, "bob"}, {2, "carol"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk() mismatch (-want +got):\n%s", diff)
	}
	if got := r.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestRecord_Accessors(t *testing.T) {
	r := NewRecord(map[string]any{
		"price":  json.Number("512.3"),
		NameKey:  json.Number("42"),
		"sector": "Banks",
	})
	if got, want := r.Text("price"), "512.30"; got != want {
		t.Errorf("Text(price) = %q, want %q", got, want)
	}
	if got, want := r.Text("missing"), ""; got != want {
		t.Errorf("Text(missing) = %q, want %q", got, want)
	}
	if got, want := r.Name(), "42"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if r.HasChildren() {
		t.Errorf("HasChildren() = true, want false")
	}

	var nilRecord *Record
	if got := nilRecord.Get("price"); got != nil {
		t.Errorf("nil.Get() = %v, want nil", got)
	}
}

func TestCountRows(t *testing.T) {
	records := []*Record{
		NewRecord(nil, NewRecord(nil), NewRecord(nil)),
		NewRecord(nil),
	}
	if got := CountRows(records); got != 4 {
		t.Errorf("CountRows() = %d, want 4", got)
	}
}
