package report

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1).Append("a", "hello").Append(`"quoted"`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","\"quoted\"":true}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("embed", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Embed(json.RawMessage(` {"c":3,"d":4} `))
		w.Embed([]byte(`{}`))
		w.EmbedFrom(struct {
			E int `json:"e"`
		}{5})
		w.Append("b", 2)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":1,"c":3,"d":4,"e":5,"b":2}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0)
		w.Optional("b", "")
		w.Optional("c", 0.0)
		w.Optional("d", nil)
		w.Optional("e", "pdf")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"a":0,"e":"pdf"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("errors stick", func(t *testing.T) {
		var w jsonObjectWriter
		w.Embed([]byte(`[1,2]`))
		w.Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("embedding an array: want error")
		}

		var w2 jsonObjectWriter
		w2.Append("ch", make(chan int))
		if _, err := w2.MarshalJSON(); err == nil {
			t.Error("appending a channel: want error")
		}
	})
}
