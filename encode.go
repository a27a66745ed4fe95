package portfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeOptions controls how a JSON document is turned into records.
type DecodeOptions struct {
	// Path is an optional JSONPath expression selecting the array of
	// holdings in a larger document, like "$.data.holdings".
	Path string
	// ChildrenKey names the field holding the nested records.
	// ChildrenKey is used when empty.
	ChildrenKey string
}

func (o DecodeOptions) childrenKey() string {
	if o.ChildrenKey == "" {
		return ChildrenKey
	}
	return o.ChildrenKey
}

// DecodeRecords decodes a JSON array of holdings.
//
// Numbers are kept as json.Number so that their text survives until display.
// A children field that is not an array is ignored.
func DecodeRecords(r io.Reader, opts DecodeOptions) ([]*Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if opts.Path != "" {
		jval, err := jsonpath.Get(opts.Path, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot select %q: %w", opts.Path, err)
		}
		// wildcard queries wrap their answer in a list, keep the inner one.
		if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
			if inner, ok := jlist[0].([]any); ok {
				jval = inner
			}
		}
		doc = jval
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of holdings, got %s", kindOf(doc))
	}
	return decodeList(items, opts.childrenKey(), "$")
}

func decodeList(items []any, childrenKey, at string) ([]*Record, error) {
	records := make([]*Record, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected an object, got %s", at, i, kindOf(item))
		}
		rec := &Record{Fields: make(map[string]any, len(obj))}
		for k, v := range obj {
			if k == childrenKey {
				continue
			}
			rec.Fields[k] = v
		}
		if children, ok := obj[childrenKey].([]any); ok {
			var err error
			rec.Children, err = decodeList(children, childrenKey, fmt.Sprintf("%s[%d].%s", at, i, childrenKey))
			if err != nil {
				return nil, err
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// kindOf names the JSON kind of a decoded value for error messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
