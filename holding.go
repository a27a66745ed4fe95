package portfolio

import (
	"encoding/json"
	"fmt"
)

const (
	// ChildrenKey is the field of a holding listing its per-user transactions.
	ChildrenKey = "user_transactions"
	// NameKey is the field naming the user of a transaction record.
	NameKey = "user_name"
)

// Record is a flat set of named values plus an ordered list of child records.
//
// A holding is a top level Record, its per-user transactions are its
// children. Records are built once by the decoder and never modified.
type Record struct {
	Fields   map[string]any
	Children []*Record
}

// NewRecord returns a record with the given fields and children.
func NewRecord(fields map[string]any, children ...*Record) *Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return &Record{Fields: fields, Children: children}
}

// Get returns the raw value of a field, nil if absent.
func (r *Record) Get(key string) any {
	if r == nil {
		return nil
	}
	return r.Fields[key]
}

// Text returns the display text of a field.
func (r *Record) Text(key string) string { return FormatValue(r.Get(key)) }

// Name returns the user name of a transaction record, as written in the source.
func (r *Record) Name() string {
	switch v := r.Get(NameKey).(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// HasChildren reports whether the record has nested records.
func (r *Record) HasChildren() bool { return r != nil && len(r.Children) > 0 }

// Walk calls fn for r and all its descendants, depth first, parents before
// their children. The depth of r is 0.
func (r *Record) Walk(fn func(depth int, r *Record)) {
	r.walk(0, fn)
}

func (r *Record) walk(depth int, fn func(int, *Record)) {
	if r == nil {
		return
	}
	fn(depth, r)
	for _, c := range r.Children {
		c.walk(depth+1, fn)
	}
}

// Len returns the number of records in the tree rooted at r.
func (r *Record) Len() int {
	n := 0
	r.Walk(func(int, *Record) { n++ })
	return n
}

// CountRows returns the number of records in all the trees.
func CountRows(records []*Record) int {
	n := 0
	for _, r := range records {
		n += r.Len()
	}
	return n
}
