package entities

import (
	"fmt"
	"strings"
)

// Location points at the input record a value came from.
type Location struct {
	Source string
	Line   int
}

// String returns "file:line", "file" or "" depending on what is known.
func (l Location) String() string {
	switch {
	case l.Source == "":
		return ""
	case l.Line > 0:
		return fmt.Sprintf("%s:%d", l.Source, l.Line)
	default:
		return l.Source
	}
}

// Field is one key/value cell of an input record.
// Explicit is false for cells that were present but left blank in a CSV
// table; such cells do not take part in inheritance.
type Field struct {
	Key      string
	Value    string
	Items    []string
	IsList   bool
	Explicit bool
}

// RawRecord is an ordered option or profile record as read from a CSV row or
// a YAML mapping, before any validation.
type RawRecord struct {
	Location Location
	Fields   []Field
}

// Get returns the first field with the given key.
func (r RawRecord) Get(key string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Value returns the trimmed scalar value of key, or "" if absent.
func (r RawRecord) Value(key string) string {
	f, ok := r.Get(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(f.Value)
}

// Document is the merged content of every input file of a run.
type Document struct {
	// Generator is an optional semantic version constraint on togglegen itself.
	Generator string
	Options   []RawRecord
	Profiles  []RawRecord
	Sources   []string
}
