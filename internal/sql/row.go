package sql

import "strings"

// Row represents one record: column names bound to values.
// Names are matched case-insensitively; the casing supplied first is kept.
// A Row is not tied to any table until a Schema validates it.
type Row struct {
	names []string         // supplied casing, insertion order
	vals  map[string]Value // canonical key -> value
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{vals: make(map[string]Value)}
}

// Set binds name to v. An existing binding under a case-insensitively equal
// name is overwritten in place.
func (r *Row) Set(name string, v Value) {
	key := strings.ToLower(name)
	if _, ok := r.vals[key]; !ok {
		r.names = append(r.names, name)
	}
	r.vals[key] = v
}

func (r *Row) Get(name string) (Value, bool) {
	v, ok := r.vals[strings.ToLower(name)]
	return v, ok
}

func (r *Row) Has(name string) bool {
	_, ok := r.vals[strings.ToLower(name)]
	return ok
}

// Columns returns the bound names in insertion order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Values returns the values in the same order as Columns.
func (r *Row) Values() []Value {
	out := make([]Value, len(r.names))
	for i, name := range r.names {
		out[i] = r.vals[strings.ToLower(name)]
	}
	return out
}

func (r *Row) Len() int {
	return len(r.names)
}

// Clone returns an independent copy of the row.
func (r *Row) Clone() *Row {
	c := &Row{
		names: make([]string, len(r.names)),
		vals:  make(map[string]Value, len(r.vals)),
	}
	copy(c.names, r.names)
	for k, v := range r.vals {
		c.vals[k] = v
	}
	return c
}
