package sql

import "strings"

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type DataType
}

// Key is the canonical lookup form of the column name.
func (c Column) Key() string {
	return strings.ToLower(c.Name)
}

// Schema is the fixed, ordered column list of a table.
// Lookups are case-insensitive; Name keeps the declared casing.
type Schema struct {
	cols  []Column
	index map[string]int // canonical key -> position
}

// NewSchema builds a schema from column definitions in declaration order.
func NewSchema(cols []Column) (*Schema, error) {
	if len(cols) == 0 {
		return nil, Errorf(KindSyntax, "table needs at least one column")
	}

	s := &Schema{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return nil, Errorf(KindSyntax, "column %d has no name", i+1)
		}
		if prev, dup := s.index[c.Key()]; dup {
			return nil, Errorf(KindSchema, "duplicate column %q (already declared as %q)", c.Name, s.cols[prev].Name)
		}
		s.cols[i] = c
		s.index[c.Key()] = i
	}
	return s, nil
}

// Lookup finds a column by name, ignoring case.
func (s *Schema) Lookup(name string) (Column, bool) {
	i, ok := s.index[strings.ToLower(name)]
	if !ok {
		return Column{}, false
	}
	return s.cols[i], true
}

// Columns returns a copy of the column list.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.cols))
	copy(out, s.cols)
	return out
}

// Names returns the declared column names in order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.cols))
	for i, c := range s.cols {
		out[i] = c.Name
	}
	return out
}

func (s *Schema) Len() int {
	return len(s.cols)
}

// Validate checks that row binds every declared column to a value of the
// declared type and nothing else.
func (s *Schema) Validate(row *Row) error {
	for _, c := range s.cols {
		v, ok := row.Get(c.Name)
		if !ok {
			return Errorf(KindSchema, "no value provided for column %q", c.Name)
		}
		if v.Type != c.Type {
			return Errorf(KindType, "column %q expects %s, got %s", c.Name, c.Type, v.Type)
		}
	}
	for _, name := range row.Columns() {
		if _, ok := s.Lookup(name); !ok {
			return Errorf(KindSchema, "unknown column %q", name)
		}
	}
	return nil
}
