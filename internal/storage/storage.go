package storage

import "memdb/internal/sql"

// Condition is the single-equality WHERE predicate: a row matches when its
// value for Column equals Value. A nil *Condition matches every row.
type Condition struct {
	Column string
	Value  sql.Value
}

// Matches reports whether row satisfies the condition.
func (c *Condition) Matches(row *sql.Row) bool {
	if c == nil {
		return true
	}
	v, ok := row.Get(c.Column)
	if !ok {
		return false
	}
	return v.Equal(c.Value)
}

// Table owns a schema and an ordered sequence of rows.
//
// Every stored row binds each declared column to a value of the declared
// type. Insert enforces this; Update re-checks only the column it sets.
type Table interface {
	// Name returns the table name as declared.
	Name() string

	Schema() *sql.Schema

	// Insert validates row against the schema and appends a copy of it.
	Insert(row *sql.Row) error

	// Scan returns copies of the matching rows in insertion order.
	Scan(cond *Condition) []*sql.Row

	// Update overwrites column with v in every matching row and returns the
	// number of rows changed. Nothing is modified if column or v is invalid.
	Update(column string, v sql.Value, cond *Condition) (int, error)

	// Delete removes every matching row, keeping the order of the rest, and
	// returns the number removed.
	Delete(cond *Condition) int

	Len() int
}

// Catalog maps table names (case-insensitively) to tables.
//
// Different implementations are possible; memstore keeps everything in
// process memory.
type Catalog interface {
	// CreateTable registers a new empty table. The name must not collide,
	// ignoring case, with an existing table.
	CreateTable(name string, schema *sql.Schema) (Table, error)

	// Table looks a table up by name, ignoring case.
	Table(name string) (Table, error)

	// ListTables returns the declared table names in sorted order.
	ListTables() []string
}
