package memstore

import (
	"memdb/internal/sql"
	"memdb/internal/storage"
	"sort"
	"strings"
	"sync"
)

type table struct {
	mu     *sync.RWMutex // shared with the owning memCatalog
	name   string
	schema *sql.Schema
	rows   []*sql.Row // stored rows, insertion order
}

type memCatalog struct {
	mu     sync.RWMutex
	tables map[string]*table // lowercase name -> table
}

// New creates a new in-memory catalog.
func New() storage.Catalog {
	return &memCatalog{
		tables: make(map[string]*table),
	}
}

// CreateTable registers an empty table under the lowercase form of name.
func (c *memCatalog) CreateTable(name string, schema *sql.Schema) (storage.Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if existing, exists := c.tables[key]; exists {
		return nil, sql.Errorf(sql.KindTableExists, "table %s already exists", existing.name)
	}

	t := &table{
		mu:     &c.mu,
		name:   name,
		schema: schema,
		rows:   make([]*sql.Row, 0),
	}
	c.tables[key] = t

	return t, nil
}

func (c *memCatalog) Table(name string) (storage.Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[strings.ToLower(name)]
	if !ok {
		return nil, sql.Errorf(sql.KindTableNotFound, "table %s does not exist", name)
	}
	return t, nil
}

func (c *memCatalog) ListTables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tables))
	for _, t := range c.tables {
		names = append(names, t.name)
	}
	sort.Strings(names)
	return names
}

func (t *table) Name() string { return t.name }

func (t *table) Schema() *sql.Schema { return t.schema }

func (t *table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Insert re-validates the row against the schema before appending, then
// stores a copy keyed by the declared column names.
func (t *table) Insert(row *sql.Row) error {
	if err := t.schema.Validate(row); err != nil {
		return err
	}

	stored := sql.NewRow()
	for _, col := range t.schema.Columns() {
		v, _ := row.Get(col.Name)
		stored.Set(col.Name, v)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = append(t.rows, stored)
	return nil
}

func (t *table) Scan(cond *storage.Condition) []*sql.Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	// Return copies so callers cannot mutate stored data.
	var out []*sql.Row
	for _, r := range t.rows {
		if cond.Matches(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Update builds the new rowset first and swaps it in, so a failure leaves
// the table untouched.
func (t *table) Update(column string, v sql.Value, cond *storage.Condition) (int, error) {
	col, ok := t.schema.Lookup(column)
	if !ok {
		return 0, sql.Errorf(sql.KindColumnNotFound, "column %q does not exist in table %s", column, t.name)
	}
	if v.Type != col.Type {
		return 0, sql.Errorf(sql.KindType, "column %q expects %s, got %s", col.Name, col.Type, v.Type)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	newRows := make([]*sql.Row, len(t.rows))
	affected := 0
	for i, r := range t.rows {
		if !cond.Matches(r) {
			newRows[i] = r
			continue
		}
		updated := r.Clone()
		updated.Set(col.Name, v)
		newRows[i] = updated
		affected++
	}

	t.rows = newRows
	return affected, nil
}

func (t *table) Delete(cond *storage.Condition) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cond == nil {
		n := len(t.rows)
		t.rows = make([]*sql.Row, 0)
		return n
	}

	out := make([]*sql.Row, 0, len(t.rows))
	for _, r := range t.rows {
		if cond.Matches(r) {
			continue
		}
		out = append(out, r)
	}

	deleted := len(t.rows) - len(out)
	t.rows = out
	return deleted
}
