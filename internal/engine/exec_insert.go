package engine

import "memdb/internal/sql"

// executeInsert coerces each literal with the type of the column it is
// bound to, then hands the complete row to the table.
func (e *DBEngine) executeInsert(stmt *sql.InsertStmt) (*Result, error) {
	t, err := e.catalog.Table(stmt.TableName)
	if err != nil {
		return nil, wrap(StmtInsert, err)
	}
	schema := t.Schema()

	row := sql.NewRow()
	for i, name := range stmt.Columns {
		col, ok := schema.Lookup(name)
		if !ok {
			return nil, wrap(StmtInsert, sql.Errorf(sql.KindColumnNotFound,
				"unknown column %q in table %s", name, t.Name()))
		}
		if row.Has(col.Name) {
			return nil, wrap(StmtInsert, sql.Errorf(sql.KindSchema,
				"duplicate column %q in column list", name))
		}

		v, err := sql.Coerce(stmt.Values[i], col.Type)
		if err != nil {
			return nil, wrap(StmtInsert, err)
		}
		row.Set(name, v)
	}

	if err := schema.Validate(row); err != nil {
		return nil, wrap(StmtInsert, err)
	}
	if err := t.Insert(row); err != nil {
		return nil, wrap(StmtInsert, err)
	}

	return &Result{Kind: StmtInsert, Table: t.Name(), Affected: 1}, nil
}
