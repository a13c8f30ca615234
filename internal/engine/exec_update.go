package engine

import "memdb/internal/sql"

// executeUpdate checks the SET column and literal before any row is touched.
func (e *DBEngine) executeUpdate(stmt *sql.UpdateStmt) (*Result, error) {
	t, err := e.catalog.Table(stmt.TableName)
	if err != nil {
		return nil, wrap(StmtUpdate, err)
	}
	schema := t.Schema()

	col, ok := schema.Lookup(stmt.Set.Column)
	if !ok {
		return nil, wrap(StmtUpdate, sql.Errorf(sql.KindColumnNotFound,
			"unknown column %q in SET", stmt.Set.Column))
	}
	v, err := sql.Coerce(stmt.Set.Literal, col.Type)
	if err != nil {
		return nil, wrap(StmtUpdate, err)
	}

	cond, err := buildCondition(schema, stmt.Where)
	if err != nil {
		return nil, wrap(StmtUpdate, err)
	}

	n, err := t.Update(col.Name, v, cond)
	if err != nil {
		return nil, wrap(StmtUpdate, err)
	}

	return &Result{Kind: StmtUpdate, Table: t.Name(), Affected: n}, nil
}
