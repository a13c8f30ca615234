package engine

import "memdb/internal/sql"

func (e *DBEngine) executeSelect(stmt *sql.SelectStmt) (*Result, error) {
	t, err := e.catalog.Table(stmt.TableName)
	if err != nil {
		return nil, wrap(StmtSelect, err)
	}
	schema := t.Schema()

	proj, err := resolveProjection(schema, stmt.Columns)
	if err != nil {
		return nil, wrap(StmtSelect, err)
	}

	cond, err := buildCondition(schema, stmt.Where)
	if err != nil {
		return nil, wrap(StmtSelect, err)
	}

	rows := projectRows(t.Scan(cond), proj)

	return &Result{
		Kind:     StmtSelect,
		Table:    t.Name(),
		Columns:  projectionNames(proj),
		Rows:     rows,
		Affected: len(rows),
	}, nil
}
