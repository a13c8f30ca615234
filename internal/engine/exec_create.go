package engine

import "memdb/internal/sql"

func (e *DBEngine) executeCreateTable(stmt *sql.CreateTableStmt) (*Result, error) {
	schema, err := sql.NewSchema(stmt.Columns)
	if err != nil {
		return nil, wrap(StmtCreateTable, err)
	}

	t, err := e.catalog.CreateTable(stmt.TableName, schema)
	if err != nil {
		return nil, wrap(StmtCreateTable, err)
	}

	return &Result{Kind: StmtCreateTable, Table: t.Name()}, nil
}
