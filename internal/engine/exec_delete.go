package engine

import "memdb/internal/sql"

func (e *DBEngine) executeDelete(stmt *sql.DeleteStmt) (*Result, error) {
	t, err := e.catalog.Table(stmt.TableName)
	if err != nil {
		return nil, wrap(StmtDelete, err)
	}

	cond, err := buildCondition(t.Schema(), stmt.Where)
	if err != nil {
		return nil, wrap(StmtDelete, err)
	}

	n := t.Delete(cond)

	return &Result{Kind: StmtDelete, Table: t.Name(), Affected: n}, nil
}
