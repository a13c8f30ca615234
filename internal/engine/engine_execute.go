package engine

import (
	"fmt"
	"memdb/internal/sql"
)

// Execute parses and runs a single statement.
// Each call either applies fully or leaves the catalog unchanged.
func (e *DBEngine) Execute(query string) (*Result, error) {
	stmt, err := e.parse(query)
	if err != nil {
		return nil, err
	}
	return e.ExecuteStmt(stmt)
}

func (e *DBEngine) parse(query string) (sql.Statement, error) {
	if stmt, ok := e.cache.get(query); ok {
		return stmt, nil
	}

	stmt, err := sql.Parse(query)
	if err != nil {
		return nil, err
	}
	e.cache.put(query, stmt)
	return stmt, nil
}

// ExecuteStmt runs an already parsed statement.
func (e *DBEngine) ExecuteStmt(stmt sql.Statement) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreateTable(s)
	case *sql.InsertStmt:
		return e.executeInsert(s)
	case *sql.SelectStmt:
		return e.executeSelect(s)
	case *sql.UpdateStmt:
		return e.executeUpdate(s)
	case *sql.DeleteStmt:
		return e.executeDelete(s)
	default:
		return nil, sql.Errorf(sql.KindUnsupportedStatement, "unsupported statement type %T", stmt)
	}
}

// wrap prefixes err with the statement keyword, keeping its kind.
func wrap(kind StatementKind, err error) error {
	return fmt.Errorf("%s: %w", kind, err)
}
