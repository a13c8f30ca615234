package sql

// Statement is the common interface for all SQL statements.
// Literals stay as raw text; they are coerced once the target table's schema
// is known.
type Statement interface {
	stmtNode()
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []Column
}

// InsertStmt represents INSERT INTO t (cols...) VALUES (lits...).
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    []string
}

// SelectStmt represents SELECT cols FROM t [WHERE ...].
// A nil Columns slice means SELECT *.
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     *WhereExpr
}

// UpdateStmt represents UPDATE t SET col = lit [WHERE ...].
type UpdateStmt struct {
	TableName string
	Set       Assignment
	Where     *WhereExpr
}

// DeleteStmt represents DELETE FROM t [WHERE ...].
type DeleteStmt struct {
	TableName string
	Where     *WhereExpr
}

// WhereExpr is the single "column = literal" predicate.
type WhereExpr struct {
	Column  string
	Op      string
	Literal string
}

// Assignment is the "column = literal" of a SET clause.
type Assignment struct {
	Column  string
	Literal string
}

func (*CreateTableStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
