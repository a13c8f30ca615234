package engine

import "memdb/internal/sql"

// StatementKind identifies which statement produced a Result.
type StatementKind int

const (
	StmtCreateTable StatementKind = iota + 1
	StmtInsert
	StmtSelect
	StmtUpdate
	StmtDelete
)

func (k StatementKind) String() string {
	switch k {
	case StmtCreateTable:
		return "CREATE TABLE"
	case StmtInsert:
		return "INSERT"
	case StmtSelect:
		return "SELECT"
	case StmtUpdate:
		return "UPDATE"
	case StmtDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of one statement.
//
// For SELECT, Columns and Rows carry the projection in table order and
// Affected is the row count. For the other statements Affected counts the
// rows created, changed or removed (zero for CREATE TABLE).
type Result struct {
	Kind     StatementKind
	Table    string
	Columns  []string
	Rows     []*sql.Row
	Affected int
}

// Data renders Rows as text, one slice per row in Columns order.
func (r *Result) Data() [][]string {
	out := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		line := make([]string, len(r.Columns))
		for i, name := range r.Columns {
			if v, ok := row.Get(name); ok {
				line[i] = v.String()
			}
		}
		out = append(out, line)
	}
	return out
}
