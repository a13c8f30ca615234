package sql

import (
	"fmt"
	"strings"
)

// parseCreateTable parses:
//
//	CREATE TABLE name (col type, col type, ...)
func parseCreateTable(query string, tokens []string) (Statement, error) {
	if len(tokens) < 3 {
		return nil, Errorf(KindSyntax, "CREATE TABLE: missing table name")
	}

	// "student(id" when the column list is glued to the name.
	tableName := cutTableName(tokens[2])
	if tableName == "" {
		return nil, Errorf(KindSyntax, "CREATE TABLE: missing table name")
	}

	colsPart, err := extractBracketed(query, "(", ")")
	if err != nil {
		return nil, fmt.Errorf("CREATE TABLE: column list: %w", err)
	}
	if tail := afterBracketed(query, "(", ")"); strings.TrimSpace(tail) != "" {
		return nil, Errorf(KindSyntax, "CREATE TABLE: unexpected %q after column list", strings.TrimSpace(tail))
	}

	colDefs := splitCommaSeparated(colsPart)
	if len(colDefs) == 0 {
		return nil, Errorf(KindSyntax, "CREATE TABLE: no column definitions")
	}

	columns := make([]Column, 0, len(colDefs))
	for _, def := range colDefs {
		parts := Tokenize(def)
		if len(parts) != 2 {
			return nil, Errorf(KindSyntax, "CREATE TABLE: invalid column definition %q (want <name> <type>)", def)
		}

		dt, ok := parseDataType(parts[1])
		if !ok {
			return nil, Errorf(KindType, "CREATE TABLE: unknown column type %q in %q", parts[1], def)
		}

		columns = append(columns, Column{
			Name: parts[0],
			Type: dt,
		})
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}
