package sql

import (
	"fmt"
	"strings"
)

// parseInsert parses:
//
//	INSERT INTO name (col, col, ...) VALUES (lit, lit, ...)
//
// The statement is split at the first VALUES in the raw text so the two
// bracketed lists are read independently.
func parseInsert(query string) (Statement, error) {
	idxValues := indexFold(query, "VALUES")
	if idxValues == -1 {
		return nil, Errorf(KindSyntax, "INSERT: missing VALUES")
	}

	head := query[:idxValues]
	tail := query[idxValues+len("VALUES"):]

	headTokens := Tokenize(head)
	if len(headTokens) < 3 {
		return nil, Errorf(KindSyntax, "INSERT: missing table name")
	}
	tableName := cutTableName(headTokens[2])
	if tableName == "" {
		return nil, Errorf(KindSyntax, "INSERT: missing table name")
	}

	colsPart, err := extractBracketed(head, "(", ")")
	if err != nil {
		return nil, fmt.Errorf("INSERT: column list: %w", err)
	}
	valsPart, err := extractBracketed(tail, "(", ")")
	if err != nil {
		return nil, fmt.Errorf("INSERT: VALUES list: %w", err)
	}

	cols := splitCommaSeparated(colsPart)
	vals := splitCommaSeparated(valsPart)
	if len(cols) == 0 {
		return nil, Errorf(KindSyntax, "INSERT: empty column list")
	}
	if len(cols) != len(vals) {
		return nil, Errorf(KindArity, "INSERT: %d columns but %d values", len(cols), len(vals))
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   cols,
		Values:    vals,
	}, nil
}

// indexFold is strings.Index ignoring ASCII case.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
