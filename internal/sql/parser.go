package sql

import "strings"

// Parse parses a single SQL statement string into an AST Statement.
// Keywords are matched case-insensitively; a trailing ';' is optional.
func Parse(query string) (Statement, error) {
	q := trimStatement(query)
	if q == "" {
		return nil, Errorf(KindSyntax, "empty statement")
	}

	tokens := Tokenize(q)

	switch {
	case leadingKeywords(tokens, "CREATE", "TABLE"):
		return parseCreateTable(q, tokens)
	case leadingKeywords(tokens, "INSERT", "INTO"):
		return parseInsert(q)
	case leadingKeywords(tokens, "SELECT"):
		return parseSelect(tokens)
	case leadingKeywords(tokens, "UPDATE"):
		return parseUpdate(tokens)
	case leadingKeywords(tokens, "DELETE", "FROM"):
		return parseDelete(tokens)
	default:
		return nil, Errorf(KindUnsupportedStatement,
			"%q (supported: CREATE TABLE, INSERT INTO, SELECT, UPDATE, DELETE FROM)", tokens[0])
	}
}

func leadingKeywords(tokens []string, keywords ...string) bool {
	if len(tokens) < len(keywords) {
		return false
	}
	for i, kw := range keywords {
		if !strings.EqualFold(tokens[i], kw) {
			return false
		}
	}
	return true
}

// parseWhereClause parses the tokens after WHERE: exactly column, '=', literal.
func parseWhereClause(toks []string) (*WhereExpr, error) {
	if len(toks) != 3 {
		return nil, Errorf(KindSyntax, "WHERE: expected <column> = <literal>, got %d tokens", len(toks))
	}
	if toks[1] != "=" {
		return nil, Errorf(KindUnsupportedOperator, "WHERE: only '=' is supported, got %q", toks[1])
	}
	return &WhereExpr{
		Column:  toks[0],
		Op:      "=",
		Literal: toks[2],
	}, nil
}

// parseTrailingWhere handles whatever follows a table name: nothing, or a WHERE clause.
func parseTrailingWhere(stmt string, rest []string) (*WhereExpr, error) {
	if len(rest) == 0 {
		return nil, nil
	}
	if !strings.EqualFold(rest[0], "WHERE") {
		return nil, Errorf(KindSyntax, "%s: unexpected %q after table name", stmt, rest[0])
	}
	return parseWhereClause(rest[1:])
}
