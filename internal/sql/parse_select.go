package sql

import "strings"

// parseSelect parses:
//
//	SELECT * FROM users
//	SELECT id, name FROM users WHERE name = 'Alice Smith'
func parseSelect(tokens []string) (Statement, error) {
	idxFrom := indexToken(tokens, "FROM", 1)
	if idxFrom == -1 {
		return nil, Errorf(KindSyntax, "SELECT: missing FROM")
	}
	if idxFrom == 1 {
		return nil, Errorf(KindSyntax, "SELECT: missing column list")
	}
	if idxFrom+1 >= len(tokens) {
		return nil, Errorf(KindSyntax, "SELECT: missing table name after FROM")
	}

	// "name, age" arrives as the tokens "name," and "age".
	projection := strings.Join(tokens[1:idxFrom], " ")

	var columns []string
	if strings.TrimSpace(projection) != "*" {
		columns = splitCommaSeparated(projection)
		if len(columns) == 0 {
			return nil, Errorf(KindSyntax, "SELECT: empty column list")
		}
	}

	where, err := parseTrailingWhere("SELECT", tokens[idxFrom+2:])
	if err != nil {
		return nil, err
	}

	return &SelectStmt{
		TableName: tokens[idxFrom+1],
		Columns:   columns,
		Where:     where,
	}, nil
}
