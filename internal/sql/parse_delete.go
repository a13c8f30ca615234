package sql

// parseDelete parses:
//
//	DELETE FROM tableName [WHERE column = literal]
//
// Without WHERE every row is removed.
func parseDelete(tokens []string) (Statement, error) {
	if len(tokens) < 3 {
		return nil, Errorf(KindSyntax, "DELETE: missing table name")
	}

	where, err := parseTrailingWhere("DELETE", tokens[3:])
	if err != nil {
		return nil, err
	}

	return &DeleteStmt{
		TableName: tokens[2],
		Where:     where,
	}, nil
}
