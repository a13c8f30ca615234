package sql

// parseUpdate parses:
//
//	UPDATE tableName SET column = literal [WHERE column = literal]
func parseUpdate(tokens []string) (Statement, error) {
	if len(tokens) < 2 {
		return nil, Errorf(KindSyntax, "UPDATE: missing table name")
	}

	idxSet := indexToken(tokens, "SET", 1)
	switch {
	case idxSet == -1:
		return nil, Errorf(KindSyntax, "UPDATE: missing SET")
	case idxSet == 1:
		return nil, Errorf(KindSyntax, "UPDATE: missing table name")
	case idxSet > 2:
		return nil, Errorf(KindSyntax, "UPDATE: unexpected %q before SET", tokens[2])
	}

	end := indexToken(tokens, "WHERE", idxSet+1)
	if end == -1 {
		end = len(tokens)
	}

	assign := tokens[idxSet+1 : end]
	if len(assign) != 3 {
		return nil, Errorf(KindSyntax, "UPDATE: expected SET <column> = <literal>, got %d tokens", len(assign))
	}
	if assign[1] != "=" {
		return nil, Errorf(KindUnsupportedOperator, "UPDATE: only '=' is supported in SET, got %q", assign[1])
	}

	var where *WhereExpr
	if end < len(tokens) {
		w, err := parseWhereClause(tokens[end+1:])
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &UpdateStmt{
		TableName: tokens[1],
		Set: Assignment{
			Column:  assign[0],
			Literal: assign[2],
		},
		Where: where,
	}, nil
}
