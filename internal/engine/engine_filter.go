package engine

import (
	"memdb/internal/sql"
	"memdb/internal/storage"
)

// buildCondition resolves a WHERE clause against schema. The literal is
// coerced with the column's declared type, so a literal that cannot be that
// type fails instead of silently matching nothing.
func buildCondition(schema *sql.Schema, where *sql.WhereExpr) (*storage.Condition, error) {
	if where == nil {
		return nil, nil
	}

	col, ok := schema.Lookup(where.Column)
	if !ok {
		return nil, sql.Errorf(sql.KindColumnNotFound, "unknown column %q in WHERE", where.Column)
	}

	v, err := sql.Coerce(where.Literal, col.Type)
	if err != nil {
		return nil, err
	}

	return &storage.Condition{Column: col.Name, Value: v}, nil
}

// projection pairs the name a caller asked for with the declared column.
type projection struct {
	as  string
	col sql.Column
}

// resolveProjection maps a SELECT list to declared columns. A nil list
// means every column under its declared name.
func resolveProjection(schema *sql.Schema, requested []string) ([]projection, error) {
	if requested == nil {
		cols := schema.Columns()
		out := make([]projection, len(cols))
		for i, c := range cols {
			out[i] = projection{as: c.Name, col: c}
		}
		return out, nil
	}

	out := make([]projection, len(requested))
	for i, name := range requested {
		col, ok := schema.Lookup(name)
		if !ok {
			return nil, sql.Errorf(sql.KindColumnNotFound, "unknown column %q in SELECT list", name)
		}
		out[i] = projection{as: name, col: col}
	}
	return out, nil
}

// projectRows returns only the requested columns (in that order).
func projectRows(rows []*sql.Row, proj []projection) []*sql.Row {
	out := make([]*sql.Row, 0, len(rows))
	for _, r := range rows {
		p := sql.NewRow()
		for _, pc := range proj {
			v, _ := r.Get(pc.col.Name)
			p.Set(pc.as, v)
		}
		out = append(out, p)
	}
	return out
}

func projectionNames(proj []projection) []string {
	names := make([]string, len(proj))
	for i, pc := range proj {
		names[i] = pc.as
	}
	return names
}
