package main

import (
	"fmt"

	"memdb/internal/engine"
	"memdb/internal/sql"

	"github.com/goccy/go-json"
)

type outputFormat string

const (
	formatTable outputFormat = "table"
	formatJSON  outputFormat = "json"
)

func parseFormat(s string) (outputFormat, error) {
	switch outputFormat(s) {
	case formatTable, formatJSON:
		return outputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", s)
	}
}

// jsonResult is the one-line JSON form of a statement result.
type jsonResult struct {
	Statement string   `json:"statement"`
	Table     string   `json:"table"`
	Columns   []string `json:"columns,omitempty"`
	Rows      [][]any  `json:"rows,omitempty"`
	Affected  int      `json:"affected"`
}

func toJSONResult(res *engine.Result) jsonResult {
	out := jsonResult{
		Statement: res.Kind.String(),
		Table:     res.Table,
		Columns:   res.Columns,
		Affected:  res.Affected,
	}
	for _, row := range res.Rows {
		line := make([]any, len(res.Columns))
		for i, name := range res.Columns {
			v, _ := row.Get(name)
			line[i] = jsonValue(v)
		}
		out.Rows = append(out.Rows, line)
	}
	return out
}

// jsonValue keeps integers as JSON numbers.
func jsonValue(v sql.Value) any {
	if v.Type == sql.TypeInt {
		return v.I64
	}
	return v.S
}

func (cli *CLI) displayJSON(res *engine.Result) {
	b, err := json.Marshal(toJSONResult(res))
	if err != nil {
		cli.log.Printf("encode result: %v", err)
		return
	}
	fmt.Fprintf(cli.out, "%s\n", b)
}
