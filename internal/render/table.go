// Package render formats query results as aligned text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table collects a header and rows and writes them with padded columns:
//
//	+----+-------+-----+
//	| id | name  | age |
//	+----+-------+-----+
//	| 1  | Alice | 20  |
//	+----+-------+-----+
type Table struct {
	w       io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table writer.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// Header sets the column headers.
func (t *Table) Header(headers []string) {
	t.headers = headers
}

// Row adds a single row.
func (t *Table) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Bulk adds multiple rows.
func (t *Table) Bulk(rows [][]string) {
	t.rows = append(t.rows, rows...)
}

// Render writes the table. Nothing is written if there is neither a header
// nor a row.
func (t *Table) Render() error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}

	widths := t.widths()
	sep := separator(widths)

	var b strings.Builder
	b.WriteString(sep)
	if len(t.headers) > 0 {
		b.WriteString(formatRow(t.headers, widths))
		b.WriteString(sep)
	}
	for _, row := range t.rows {
		b.WriteString(formatRow(row, widths))
	}
	b.WriteString(sep)

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Table) widths() []int {
	n := len(t.headers)
	for _, row := range t.rows {
		if len(row) > n {
			n = len(row)
		}
	}

	widths := make([]int, n)
	measure := func(cells []string) {
		for i, c := range cells {
			if w := utf8.RuneCountInString(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}

	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

// formatRow left-aligns each cell in its column.
func formatRow(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		parts[i] = fmt.Sprintf(" %s%s ", cell, strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}
