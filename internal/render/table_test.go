package render

import (
	"bytes"
	"testing"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTable(&buf)
	tbl.Header([]string{"id", "name", "age"})
	tbl.Bulk([][]string{
		{"1", "Alice", "20"},
		{"2", "Bob", "21"},
	})
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "" +
		"+----+-------+-----+\n" +
		"| id | name  | age |\n" +
		"+----+-------+-----+\n" +
		"| 1  | Alice | 20  |\n" +
		"| 2  | Bob   | 21  |\n" +
		"+----+-------+-----+\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTableRenderHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTable(&buf)
	tbl.Header([]string{"id"})
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := "+----+\n| id |\n+----+\n+----+\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTable(&buf).Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTableRenderUnicodeWidth(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTable(&buf)
	tbl.Header([]string{"name"})
	tbl.Row([]string{"Zoë"})
	_ = tbl.Render()

	want := "+------+\n| name |\n+------+\n| Zoë  |\n+------+\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}
