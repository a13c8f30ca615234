package engine

import (
	"errors"
	"memdb/internal/sql"
	"memdb/internal/storage/memstore"
	"testing"
)

func newTestEngine(t *testing.T, opts ...Option) *DBEngine {
	t.Helper()

	eng, err := New(memstore.New(), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(eng.Close)
	return eng
}

func mustExec(t *testing.T, eng *DBEngine, query string) *Result {
	t.Helper()

	res, err := eng.Execute(query)
	if err != nil {
		t.Fatalf("Execute %q failed: %v", query, err)
	}
	return res
}

// newStudentEngine runs the create and insert part of the student scenario.
func newStudentEngine(t *testing.T, opts ...Option) *DBEngine {
	t.Helper()

	eng := newTestEngine(t, opts...)
	mustExec(t, eng, "CREATE TABLE student (id int, name string, age int)")
	mustExec(t, eng, "INSERT INTO student (id, name, age) VALUES (1, 'Alice', 20)")
	mustExec(t, eng, "INSERT INTO student (id, name, age) VALUES (2, 'Bob', 21)")
	return eng
}

func checkRow(t *testing.T, row *sql.Row, id int64, name string, age int64) {
	t.Helper()

	if v, ok := row.Get("id"); !ok || v.Type != sql.TypeInt || v.I64 != id {
		t.Fatalf("id: expected %d, got %+v", id, v)
	}
	if v, ok := row.Get("name"); !ok || v.Type != sql.TypeString || v.S != name {
		t.Fatalf("name: expected %q, got %+v", name, v)
	}
	if v, ok := row.Get("age"); !ok || v.Type != sql.TypeInt || v.I64 != age {
		t.Fatalf("age: expected %d, got %+v", age, v)
	}
}

func TestEngineExecute_CreateTable(t *testing.T) {
	eng := newTestEngine(t)

	res := mustExec(t, eng, "CREATE TABLE student (id int, name string, age int)")
	if res.Kind != StmtCreateTable || res.Table != "student" || res.Affected != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	cols, err := eng.TableSchema("STUDENT")
	if err != nil {
		t.Fatalf("TableSchema failed: %v", err)
	}
	expected := []sql.Column{
		{Name: "id", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeString},
		{Name: "age", Type: sql.TypeInt},
	}
	if len(cols) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(cols))
	}
	for i, want := range expected {
		if cols[i] != want {
			t.Fatalf("column %d: expected %+v, got %+v", i, want, cols[i])
		}
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	if len(sel.Rows) != 0 {
		t.Fatalf("expected 0 rows, got %d", len(sel.Rows))
	}
}

func TestEngineExecute_CreateTableExists(t *testing.T) {
	eng := newTestEngine(t)
	mustExec(t, eng, "CREATE TABLE student (id int)")

	_, err := eng.Execute("create table STUDENT (x string)")
	if !errors.Is(err, sql.ErrTableExists) {
		t.Fatalf("expected table exists, got %v", err)
	}

	if _, err := eng.Execute("CREATE TABLE dup (id int, ID string)"); !errors.Is(err, sql.ErrSchema) {
		t.Fatalf("expected schema error for duplicate column, got %v", err)
	}
	if tables := eng.ListTables(); len(tables) != 1 || tables[0] != "student" {
		t.Fatalf("unexpected tables: %#v", tables)
	}
}

func TestEngineExecute_SelectAllInInsertionOrder(t *testing.T) {
	eng := newStudentEngine(t)

	res := mustExec(t, eng, "SELECT * FROM student")

	expectedCols := []string{"id", "name", "age"}
	if len(res.Columns) != len(expectedCols) {
		t.Fatalf("expected %d columns, got %d", len(expectedCols), len(res.Columns))
	}
	for i, want := range expectedCols {
		if res.Columns[i] != want {
			t.Fatalf("column %d: expected %q, got %q", i, want, res.Columns[i])
		}
	}

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	checkRow(t, res.Rows[0], 1, "Alice", 20)
	checkRow(t, res.Rows[1], 2, "Bob", 21)
}

func TestEngineExecute_SelectColumnListWithWhere(t *testing.T) {
	eng := newStudentEngine(t)

	res := mustExec(t, eng, "SELECT name, age FROM student WHERE id = 2")

	if len(res.Columns) != 2 || res.Columns[0] != "name" || res.Columns[1] != "age" {
		t.Fatalf("unexpected projected columns: %#v", res.Columns)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}

	row := res.Rows[0]
	if row.Len() != 2 || row.Has("id") {
		t.Fatalf("projection must hold only name and age, got %#v", row.Columns())
	}
	if v, _ := row.Get("name"); v.S != "Bob" {
		t.Fatalf("expected name Bob, got %+v", v)
	}
	if v, _ := row.Get("age"); v.I64 != 21 {
		t.Fatalf("expected age 21, got %+v", v)
	}

	data := res.Data()
	if len(data) != 1 || data[0][0] != "Bob" || data[0][1] != "21" {
		t.Fatalf("unexpected rendered data: %#v", data)
	}
}

func TestEngineExecute_CaseInsensitiveNames(t *testing.T) {
	eng := newStudentEngine(t)

	a := mustExec(t, eng, "SELECT * FROM Student")
	b := mustExec(t, eng, "select * from STUDENT")
	if len(a.Rows) != len(b.Rows) || a.Table != b.Table || a.Table != "student" {
		t.Fatalf("case variants differ: %+v vs %+v", a, b)
	}

	res := mustExec(t, eng, "SELECT NAME FROM student WHERE Name = 'Bob'")
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Columns[0] != "NAME" {
		t.Fatalf("expected requested column name to be kept, got %q", res.Columns[0])
	}
}

func TestEngineExecute_WhereRoundTrip(t *testing.T) {
	eng := newStudentEngine(t)
	mustExec(t, eng, "INSERT INTO student (id, name, age) VALUES (3, 'Alice Smith', 21)")
	mustExec(t, eng, "INSERT INTO student (age, id, name) VALUES (22, 4, 'Alice')")

	res := mustExec(t, eng, "SELECT * FROM student WHERE name = 'Alice'")
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows named Alice, got %d", len(res.Rows))
	}
	checkRow(t, res.Rows[0], 1, "Alice", 20)
	checkRow(t, res.Rows[1], 4, "Alice", 22)

	res = mustExec(t, eng, "SELECT id FROM student WHERE name = 'Alice Smith'")
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}

	res = mustExec(t, eng, "SELECT id FROM student WHERE age = 21")
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows with age 21, got %d", len(res.Rows))
	}
}

func TestEngineExecute_UpdateWithWhere(t *testing.T) {
	eng := newStudentEngine(t)

	res := mustExec(t, eng, "UPDATE student SET age = 23 WHERE name = 'Bob'")
	if res.Kind != StmtUpdate || res.Affected != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	sel := mustExec(t, eng, "SELECT * FROM student WHERE name = 'Bob'")
	if len(sel.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(sel.Rows))
	}
	checkRow(t, sel.Rows[0], 2, "Bob", 23)

	// Alice is untouched.
	sel = mustExec(t, eng, "SELECT * FROM student WHERE id = 1")
	checkRow(t, sel.Rows[0], 1, "Alice", 20)
}

func TestEngineExecute_UpdateWithoutWhere(t *testing.T) {
	eng := newStudentEngine(t)

	res := mustExec(t, eng, "update student set NAME = 'Anon'")
	if res.Affected != 2 {
		t.Fatalf("expected 2 rows updated, got %d", res.Affected)
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	checkRow(t, sel.Rows[0], 1, "Anon", 20)
	checkRow(t, sel.Rows[1], 2, "Anon", 21)
}

func TestEngineExecute_UpdateValidatesBeforeMutating(t *testing.T) {
	eng := newStudentEngine(t)

	tests := []struct {
		query string
		want  error
	}{
		{"UPDATE student SET grade = 1", sql.ErrColumnNotFound},
		{"UPDATE student SET age = 'old'", sql.ErrType},
		{"UPDATE student SET age = 30 WHERE grade = 1", sql.ErrColumnNotFound},
		{"UPDATE student SET age = 30 WHERE id = 'one'", sql.ErrType},
		{"UPDATE course SET age = 30", sql.ErrTableNotFound},
	}
	for _, tt := range tests {
		if _, err := eng.Execute(tt.query); !errors.Is(err, tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.query, tt.want, err)
		}
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	checkRow(t, sel.Rows[0], 1, "Alice", 20)
	checkRow(t, sel.Rows[1], 2, "Bob", 21)
}

func TestEngineExecute_DeleteWithWhere(t *testing.T) {
	eng := newStudentEngine(t)
	mustExec(t, eng, "INSERT INTO student (id, name, age) VALUES (3, 'Carol', 22)")

	res := mustExec(t, eng, "DELETE FROM student WHERE id = 1")
	if res.Kind != StmtDelete || res.Affected != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	if len(sel.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(sel.Rows))
	}
	checkRow(t, sel.Rows[0], 2, "Bob", 21)
	checkRow(t, sel.Rows[1], 3, "Carol", 22)
}

func TestEngineExecute_DeleteAllIsIdempotent(t *testing.T) {
	eng := newStudentEngine(t)

	for i := 0; i < 2; i++ {
		mustExec(t, eng, "DELETE FROM student")
		sel := mustExec(t, eng, "SELECT * FROM student")
		if len(sel.Rows) != 0 {
			t.Fatalf("pass %d: expected empty table, got %d rows", i+1, len(sel.Rows))
		}
	}

	// Schema survives.
	mustExec(t, eng, "INSERT INTO student (id, name, age) VALUES (9, 'Zed', 30)")
}

func TestEngineExecute_InsertMissingColumn(t *testing.T) {
	eng := newStudentEngine(t)

	_, err := eng.Execute("INSERT INTO student (id,name) VALUES (1,'Alice')")
	if !errors.Is(err, sql.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	if len(sel.Rows) != 2 {
		t.Fatalf("failed insert must not add rows, got %d", len(sel.Rows))
	}
}

func TestEngineExecute_InsertErrors(t *testing.T) {
	eng := newStudentEngine(t)

	tests := []struct {
		query string
		want  error
	}{
		{"INSERT INTO student (id, name, age) VALUES ('Carol', 'Carol', 22)", sql.ErrType},
		{"INSERT INTO student (id, name, grade) VALUES (3, 'Carol', 22)", sql.ErrColumnNotFound},
		{"INSERT INTO student (id, name, ID) VALUES (3, 'Carol', 3)", sql.ErrSchema},
		{"INSERT INTO student (id, name, age) VALUES (3, 'Carol')", sql.ErrArity},
		{"INSERT INTO course (id) VALUES (1)", sql.ErrTableNotFound},
		{"INSERT INTO student (id, name, age) (3, 'Carol', 22)", sql.ErrSyntax},
	}
	for _, tt := range tests {
		if _, err := eng.Execute(tt.query); !errors.Is(err, tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.query, tt.want, err)
		}
	}

	sel := mustExec(t, eng, "SELECT * FROM student")
	if len(sel.Rows) != 2 {
		t.Fatalf("failed inserts must not add rows, got %d", len(sel.Rows))
	}
}

func TestEngineExecute_SelectErrors(t *testing.T) {
	eng := newStudentEngine(t)

	tests := []struct {
		query string
		want  error
	}{
		{"SELECT grade FROM student", sql.ErrColumnNotFound},
		{"SELECT * FROM student WHERE grade = 1", sql.ErrColumnNotFound},
		{"SELECT * FROM student WHERE id = 'Bob'", sql.ErrType},
		{"SELECT * FROM student WHERE id > 1", sql.ErrUnsupportedOperator},
		{"SELECT * FROM course", sql.ErrTableNotFound},
		{"SELECT * student", sql.ErrSyntax},
		{"DROP TABLE student", sql.ErrUnsupportedStatement},
	}
	for _, tt := range tests {
		if _, err := eng.Execute(tt.query); !errors.Is(err, tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.query, tt.want, err)
		}
	}
}

func TestEngineExecute_ErrorsKeepStatementPrefix(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.Execute("DELETE FROM ghost")
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := err.Error(); got != "DELETE: table not found: table ghost does not exist" {
		t.Fatalf("unexpected message: %q", got)
	}
	if sql.KindOf(err) != sql.KindTableNotFound {
		t.Fatalf("unexpected kind: %v", sql.KindOf(err))
	}
}

func TestEngineStatementCache(t *testing.T) {
	eng := newStudentEngine(t)

	query := "SELECT * FROM student WHERE id = 1"
	mustExec(t, eng, query)
	eng.cache.wait()

	if _, ok := eng.cache.get(query); !ok {
		t.Fatalf("expected %q to be cached", query)
	}

	// A cached parse still sees the current table contents.
	mustExec(t, eng, "UPDATE student SET age = 40 WHERE id = 1")
	res := mustExec(t, eng, query)
	checkRow(t, res.Rows[0], 1, "Alice", 40)

	if eng.cache.hits() == 0 {
		t.Fatalf("expected cache hits")
	}
}

func TestEngineStatementCacheDisabled(t *testing.T) {
	eng := newStudentEngine(t, WithStatementCache(0))

	if eng.cache != nil {
		t.Fatalf("expected no cache")
	}
	res := mustExec(t, eng, "SELECT * FROM student")
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
}

func TestEngineNewRejectsNilCatalog(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}

func TestEngineIndependentCatalogs(t *testing.T) {
	a := newStudentEngine(t)
	b := newTestEngine(t)

	if _, err := b.Execute("SELECT * FROM student"); !errors.Is(err, sql.ErrTableNotFound) {
		t.Fatalf("engines must not share catalogs, got %v", err)
	}
	if len(a.ListTables()) != 1 {
		t.Fatalf("expected one table in first engine")
	}
}
