package main

import "fmt"

const demoScript = `
CREATE TABLE student (id int, name string, age int);
INSERT INTO student (id, name, age) VALUES (1, 'Alice', 20);
INSERT INTO student (id, name, age) VALUES (2, 'Bob', 21);
SELECT * FROM student;
SELECT name, age FROM student WHERE id = 2;
UPDATE student SET age = 22 WHERE name = 'Bob';
SELECT * FROM student WHERE name = 'Bob';
DELETE FROM student WHERE id = 1;
SELECT * FROM student;
DELETE FROM student;
SELECT * FROM student;
INSERT INTO student (id, name) VALUES (3, 'Carol');
`

// runDemo walks through every statement kind, echoing each one first. It
// ends by emptying the table and then an INSERT that omits a column and is
// rejected.
func (cli *CLI) runDemo() {
	stmts, _ := splitStatements(demoScript)
	for _, s := range stmts {
		fmt.Fprintf(cli.out, "memdb> %s;\n", s)
		cli.exec(s)
		fmt.Fprintln(cli.out)
	}
}

