package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"memdb/internal/engine"
	"memdb/internal/render"

	"github.com/dustin/go-humanize"
)

// CLI holds the shell state.
type CLI struct {
	engine *engine.DBEngine
	out    io.Writer
	log    *log.Logger
	format outputFormat
}

func newCLI(eng *engine.DBEngine, out io.Writer, logger *log.Logger) *CLI {
	return &CLI{
		engine: eng,
		out:    out,
		log:    logger,
		format: formatTable,
	}
}

func (cli *CLI) printBanner() {
	fmt.Fprintf(cli.out, "memdb %s (in-memory tables)\n", Version)
	fmt.Fprintln(cli.out, "Type .help for commands, .quit to exit")
	fmt.Fprintln(cli.out)
}

// run reads statements until EOF or .quit. A statement may span lines and
// ends with ';'. An unterminated statement left at EOF is still run.
func (cli *CLI) run(in io.Reader) {
	reader := bufio.NewReader(in)
	var buf strings.Builder

	for {
		if buf.Len() > 0 {
			fmt.Fprint(cli.out, "   ...> ")
		} else {
			fmt.Fprint(cli.out, "memdb> ")
		}

		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			fmt.Fprintln(cli.out)
			if rest := strings.TrimSpace(buf.String()); rest != "" {
				cli.exec(rest)
			}
			return
		}
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) == "" {
			continue
		}

		if buf.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ".") {
			if !cli.handleCommand(line) {
				return
			}
			continue
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		stmts, rest := splitStatements(buf.String())
		buf.Reset()
		if rest = strings.TrimSpace(rest); rest != "" {
			buf.WriteString(rest)
			buf.WriteString("\n")
		}

		for _, s := range stmts {
			cli.exec(s)
		}
	}
}

// runScript executes every ';'-separated statement in r, reporting failures
// and carrying on. Lines starting with "--" are ignored. It returns the
// number of statements that failed.
func (cli *CLI) runScript(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	stmts, rest := splitStatements(stripComments(string(data)))
	if strings.TrimSpace(rest) != "" {
		stmts = append(stmts, strings.TrimSpace(rest))
	}

	failed := 0
	for _, s := range stmts {
		if !cli.exec(s) {
			failed++
		}
	}
	return failed, nil
}

// exec runs one statement and prints its outcome. Errors are reported, not
// returned, so a session survives a bad statement.
func (cli *CLI) exec(stmt string) bool {
	res, err := cli.engine.Execute(stmt)
	if err != nil {
		cli.log.Printf("error: %v", err)
		return false
	}
	cli.display(res)
	return true
}

func (cli *CLI) display(res *engine.Result) {
	if cli.format == formatJSON {
		cli.displayJSON(res)
		return
	}

	switch res.Kind {
	case engine.StmtCreateTable:
		fmt.Fprintf(cli.out, "Table %s created.\n", res.Table)
	case engine.StmtInsert:
		fmt.Fprintf(cli.out, "%s inserted.\n", rowCount(res.Affected))
	case engine.StmtSelect:
		tbl := render.NewTable(cli.out)
		tbl.Header(res.Columns)
		tbl.Bulk(res.Data())
		if err := tbl.Render(); err != nil {
			cli.log.Printf("render: %v", err)
		}
		fmt.Fprintf(cli.out, "%s\n", rowCount(len(res.Rows)))
	case engine.StmtUpdate:
		fmt.Fprintf(cli.out, "Table %s updated (%s).\n", res.Table, rowCount(res.Affected))
	case engine.StmtDelete:
		fmt.Fprintf(cli.out, "Table %s deleted (%s).\n", res.Table, rowCount(res.Affected))
	}
}

func rowCount(n int) string {
	if n == 1 {
		return "1 row"
	}
	return humanize.Comma(int64(n)) + " rows"
}

// handleCommand runs a dot command. It returns false when the shell should exit.
func (cli *CLI) handleCommand(input string) bool {
	parts := strings.Fields(strings.TrimSpace(input))

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit", ".q":
		return false

	case ".help", ".h":
		cli.printHelp()

	case ".version":
		fmt.Fprintf(cli.out, "memdb %s\n", Version)

	case ".tables":
		names := cli.engine.ListTables()
		if len(names) == 0 {
			fmt.Fprintln(cli.out, "No tables")
		}
		for _, name := range names {
			fmt.Fprintln(cli.out, name)
		}

	case ".schema":
		if len(parts) < 2 {
			cli.log.Printf("usage: .schema <table>")
			break
		}
		cli.showSchema(parts[1])

	default:
		cli.log.Printf("unknown command: %s (type .help for commands)", parts[0])
	}

	return true
}

func (cli *CLI) showSchema(table string) {
	cols, err := cli.engine.TableSchema(table)
	if err != nil {
		cli.log.Printf("error: %v", err)
		return
	}

	tbl := render.NewTable(cli.out)
	tbl.Header([]string{"column", "type"})
	for _, c := range cols {
		tbl.Row([]string{c.Name, c.Type.String()})
	}
	if err := tbl.Render(); err != nil {
		cli.log.Printf("render: %v", err)
	}
}

func (cli *CLI) printHelp() {
	fmt.Fprintln(cli.out, "Commands:")
	fmt.Fprintln(cli.out, "  .help            Show this help message")
	fmt.Fprintln(cli.out, "  .tables          List tables")
	fmt.Fprintln(cli.out, "  .schema <table>  Show a table's columns")
	fmt.Fprintln(cli.out, "  .version         Show the version")
	fmt.Fprintln(cli.out, "  .quit            Exit")
	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Statements (end with ';'):")
	fmt.Fprintln(cli.out, "  CREATE TABLE <name> (<col> int|string, ...);")
	fmt.Fprintln(cli.out, "  INSERT INTO <name> (<col>, ...) VALUES (<lit>, ...);")
	fmt.Fprintln(cli.out, "  SELECT * | <col>, ... FROM <name> [WHERE <col> = <lit>];")
	fmt.Fprintln(cli.out, "  UPDATE <name> SET <col> = <lit> [WHERE <col> = <lit>];")
	fmt.Fprintln(cli.out, "  DELETE FROM <name> [WHERE <col> = <lit>];")
}

// splitStatements cuts text at every ';' outside single quotes. The text
// after the last ';' is returned as rest.
func splitStatements(text string) (stmts []string, rest string) {
	inQuote := false
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\'':
			inQuote = !inQuote
		case ';':
			if inQuote {
				continue
			}
			if s := strings.TrimSpace(text[start:i]); s != "" {
				stmts = append(stmts, s)
			}
			start = i + 1
		}
	}
	return stmts, text[start:]
}

func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
