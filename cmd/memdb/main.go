// Command memdb is an interactive shell over an in-memory table store.
//
//	memdb               start the REPL
//	memdb -file x.sql   run the statements in x.sql and exit
//	memdb -demo         run the built-in demonstration script
//	memdb -format json  print one JSON object per result
package main

import (
	"flag"
	"log"
	"os"

	"memdb/internal/engine"
	"memdb/internal/storage/memstore"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	sqlFile := flag.String("file", "", "SQL file to execute (non-interactive)")
	demo := flag.Bool("demo", false, "run the demonstration script and exit")
	cacheSize := flag.Int("cache", engine.DefaultCacheSize, "number of parsed statements to cache (0 disables)")
	quiet := flag.Bool("quiet", false, "do not print the banner")
	formatName := flag.String("format", string(formatTable), "result output format: table or json")
	flag.Parse()

	logger := log.New(os.Stderr, "memdb: ", 0)

	format, err := parseFormat(*formatName)
	if err != nil {
		logger.Fatal(err)
	}

	eng, err := engine.New(memstore.New(), engine.WithStatementCache(*cacheSize))
	if err != nil {
		logger.Fatalf("start engine: %v", err)
	}
	defer eng.Close()

	cli := newCLI(eng, os.Stdout, logger)
	cli.format = format

	switch {
	case *demo:
		cli.runDemo()
	case *sqlFile != "":
		f, err := os.Open(*sqlFile)
		if err != nil {
			logger.Fatalf("open %s: %v", *sqlFile, err)
		}
		failed, err := cli.runScript(f)
		f.Close()
		if err != nil {
			logger.Fatalf("read %s: %v", *sqlFile, err)
		}
		if failed > 0 {
			logger.Printf("%d statement(s) failed", failed)
			eng.Close()
			os.Exit(1)
		}
	default:
		if !*quiet {
			cli.printBanner()
		}
		cli.run(os.Stdin)
	}
}
