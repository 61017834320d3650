// Command qtable reads quoted cells from standard input and prints them as a
// column-aligned table.
//
// Usage:
//
//	qtable [-width codepoint|display] [-show-single-row] [-o markdown|csv] < input
//
// Malformed input is reported as "parse error at <offset>" on standard
// error with exit status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/shapestone/shape-table/pkg/table"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("qtable: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		var perr *table.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(os.Stderr, "parse error at %d\n", perr.Offset)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("qtable", flag.ContinueOnError)
	width := fs.String("width", "codepoint", "Cell width measure: codepoint or display")
	showSingleRow := fs.Bool("show-single-row", false, "Print the body row of a table with exactly one body row")
	output := fs.String("o", "markdown", "Output format: markdown or csv")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	mode, err := table.ParseWidthMode(*width)
	if err != nil {
		return err
	}
	opts := table.Options{Width: mode, ShowSingleRow: *showSingleRow}

	// The whole input is needed before any column width is known.
	data, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tbl, err := table.Build(string(data), opts)
	if err != nil {
		return err
	}

	switch *output {
	case "markdown":
		_, err = tbl.WriteTo(stdout)
	case "csv":
		_, err = stdout.Write(tbl.RenderCSV())
	default:
		return fmt.Errorf("unknown output format %q (want markdown or csv)", *output)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
