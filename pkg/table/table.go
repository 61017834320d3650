// Package table renders quoted-cell text as a column-aligned table.
//
// The input is a sequence of double-quoted cells separated by whitespace,
// one table row per line:
//
//	"name" "lang"
//	"shape" "Go"
//	"edwood" "Go"
//
// The first line is the header and fixes the column count. Each body row is
// normalized to that count: missing cells become empty and surplus cells
// are dropped. The output uses markdown-style borders:
//
//	| name   | lang |
//	|--------|------|
//	| shape  | Go   |
//	| edwood | Go   |
//
// # Pipeline
//
// Format runs three stages in a single pass over the input:
//
//   - a tokenizer turning text into cell and newline tokens
//   - a row splitter turning tokens into a header and normalized body rows
//   - a Table accumulating column widths and rendering the result
//
// Column widths are only known once every row has been read, so nothing is
// written until the whole input has been consumed.
//
// # Errors
//
// Malformed input (a character outside quotes that is not whitespace, or an
// unterminated cell) is reported as a *ParseError carrying the byte offset.
// No partial table is produced.
//
//	out, err := table.Format(input)
//	var perr *table.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Fprintf(os.Stderr, "parse error at %d\n", perr.Offset)
//	}
//
// # Thread Safety
//
// The Format functions are safe for concurrent use; each call builds its own
// pipeline. A Table must not be mutated concurrently.
package table

import (
	"io"

	"github.com/shapestone/shape-table/internal/rows"
	"github.com/shapestone/shape-table/internal/tokenizer"
)

// Format renders input as a table using default options.
//
// Example:
//
//	out, err := table.Format("\"a\" \"b\"\n\"1\" \"2\"\n\"3\" \"4\"\n")
//	// out:
//	// | a | b |
//	// |---|---|
//	// | 1 | 2 |
//	// | 3 | 4 |
func Format(input string) (string, error) {
	return FormatWithOptions(input, DefaultOptions())
}

// FormatWithOptions renders input as a table using custom options.
func FormatWithOptions(input string, opts Options) (string, error) {
	t, err := Build(input, opts)
	if err != nil {
		return "", err
	}
	return t.Render(), nil
}

// FormatReader reads all of r and renders it as a table.
func FormatReader(r io.Reader, opts Options) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return FormatWithOptions(string(data), opts)
}

// Build tokenizes input and accumulates it into a Table.
//
// The returned table's cells are substrings of input.
func Build(input string, opts Options) (*Table, error) {
	splitter := rows.New(tokenizer.NewTokenizer(input))
	head, tail := splitter.Split()

	t := NewWithOptions(opts)
	if err := t.SetHeader(head.All()); err != nil {
		return nil, err
	}
	head.Close()

	for {
		row, ok := tail.Row()
		if !ok {
			break
		}
		t.AppendRow(row)
	}

	if err := splitter.Err(); err != nil {
		return nil, newParseError(input, err)
	}
	return t, nil
}
