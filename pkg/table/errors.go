package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-table/internal/tokenizer"
)

// Parsing errors. Match with errors.Is.
var (
	// ErrUnexpectedChar indicates a character outside a cell that is neither
	// whitespace nor a quote.
	ErrUnexpectedChar = tokenizer.ErrUnexpectedChar

	// ErrUnterminatedCell indicates an opening quote with no closing quote.
	ErrUnterminatedCell = tokenizer.ErrUnterminatedCell

	// ErrHeaderSet indicates SetHeader was called on a table that already
	// has a header or body rows.
	ErrHeaderSet = errors.New("header already set")
)

// ParseError reports malformed input with its position.
type ParseError struct {
	// Offset is the byte offset of the error in the input.
	Offset int
	// Line is the line of the error (1-indexed).
	Line int
	// Column is the column of the error in code points (1-indexed).
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d (line %d, column %d): %v", e.Offset, e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Position returns the error location as a shape AST position.
func (e *ParseError) Position() ast.Position {
	return ast.NewPosition(e.Offset, e.Line, e.Column)
}

// newParseError converts a tokenizer error into a ParseError, resolving the
// line and column from input. Other errors are returned unchanged.
func newParseError(input string, err error) error {
	var syntaxErr *tokenizer.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err
	}

	offset := min(syntaxErr.Offset, len(input))
	before := input[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1

	return &ParseError{
		Offset: syntaxErr.Offset,
		Line:   strings.Count(before, "\n") + 1,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
		Err:    syntaxErr.Err,
	}
}
