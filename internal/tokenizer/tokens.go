// Package tokenizer splits quoted-cell text into cell and newline tokens.
package tokenizer

import "fmt"

// Kind identifies the type of a Token.
//
// The tokenizer emits only two kinds. Whitespace outside quotes and the quote
// characters themselves never produce a token.
type Kind int

const (
	// KindCell is the text between a pair of double quotes.
	KindCell Kind = iota
	// KindNewline is a line terminator (\n).
	KindNewline
)

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "Cell"
	case KindNewline:
		return "Newline"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Token is a single lexical unit of the input.
type Token struct {
	Kind Kind
	// Value is the cell text, a substring of the input. Empty for newlines.
	Value string
	// Offset is the byte offset of the token's first character
	// (the opening quote for cells).
	Offset int
}

// Cell returns a cell token with a zero offset.
func Cell(value string) Token {
	return Token{Kind: KindCell, Value: value}
}

// Newline returns a newline token.
func Newline() Token {
	return Token{Kind: KindNewline}
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Kind == KindCell {
		return fmt.Sprintf("Cell(%q)", t.Value)
	}
	return t.Kind.String()
}
