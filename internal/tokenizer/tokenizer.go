package tokenizer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

const quote = '"'

// Tokenization errors.
var (
	// ErrUnexpectedChar indicates a character outside a cell that is neither
	// whitespace nor a quote.
	ErrUnexpectedChar = errors.New("unexpected character outside quoted cell")

	// ErrUnterminatedCell indicates an opening quote with no closing quote.
	ErrUnterminatedCell = errors.New("unterminated quoted cell")
)

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	// Offset is the byte offset of the offending character, or of the
	// opening quote for an unterminated cell.
	Offset int
	Err    error
}

// Error returns the error message with the offset.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Tokenizer produces tokens from an in-memory input, one per Next call.
//
// Grammar:
//
//	Input   = { Space | Newline | Cell } ;
//	Newline = "\n" ;
//	Cell    = '"' { <any character except '"'> } '"' ;
//	Space   = <unicode whitespace except "\n"> ;
//
// A Tokenizer is single-use: once it returns an error it is exhausted.
type Tokenizer struct {
	input string
	pos   int
	done  bool
}

// NewTokenizer creates a tokenizer over input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Position returns the byte offset of the next character to be read.
func (t *Tokenizer) Position() int {
	return t.pos
}

// Next returns the next token. It returns io.EOF at the end of input.
//
// A malformed input is reported once as a *SyntaxError; every later call
// returns io.EOF.
func (t *Tokenizer) Next() (Token, error) {
	if t.done {
		return Token{}, io.EOF
	}

	tok, err := t.scan()
	if err != nil {
		t.done = true
	}
	return tok, err
}

// scan skips whitespace and reads one token.
func (t *Tokenizer) scan() (Token, error) {
	for t.pos < len(t.input) {
		start := t.pos
		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		t.pos += size

		switch {
		case r == '\n':
			return Token{Kind: KindNewline, Offset: start}, nil
		case r == quote:
			return t.scanCell(start)
		case r == utf8.RuneError && size == 1:
			// Invalid UTF-8 is never whitespace.
			return Token{}, &SyntaxError{Offset: start, Err: ErrUnexpectedChar}
		case unicode.IsSpace(r):
			continue
		default:
			return Token{}, &SyntaxError{Offset: start, Err: ErrUnexpectedChar}
		}
	}
	return Token{}, io.EOF
}

// scanCell reads the cell body after an opening quote at offset start.
// The quote is ASCII, so a byte search cannot split a multi-byte character.
func (t *Tokenizer) scanCell(start int) (Token, error) {
	n := strings.IndexByte(t.input[t.pos:], quote)
	if n < 0 {
		t.pos = len(t.input)
		return Token{}, &SyntaxError{Offset: start, Err: ErrUnterminatedCell}
	}

	value := t.input[t.pos : t.pos+n]
	t.pos += n + 1
	return Token{Kind: KindCell, Value: value, Offset: start}, nil
}

// All drains the tokenizer, returning the tokens read before the first error.
func (t *Tokenizer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}
