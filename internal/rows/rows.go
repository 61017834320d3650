// Package rows splits a token stream into a header row and fixed-width body rows.
//
// A Splitter owns a single forward cursor over the tokens. Split hands the
// cursor to a Header view first; once the header is drained and closed the
// Tail view claims it and produces body rows one at a time. Each body row is
// normalized to the header's column count:
//
//   - missing trailing cells are filled with ""
//   - cells beyond the column count are consumed and discarded
//
// Using the views out of order, or leaving a row undrained, is a programming
// error and panics.
package rows

import (
	"io"
	"iter"

	"github.com/shapestone/shape-table/internal/tokenizer"
)

// TokenSource is a forward-only token stream. Next returns io.EOF at the end;
// any other error ends the stream as well.
type TokenSource interface {
	Next() (tokenizer.Token, error)
}

// cursor is a single-token-lookahead reader over a TokenSource.
// The first source error is kept and treated as end of input.
type cursor struct {
	src     TokenSource
	peeked  tokenizer.Token
	hasPeek bool
	eof     bool
	err     error
	columns int
}

func (c *cursor) fill() {
	if c.hasPeek || c.eof {
		return
	}
	tok, err := c.src.Next()
	if err != nil {
		c.eof = true
		if err != io.EOF {
			c.err = err
		}
		return
	}
	c.peeked = tok
	c.hasPeek = true
}

// peek returns the next token without consuming it.
func (c *cursor) peek() (tokenizer.Token, bool) {
	c.fill()
	return c.peeked, c.hasPeek
}

// next consumes and returns the next token.
func (c *cursor) next() (tokenizer.Token, bool) {
	c.fill()
	if !c.hasPeek {
		return tokenizer.Token{}, false
	}
	c.hasPeek = false
	return c.peeked, true
}

// skipLine discards cells up to and including the next newline.
func (c *cursor) skipLine() {
	for {
		tok, ok := c.next()
		if !ok || tok.Kind == tokenizer.KindNewline {
			return
		}
	}
}

// drain discards every remaining token.
func (c *cursor) drain() {
	for {
		if _, ok := c.next(); !ok {
			return
		}
	}
}

// owner records which view currently holds the cursor.
type owner int

const (
	ownerSplitter owner = iota
	ownerHeader
	ownerTail
)

func (o owner) String() string {
	switch o {
	case ownerHeader:
		return "header"
	case ownerTail:
		return "tail"
	default:
		return "splitter"
	}
}

// Splitter partitions a token stream into a header and body rows.
type Splitter struct {
	cur   *cursor
	owner owner
	split bool
}

// New creates a Splitter reading from src.
func New(src TokenSource) *Splitter {
	return &Splitter{cur: &cursor{src: src}}
}

// Split returns the header and tail views. The header holds the cursor until
// it is closed. Split may be called only once.
func (s *Splitter) Split() (*Header, *Tail) {
	if s.split {
		panic("rows: Split called twice")
	}
	s.split = true
	return &Header{s: s, cur: s.transfer(ownerSplitter, ownerHeader)}, &Tail{s: s}
}

// Err returns the first error reported by the token source, if any.
func (s *Splitter) Err() error {
	return s.cur.err
}

// Columns returns the column count recorded by the header view.
func (s *Splitter) Columns() int {
	return s.cur.columns
}

// transfer moves the cursor from one owner to another, panicking if the
// current owner is not the expected one.
func (s *Splitter) transfer(from, to owner) *cursor {
	if s.owner != from {
		if to == ownerTail {
			panic("rows: header must be drained and closed before reading rows")
		}
		panic("rows: cursor is held by the " + s.owner.String() + ", not the " + from.String())
	}
	s.owner = to
	return s.cur
}

// Header yields the cells of the first line.
type Header struct {
	s    *Splitter
	cur  *cursor
	done bool
}

// Next returns the next header cell. It returns false at the first newline
// or at end of input, and on every call after that.
func (h *Header) Next() (string, bool) {
	if h.done || h.cur == nil {
		return "", false
	}
	tok, ok := h.cur.next()
	if !ok || tok.Kind == tokenizer.KindNewline {
		h.done = true
		return "", false
	}
	h.cur.columns++
	return tok.Value, true
}

// All returns the remaining header cells as a sequence.
func (h *Header) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			cell, ok := h.Next()
			if !ok || !yield(cell) {
				return
			}
		}
	}
}

// Close returns the cursor to the Splitter so the Tail can claim it.
// Closing a header that has not been drained panics.
func (h *Header) Close() {
	if h.cur == nil {
		return
	}
	if !h.done {
		panic("rows: header closed before it was drained")
	}
	h.s.transfer(ownerHeader, ownerSplitter)
	h.cur = nil
}

// Tail yields the body rows.
type Tail struct {
	s    *Splitter
	cur  *cursor
	last *Row
}

// Row returns the next body row, or false when no rows remain.
//
// The first call claims the cursor and panics if the header is still open.
// Calling Row while the previous row has undrained values panics.
func (t *Tail) Row() (*Row, bool) {
	if t.cur == nil {
		t.cur = t.s.transfer(ownerSplitter, ownerTail)
	}
	if t.last != nil {
		t.last.Close()
	}

	if t.cur.columns == 0 {
		// No columns means no rows; the rest is still read so that
		// malformed input further on is reported.
		t.cur.drain()
		return nil, false
	}
	if _, ok := t.cur.peek(); !ok {
		return nil, false
	}

	t.last = &Row{cur: t.cur, left: t.cur.columns}
	return t.last, true
}

// Row yields exactly one value per column.
type Row struct {
	cur  *cursor
	left int
	fill bool
}

// Len returns the number of values not yet read.
func (r *Row) Len() int {
	return r.left
}

// Next returns the next value of the row.
func (r *Row) Next() (string, bool) {
	if r.left == 0 {
		return "", false
	}
	r.left--

	if r.fill {
		return "", true
	}

	tok, ok := r.cur.next()
	if !ok || tok.Kind == tokenizer.KindNewline {
		r.fill = true
		return "", true
	}
	if r.left == 0 {
		r.cur.skipLine()
	}
	return tok.Value, true
}

// All returns the remaining values as a sequence.
func (r *Row) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			cell, ok := r.Next()
			if !ok || !yield(cell) {
				return
			}
		}
	}
}

// Close panics if the row still has values to read.
func (r *Row) Close() {
	if r.left != 0 {
		panic("rows: row must be fully drained before the next one")
	}
}

// SliceSource is a TokenSource over a fixed slice of tokens.
type SliceSource struct {
	tokens []tokenizer.Token
}

// FromTokens returns a TokenSource yielding tokens in order.
func FromTokens(tokens ...tokenizer.Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next returns the next token or io.EOF.
func (s *SliceSource) Next() (tokenizer.Token, error) {
	if len(s.tokens) == 0 {
		return tokenizer.Token{}, io.EOF
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, nil
}
