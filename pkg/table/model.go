package table

import (
	"fmt"
	"iter"
	"slices"
)

// Sequence is a run of cells whose length is known before it is read.
// Body rows produced by the row splitter satisfy it.
type Sequence interface {
	Len() int
	All() iter.Seq[string]
}

// cells adapts a slice to Sequence.
type cells []string

func (c cells) Len() int              { return len(c) }
func (c cells) All() iter.Seq[string] { return slices.Values(c) }

// Table accumulates a header and body rows and tracks column widths.
//
// Cells are stored flattened in row-major order, header first, so a table
// with N columns and M body rows holds exactly N*(M+1) cells.
type Table struct {
	opts      Options
	widths    []int
	cells     []string
	rows      int
	hasHeader bool
}

// New creates an empty table with default options.
func New() *Table {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an empty table with custom options.
func NewWithOptions(opts Options) *Table {
	return &Table{opts: opts}
}

// SetHeader sets the header row, fixing the column count. It must be called
// once, before any body row; otherwise it returns ErrHeaderSet.
func (t *Table) SetHeader(header iter.Seq[string]) error {
	if t.hasHeader || t.rows > 0 || len(t.cells) > 0 {
		return ErrHeaderSet
	}
	t.hasHeader = true

	for cell := range header {
		t.cells = append(t.cells, cell)
		t.widths = append(t.widths, t.opts.Width.measure(cell))
	}
	return nil
}

// AppendRow adds a body row. The row length must equal the column count;
// a mismatch panics, as rows from the splitter are always normalized.
func (t *Table) AppendRow(row Sequence) {
	n := row.Len()
	if n != t.Columns() {
		panic(fmt.Sprintf("table: row has %d cells, want %d", n, t.Columns()))
	}

	i := 0
	for cell := range row.All() {
		if i == n {
			panic(fmt.Sprintf("table: row yielded more than %d cells", n))
		}
		t.widths[i] = max(t.widths[i], t.opts.Width.measure(cell))
		t.cells = append(t.cells, cell)
		i++
	}
	if i != n {
		panic(fmt.Sprintf("table: row yielded %d cells, want %d", i, n))
	}
	t.rows++
}

// AppendCells adds a body row from individual cells.
func (t *Table) AppendCells(row ...string) {
	t.AppendRow(cells(row))
}

// Columns returns the number of columns.
func (t *Table) Columns() int {
	return len(t.widths)
}

// Rows returns the number of body rows.
func (t *Table) Rows() int {
	return t.rows
}

// Widths returns a copy of the column widths.
func (t *Table) Widths() []int {
	return slices.Clone(t.widths)
}

// Cells returns a copy of the flattened cell store.
func (t *Table) Cells() []string {
	return slices.Clone(t.cells)
}

// Header returns a copy of the header cells.
func (t *Table) Header() []string {
	return slices.Clone(t.cells[:t.Columns()])
}

// Row returns a copy of body row i (0-indexed).
func (t *Table) Row(i int) []string {
	if i < 0 || i >= t.rows {
		panic(fmt.Sprintf("table: row index %d out of range [0,%d)", i, t.rows))
	}
	return slices.Clone(t.record(i + 1))
}

// record returns row r of the cell store, where row 0 is the header.
func (t *Table) record(r int) []string {
	cols := t.Columns()
	return t.cells[r*cols : (r+1)*cols]
}
