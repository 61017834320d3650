package table_test

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapestone/shape-table/pkg/table"
)

// lyingRow reports one length and yields a different number of cells.
type lyingRow struct {
	n     int
	cells []string
}

func (r lyingRow) Len() int              { return r.n }
func (r lyingRow) All() iter.Seq[string] { return slices.Values(r.cells) }

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, want) {
			t.Fatalf("panic = %q, want message containing %q", msg, want)
		}
	}()
	fn()
}

func TestTable_SetHeader(t *testing.T) {
	tbl := table.New()
	if err := tbl.SetHeader(slices.Values([]string{"id", "名前", ""})); err != nil {
		t.Fatalf("SetHeader() error = %v", err)
	}

	if tbl.Columns() != 3 {
		t.Errorf("Columns() = %d, want 3", tbl.Columns())
	}
	if diff := cmp.Diff([]int{2, 2, 0}, tbl.Widths()); diff != "" {
		t.Errorf("Widths() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"id", "名前", ""}, tbl.Header()); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}

	if err := tbl.SetHeader(slices.Values([]string{"x"})); !errors.Is(err, table.ErrHeaderSet) {
		t.Errorf("second SetHeader() error = %v, want ErrHeaderSet", err)
	}
	if tbl.Columns() != 3 {
		t.Errorf("Columns() = %d after rejected header", tbl.Columns())
	}
}

func TestTable_SetHeaderEmptyTwice(t *testing.T) {
	tbl := table.New()
	if err := tbl.SetHeader(slices.Values([]string(nil))); err != nil {
		t.Fatalf("SetHeader() error = %v", err)
	}
	if err := tbl.SetHeader(slices.Values([]string{"a"})); !errors.Is(err, table.ErrHeaderSet) {
		t.Errorf("SetHeader() error = %v, want ErrHeaderSet", err)
	}
}

func TestTable_AppendRow(t *testing.T) {
	tbl := table.New()
	if err := tbl.SetHeader(slices.Values([]string{"a", "bb"})); err != nil {
		t.Fatalf("SetHeader() error = %v", err)
	}

	tbl.AppendCells("xyz", "")
	tbl.AppendCells("ü", "longer")

	if tbl.Rows() != 2 {
		t.Errorf("Rows() = %d, want 2", tbl.Rows())
	}
	if diff := cmp.Diff([]int{3, 6}, tbl.Widths()); diff != "" {
		t.Errorf("Widths() mismatch (-want +got):\n%s", diff)
	}
	want := []string{"a", "bb", "xyz", "", "ü", "longer"}
	if diff := cmp.Diff(want, tbl.Cells()); diff != "" {
		t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ü", "longer"}, tbl.Row(1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_AppendRowAfterHeaderRejected(t *testing.T) {
	tbl := table.New()
	tbl.AppendCells()
	if err := tbl.SetHeader(slices.Values([]string{"a"})); !errors.Is(err, table.ErrHeaderSet) {
		t.Errorf("SetHeader() after row error = %v, want ErrHeaderSet", err)
	}
}

func TestTable_ContractViolations(t *testing.T) {
	newTable := func() *table.Table {
		tbl := table.New()
		if err := tbl.SetHeader(slices.Values([]string{"a", "b"})); err != nil {
			t.Fatalf("SetHeader() error = %v", err)
		}
		return tbl
	}

	t.Run("short row", func(t *testing.T) {
		tbl := newTable()
		expectPanic(t, "row has 1 cells, want 2", func() { tbl.AppendCells("x") })
	})

	t.Run("long row", func(t *testing.T) {
		tbl := newTable()
		expectPanic(t, "row has 3 cells, want 2", func() { tbl.AppendCells("x", "y", "z") })
	})

	t.Run("row yields more than its length", func(t *testing.T) {
		tbl := newTable()
		expectPanic(t, "more than 2 cells", func() {
			tbl.AppendRow(lyingRow{n: 2, cells: []string{"1", "2", "3"}})
		})
	})

	t.Run("row yields less than its length", func(t *testing.T) {
		tbl := newTable()
		expectPanic(t, "yielded 1 cells, want 2", func() {
			tbl.AppendRow(lyingRow{n: 2, cells: []string{"1"}})
		})
	})

	t.Run("row index out of range", func(t *testing.T) {
		tbl := newTable()
		expectPanic(t, "out of range", func() { tbl.Row(0) })
	})
}

// TestTable_ShapeInvariant checks the cell count and width bounds over
// many generated tables.
func TestTable_ShapeInvariant(t *testing.T) {
	words := []string{"", "a", "bb", "日本", "héllo", "longer cell"}

	for cols := 1; cols <= 4; cols++ {
		for rows := 0; rows <= 5; rows++ {
			tbl := table.New()
			header := make([]string, cols)
			for c := range header {
				header[c] = words[c%len(words)]
			}
			if err := tbl.SetHeader(slices.Values(header)); err != nil {
				t.Fatalf("SetHeader() error = %v", err)
			}
			for r := 0; r < rows; r++ {
				row := make([]string, cols)
				for c := range row {
					row[c] = words[(r*7+c*3)%len(words)]
				}
				tbl.AppendCells(row...)
			}

			all := tbl.Cells()
			if len(all) != cols*(rows+1) {
				t.Fatalf("%dx%d: %d cells, want %d", cols, rows, len(all), cols*(rows+1))
			}
			widths := tbl.Widths()
			for i, cell := range all {
				if n := len([]rune(cell)); n > widths[i%cols] {
					t.Errorf("%dx%d: cell %q exceeds width %d", cols, rows, cell, widths[i%cols])
				}
			}
		}
	}
}
