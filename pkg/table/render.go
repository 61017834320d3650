package table

import (
	"bytes"
	"io"
	"strings"
)

// Render returns the table as bordered text:
//
//	| one   | two   | three |
//	|-------|-------|-------|
//	| four  | five  | six   |
//
// Each cell is right-padded to its column width. A table without header
// cells renders as "". A table with exactly one body row renders only the
// header line unless Options.ShowSingleRow is set.
//
// Render does not modify the table; repeated calls return the same text.
func (t *Table) Render() string {
	var buf bytes.Buffer
	t.render(&buf)
	return buf.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	t.render(&buf)
	return buf.WriteTo(w)
}

func (t *Table) render(buf *bytes.Buffer) {
	if len(t.cells) == 0 {
		return
	}

	t.renderRecord(buf, t.record(0))
	if t.rows == 1 && !t.opts.ShowSingleRow {
		return
	}

	for _, width := range t.widths {
		buf.WriteByte('|')
		buf.WriteString(strings.Repeat("-", width+2))
	}
	buf.WriteString("|\n")

	for r := 1; r <= t.rows; r++ {
		t.renderRecord(buf, t.record(r))
	}
}

// renderRecord writes one line of cells padded to the column widths.
func (t *Table) renderRecord(buf *bytes.Buffer, record []string) {
	for i, cell := range record {
		buf.WriteString("| ")
		buf.WriteString(cell)
		if pad := t.widths[i] - t.opts.Width.measure(cell); pad > 0 {
			buf.WriteString(strings.Repeat(" ", pad))
		}
		buf.WriteByte(' ')
	}
	buf.WriteString("|\n")
}

// RenderCSV returns the header and every body row as RFC 4180 CSV.
//
// Unlike Render, all body rows are written regardless of the row count.
// Fields containing commas, quotes, CR or LF are quoted, with embedded
// quotes doubled. Lines end with LF.
func (t *Table) RenderCSV() []byte {
	var buf bytes.Buffer
	if len(t.cells) == 0 {
		return buf.Bytes()
	}

	for r := 0; r <= t.rows; r++ {
		for i, cell := range t.record(r) {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCSVField(&buf, cell)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// writeCSVField writes a CSV field to the buffer with proper escaping.
func writeCSVField(buf *bytes.Buffer, value string) {
	if !strings.ContainsAny(value, ",\"\n\r") {
		buf.WriteString(value)
		return
	}

	buf.WriteByte('"')
	buf.WriteString(strings.ReplaceAll(value, `"`, `""`))
	buf.WriteByte('"')
}
