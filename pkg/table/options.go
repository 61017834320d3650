package table

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// WidthMode selects how the width of a cell is measured.
type WidthMode int

const (
	// WidthCodePoints counts Unicode code points (default).
	WidthCodePoints WidthMode = iota
	// WidthDisplay counts terminal columns: East Asian wide characters take
	// two columns and combining marks take none.
	WidthDisplay
)

// String returns the flag name of the mode.
func (m WidthMode) String() string {
	switch m {
	case WidthCodePoints:
		return "codepoint"
	case WidthDisplay:
		return "display"
	default:
		return fmt.Sprintf("WidthMode(%d)", m)
	}
}

// ParseWidthMode parses a mode name as returned by WidthMode.String.
func ParseWidthMode(s string) (WidthMode, error) {
	switch s {
	case "codepoint", "":
		return WidthCodePoints, nil
	case "display":
		return WidthDisplay, nil
	default:
		return 0, fmt.Errorf("unknown width mode %q (want codepoint or display)", s)
	}
}

// measure returns the width of s under the mode.
func (m WidthMode) measure(s string) int {
	if m == WidthDisplay {
		return runewidth.StringWidth(s)
	}
	return utf8.RuneCountInString(s)
}

// Options configures table construction and rendering.
type Options struct {
	// Width selects the cell width measure. Default: WidthCodePoints
	Width WidthMode
	// ShowSingleRow renders the separator and the body row when the table
	// has exactly one body row. By default only the header line is printed
	// in that case.
	ShowSingleRow bool
}

// DefaultOptions returns default table options.
func DefaultOptions() Options {
	return Options{
		Width:         WidthCodePoints,
		ShowSingleRow: false,
	}
}
