package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// colorEnabled is set from terminal detection and can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Bold returns s in bold if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Green returns s in green if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Gray returns s in gray if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Table formats columnar output. Numeric columns can be right-aligned.
type Table struct {
	header     []string
	rows       [][]string
	widths     []int
	rightAlign map[int]bool
	maxWidths  map[int]int
}

// NewTable creates a table with an optional header row.
func NewTable(header ...string) *Table {
	t := &Table{rightAlign: map[int]bool{}, maxWidths: map[int]int{}}
	if len(header) > 0 {
		t.header = header
		t.track(header)
	}
	return t
}

// AlignRight right-aligns column col.
func (t *Table) AlignRight(col int) {
	t.rightAlign[col] = true
}

// SetMaxWidth truncates column col to maxWidth visible characters.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	t.track(cols)
	t.rows = append(t.rows, cols)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) track(cols []string) {
	for len(t.widths) < len(cols) {
		t.widths = append(t.widths, 0)
	}
	for i, col := range cols {
		t.widths[i] = max(t.widths[i], visibleWidth(col))
	}
}

// Render writes the table to w with columns separated by two spaces.
// The header, if any, is printed in bold.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.widths))
	for i, width := range t.widths {
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		widths[i] = width
	}

	if t.header != nil {
		fmt.Fprintln(w, t.line(t.header, widths, Bold))
	}
	for _, row := range t.rows {
		fmt.Fprintln(w, t.line(row, widths, nil))
	}
}

func (t *Table) line(cols []string, widths []int, style func(string) string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		if maxW, ok := t.maxWidths[i]; ok {
			col = Truncate(col, maxW)
		}
		pad := strings.Repeat(" ", widths[i]-visibleWidth(col))
		if style != nil {
			col = style(col)
		}
		switch {
		case t.rightAlign[i]:
			parts[i] = pad + col
		case i == len(cols)-1:
			parts[i] = col
		default:
			parts[i] = col + pad
		}
	}
	return strings.Join(parts, "  ")
}

// Truncate shortens plain text s to maxWidth characters, ending with "..."
// when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// visibleWidth returns the width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}
