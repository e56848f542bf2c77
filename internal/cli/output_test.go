package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)
	assert.Equal(t, "\033[32mmood\033[0m", Green("mood"))
	assert.Equal(t, "\033[90mmood\033[0m", Gray("mood"))
	assert.Equal(t, "\033[1mmood\033[0m", Bold("mood"))
	assert.True(t, ColorEnabled())

	SetColorEnabled(false)
	assert.Equal(t, "mood", Green("mood"))
	assert.Equal(t, "mood", Gray("mood"))
	assert.Equal(t, "mood", Bold("mood"))
	assert.False(t, ColorEnabled())
}

func render(tbl *Table) []string {
	var buf bytes.Buffer
	tbl.Render(&buf)
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable()
	tbl.Render(&buf)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, tbl.Len())
}

func TestTableWithHeader(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	tbl := NewTable("DECK", "PICTURES")
	tbl.AlignRight(1)
	tbl.AddRow("mood", "3")
	tbl.AddRow("tata", "12")

	assert.Equal(t, []string{
		"DECK  PICTURES",
		"mood         3",
		"tata        12",
	}, render(tbl))
	assert.Equal(t, 2, tbl.Len())
}

func TestTableColumnAlignment(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	tbl := NewTable()
	tbl.AddRow("a", "1")
	tbl.AddRow("longer", "2")

	lines := render(tbl)
	assert.Equal(t, "a       1", lines[0])
	assert.Equal(t, "longer  2", lines[1])
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)

	tbl := NewTable()
	tbl.AddRow(Green("mood"), "x")
	tbl.AddRow("riri", "y")

	lines := render(tbl)
	assert.Equal(t, "\033[32mmood\033[0m  x", lines[0])
	assert.Equal(t, "riri  y", lines[1])
}

func TestTableSetMaxWidth(t *testing.T) {
	SetColorEnabled(false)
	defer SetColorEnabled(true)

	tbl := NewTable()
	tbl.SetMaxWidth(0, 10)
	tbl.AddRow("http://example.com/very/long/path.png", "1")
	tbl.AddRow("short", "2")

	lines := render(tbl)
	assert.Equal(t, "http://...  1", lines[0])
	assert.Equal(t, "short       2", lines[1])
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"éléphant", 6, "élé..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.input, tt.width), "Truncate(%q, %d)", tt.input, tt.width)
	}
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 4, visibleWidth("mood"))
	assert.Equal(t, 4, visibleWidth("\033[32mmood\033[0m"))
	assert.Equal(t, 0, visibleWidth(""))
	assert.Equal(t, 3, visibleWidth("été"))
}
