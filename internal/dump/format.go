package dump

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// hexFieldWidth is the visible width of a full row's hex field: three
// columns per byte plus the two-space gap between the 8-byte halves. Short
// rows are padded to this width so the ASCII gutter starts in a fixed
// column.
const hexFieldWidth = 3*rowLen + 2

type formatter struct {
	scheme Scheme
	tab    *glyphTable
}

func newFormatter(s Scheme) formatter {
	return formatter{scheme: s, tab: s.glyphs()}
}

// address renders an address in lowercase hex, zero-padded to at least
// eight digits and growing without truncation. No line terminator.
func (f formatter) address(addr int64) string {
	return f.scheme.Address + fmt.Sprintf("%08x", addr) + f.scheme.Reset
}

// marker renders the collapse marker line.
func (f formatter) marker() string {
	return f.scheme.Marker + "*" + f.scheme.Reset + lineSeparator
}

// row renders one row of up to rowLen bytes, terminator included. Padding
// is computed from the visible width so color escapes do not shift the
// gutter column.
func (f formatter) row(addr int64, row []byte) string {
	hexes := make([]string, len(row))
	var gutter strings.Builder
	for i, b := range row {
		hexes[i] = f.tab[b].hex
		gutter.WriteString(f.tab[b].ascii)
	}
	split := min(len(hexes), rowLen/2)
	field := strings.Join(hexes[:split], " ") + "  " + strings.Join(hexes[split:], " ")
	if pad := hexFieldWidth - ansi.StringWidth(field); pad > 0 {
		field += strings.Repeat(" ", pad)
	}

	var sb strings.Builder
	sb.WriteString(f.address(addr))
	sb.WriteString("  ")
	sb.WriteString(field)
	sb.WriteString(f.scheme.Reset)
	sb.WriteString("|")
	sb.WriteString(gutter.String())
	sb.WriteString(f.scheme.Reset)
	sb.WriteString("|")
	sb.WriteString(lineSeparator)
	return sb.String()
}
