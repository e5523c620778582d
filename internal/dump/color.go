package dump

import "fmt"

// Foreground SGR sequences. fgDefault restores the terminal's default
// foreground without touching other attributes.
const (
	fgRed     = "\x1b[31m"
	fgGreen   = "\x1b[32m"
	fgYellow  = "\x1b[33m"
	fgCyan    = "\x1b[36m"
	fgDefault = "\x1b[39m"
)

// Scheme maps dump fields and byte classes to escape sequences. Each
// colored field is followed by Reset so colors never bleed across field
// boundaries. A scheme is fixed for the duration of one dump.
type Scheme struct {
	Address      string // address column and final address line
	Marker       string // the "*" collapse marker
	Printable    string // bytes 0x20-0x7e
	NonPrintable string // control bytes and 0x7f-0xff
	Null         string // byte 0x00
	Reset        string
}

// ANSI is the default color scheme: green addresses, red markers, yellow
// printable bytes, cyan non-printable bytes, and the default foreground
// for null bytes.
var ANSI = Scheme{
	Address:      fgGreen,
	Marker:       fgRed,
	Printable:    fgYellow,
	NonPrintable: fgCyan,
	Null:         fgDefault,
	Reset:        fgDefault,
}

// NoColor maps every field to the empty string.
var NoColor = Scheme{}

// class returns the escape sequence for one byte value.
func (s Scheme) class(b byte) string {
	switch {
	case b == 0x00:
		return s.Null
	case b >= 0x20 && b <= 0x7e:
		return s.Printable
	default:
		return s.NonPrintable
	}
}

// glyph holds the rendered hex and ASCII forms of one byte value,
// including the byte's color prefix.
type glyph struct {
	hex   string
	ascii string
}

type glyphTable [256]glyph

// compile precomputes the per-byte glyphs for a scheme, mirroring a
// 256-entry lookup so row rendering is concatenation only.
func (s Scheme) compile() *glyphTable {
	t := new(glyphTable)
	for i := 0; i < 256; i++ {
		b := byte(i)
		c := s.class(b)
		t[i].hex = fmt.Sprintf("%s%02x", c, b)
		if b >= 0x20 && b <= 0x7e {
			t[i].ascii = c + string(rune(b))
		} else {
			t[i].ascii = c + "."
		}
	}
	return t
}

var (
	noColorGlyphs = NoColor.compile()
	ansiGlyphs    = ANSI.compile()
)

// glyphs returns the compiled table for s, reusing the shared tables for
// the two built-in schemes.
func (s Scheme) glyphs() *glyphTable {
	switch s {
	case NoColor:
		return noColorGlyphs
	case ANSI:
		return ansiGlyphs
	}
	return s.compile()
}
