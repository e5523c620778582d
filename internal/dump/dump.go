// Package dump renders binary data in the style of hexdump -C: 16-byte rows
// with an address column, two 8-byte hex groups, and an ASCII gutter, with
// runs of identical rows collapsed to a single "*" marker.
//
//	00000000  68 65 78 64 20 68 65 78  64 20 68 65 78 64 20 68  |hexd hexd hexd h|
//	00000010  65 78 64 20 00 00 00 00  00 00 00 00 00 00 00 00  |exd ............|
//	00000020  00 00 00 00 00 00 00 00  00 00 00 00 00 00 00 00  |................|
//	*
//	00000040
//
// The trailing line is the address one past the last byte of input.
package dump

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

// rowLen is the number of bytes per rendered row.
const rowLen = 16

// Mode selects what Hexdump does with the rendered lines.
type Mode int

const (
	// ModePrint writes the dump to the configured writer.
	ModePrint Mode = iota
	// ModeString returns a Result to be materialized with String.
	ModeString
	// ModeLines returns a Result to be iterated with Lines.
	ModeLines
)

func (m Mode) String() string {
	switch m {
	case ModePrint:
		return "print"
	case ModeString:
		return "string"
	case ModeLines:
		return "lines"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ErrUnknownMode reports a Mode outside the three recognized values.
var ErrUnknownMode = errors.New("unknown output mode")

// Options controls one dump. The zero value is not meaningful; use the
// Option constructors with the entry points instead.
type Options struct {
	// Offset is added to every printed address.
	Offset int64
	// Collapse replaces runs of identical full rows with a "*" marker.
	Collapse bool
	// Color applies the Scheme to each rendered field.
	Color bool
	// Scheme is the color scheme used when Color is active.
	Scheme Scheme
	// Writer receives print-mode output.
	Writer io.Writer
}

// Option mutates Options before a dump starts.
type Option func(*Options)

// WithOffset sets the byte address added to every printed address.
func WithOffset(offset int64) Option {
	return func(o *Options) { o.Offset = offset }
}

// WithCollapse toggles collapsing of repeated identical rows.
func WithCollapse(collapse bool) Option {
	return func(o *Options) { o.Collapse = collapse }
}

// WithColor toggles colorized output.
func WithColor(color bool) Option {
	return func(o *Options) { o.Color = color }
}

// WithScheme sets the color scheme used while color is active.
func WithScheme(s Scheme) Option {
	return func(o *Options) { o.Scheme = s }
}

// WithWriter sets the destination for print-mode output.
func WithWriter(w io.Writer) Option {
	return func(o *Options) { o.Writer = w }
}

func newOptions(opts []Option) Options {
	o := Options{
		Collapse: true,
		Scheme:   ANSI,
		Writer:   os.Stdout,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if colorAlways {
		o.Color = true
	}
	return o
}

// scheme resolves the scheme actually applied: the configured one while
// color is active, NoColor otherwise.
func (o Options) scheme() Scheme {
	if o.Color {
		return o.Scheme
	}
	return NoColor
}

// New normalizes data and prepares a Result without rendering anything.
func New(data any, opts ...Option) (*Result, error) {
	b, err := normalize(data)
	if err != nil {
		return nil, err
	}
	return &Result{data: b, opts: newOptions(opts)}, nil
}

// Hexdump dumps data according to mode. ModePrint writes the dump to the
// configured writer and returns a nil Result; ModeString and ModeLines
// return a Result for materialization or iteration. Any other mode is a
// programming error reported before any output is produced.
func Hexdump(data any, mode Mode, opts ...Option) (*Result, error) {
	switch mode {
	case ModePrint, ModeString, ModeLines:
	default:
		return nil, fmt.Errorf("%w: Mode(%d), valid modes are ModePrint, ModeString, and ModeLines",
			ErrUnknownMode, int(mode))
	}
	r, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	if mode == ModePrint {
		if _, err := r.WriteTo(r.opts.Writer); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return r, nil
}

// Print renders data to the configured writer (os.Stdout by default),
// ending with a trailing line terminator.
func Print(data any, opts ...Option) error {
	r, err := New(data, opts...)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(r.opts.Writer)
	return err
}

// String renders data into a single string with no trailing terminator
// after the final address line.
func String(data any, opts ...Option) (string, error) {
	r, err := New(data, opts...)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Lines returns the dump as a sequence of terminator-free lines. Each
// range over the sequence starts again from the first line.
func Lines(data any, opts ...Option) (iter.Seq[string], error) {
	r, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	return r.Lines(), nil
}

// colorAlways forces color on for every dump in the process. It is seeded
// once at startup from HEXD_COLOR and changed afterwards only through
// ColorAlways. Reads and writes are not synchronized; the flag is a single
// boolean and is not expected to be mutated during a dump.
var colorAlways = colorAlwaysFromEnv()

func colorAlwaysFromEnv() bool {
	if noColorRequested() {
		return false
	}
	return os.Getenv("HEXD_COLOR") != ""
}

// noColorRequested honors http://no-color.org/ and dumb terminals.
func noColorRequested() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}

// ColorAlways forces every subsequent dump to colorize regardless of the
// caller-supplied color option. If NO_COLOR is set or TERM is "dumb" the
// override is disabled no matter what enable says.
func ColorAlways(enable bool) {
	if noColorRequested() {
		colorAlways = false
		return
	}
	colorAlways = enable
}
