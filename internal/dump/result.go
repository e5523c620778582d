package dump

import (
	"io"
	"iter"
	"strings"
	"sync"
)

// Result wraps one prepared dump. It can be materialized once with String
// (the text is cached), iterated line by line with Lines, or written out
// with WriteTo. The input bytes and options are fixed at construction.
type Result struct {
	data []byte
	opts Options

	once sync.Once
	text string
}

// String returns the rendered dump. Every line ends with the platform
// line separator except the final address line, so callers can append
// their own trailing context without a blank line artifact.
func (r *Result) String() string {
	r.once.Do(func() {
		var sb strings.Builder
		for seg := range r.segments() {
			sb.WriteString(seg)
		}
		r.text = sb.String()
	})
	return r.text
}

// Lines returns the dump as terminator-free lines. The sequence is
// regenerated on every range, so iterating again restarts from the first
// line and independent consumers do not affect each other.
func (r *Result) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for seg := range r.segments() {
			if !yield(strings.TrimSuffix(seg, lineSeparator)) {
				return
			}
		}
	}
}

// WriteTo renders the dump to w followed by one trailing line terminator,
// which also separates consecutive dumps written to the same writer.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for seg := range r.segments() {
		m, err := io.WriteString(w, seg)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	m, err := io.WriteString(w, lineSeparator)
	return n + int64(m), err
}

// segments yields the raw dump pieces: each row and marker line with its
// trailing terminator, then the final address line without one. Empty
// input with a non-zero offset yields only the offset address, modeling a
// read past the end of a file; empty input at offset zero yields nothing.
func (r *Result) segments() iter.Seq[string] {
	data, offset := r.data, r.opts.Offset
	f := newFormatter(r.opts.scheme())
	return func(yield func(string) bool) {
		if len(data) == 0 {
			if offset != 0 {
				yield(f.address(offset) + lineSeparator)
			}
			return
		}
		for ev := range segment(data, r.opts.Collapse) {
			switch ev.kind {
			case emitRow:
				if !yield(f.row(offset+int64(ev.index), ev.row)) {
					return
				}
			case collapseRun:
				if !yield(f.marker()) {
					return
				}
			}
		}
		yield(f.address(offset + int64(len(data))))
	}
}
