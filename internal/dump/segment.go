package dump

import (
	"bytes"
	"iter"
)

type eventKind int

const (
	// emitRow renders the row in full.
	emitRow eventKind = iota
	// collapseRun stands in for the first repeat of a run of identical
	// full rows; it renders as a single "*" marker.
	collapseRun
	// skipRow is a repeat beyond the first in a collapsed run and
	// contributes no output.
	skipRow
)

// rowEvent describes one 16-byte-aligned row of the input.
type rowEvent struct {
	kind  eventKind
	index int    // byte index of the row start within the input
	row   []byte // nil for collapseRun and skipRow
}

// segment partitions data into rows of up to rowLen bytes and applies the
// collapse policy. A row byte-for-byte equal to its predecessor starts or
// continues a collapsed run; the comparison includes length, so a short
// final row can never match a full one and is always emitted. The caller
// renders the final address line after the sequence ends.
func segment(data []byte, collapse bool) iter.Seq[rowEvent] {
	return func(yield func(rowEvent) bool) {
		var prev []byte
		inRun := false
		for i := 0; i < len(data); i += rowLen {
			row := data[i:min(i+rowLen, len(data))]
			switch {
			case collapse && prev != nil && bytes.Equal(row, prev):
				ev := rowEvent{kind: collapseRun, index: i}
				if inRun {
					ev.kind = skipRow
				}
				inRun = true
				if !yield(ev) {
					return
				}
			default:
				inRun = false
				if !yield(rowEvent{kind: emitRow, index: i, row: row}) {
					return
				}
			}
			prev = row
		}
	}
}
