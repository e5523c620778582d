package dump

import (
	"bytes"
	"strings"
	"testing"
)

func TestResultStringIsCached(t *testing.T) {
	r, err := New(make([]byte, 32))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	first := r.String()
	second := r.String()
	if first != second {
		t.Fatalf("expected stable String output")
	}
	if !strings.HasSuffix(first, "00000020") {
		t.Fatalf("expected dump to end with the final address, got %q", first)
	}
}

func TestResultWriteToCountsBytes(t *testing.T) {
	r, err := New(make([]byte, 16), WithOffset(0x40))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if want := int64(len(r.String()) + len(lineSeparator)); n != want {
		t.Fatalf("expected %d bytes written, got %d", want, n)
	}
	if buf.String() != r.String()+lineSeparator {
		t.Fatalf("expected WriteTo output to match String plus terminator")
	}
}

func TestResultLinesMatchString(t *testing.T) {
	r, err := New(make([]byte, 40), WithCollapse(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var collected []string
	for line := range r.Lines() {
		collected = append(collected, line)
	}
	if got := strings.Join(collected, lineSeparator); got != r.String() {
		t.Fatalf("expected joined lines to equal String:\n%q\n%q", got, r.String())
	}
}

func TestResultIndependentIterations(t *testing.T) {
	r, err := New(make([]byte, 48), WithCollapse(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	outer := 0
	for range r.Lines() {
		outer++
		inner := 0
		for range r.Lines() {
			inner++
		}
		if inner != 4 {
			t.Fatalf("expected nested iteration to see all 4 lines, got %d", inner)
		}
	}
	if outer != 4 {
		t.Fatalf("expected 4 lines, got %d", outer)
	}
}

func TestResultEmptyInputWithOffsetLine(t *testing.T) {
	r, err := New([]byte{}, WithOffset(0x800000))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := r.String(), "00800000"+lineSeparator; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	var lines []string
	for line := range r.Lines() {
		lines = append(lines, line)
	}
	if len(lines) != 1 || lines[0] != "00800000" {
		t.Fatalf("expected a single address line, got %q", lines)
	}
}
