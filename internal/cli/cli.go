// Package cli implements the hexd command line: flag parsing, per-file
// reads, and dispatch into the dump engine.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andyrewlee/hexd/internal/dump"
	"github.com/andyrewlee/hexd/internal/logging"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const usage = `Usage: hexd [-n length] [-s offset] [-l] [-v] [file ...]

An imperfect replica of hexdump -C.

  -n length   interpret only length bytes of each input
  -s offset   skip offset bytes from the beginning of each input
  -l          colorize the dump
  -v          show every row instead of collapsing repeated ones
  --version   print version information

With no file operands, hexd reads standard input when it is not a
terminal. Lengths and offsets accept decimal, hex (0x), octal (0o),
and binary (0b) forms.`

// Run executes the hexd CLI and returns a process exit code. Output goes
// to w, diagnostics to wErr. stdinIsTerminal decides whether a bare
// invocation is a usage error or a pipe read.
func Run(w, wErr io.Writer, stdin io.Reader, stdinIsTerminal bool, args []string, version, commit, date string) int {
	// --version wins wherever it appears, except after the -- terminator.
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--version" || arg == "-version" {
			fmt.Fprintf(w, "hexd %s (commit: %s, built: %s)\n", version, commit, date)
			return ExitOK
		}
	}

	fs := newFlagSet("hexd")
	var length, skip autoInt
	fs.Var(&length, "n", "interpret only length bytes of input")
	fs.Var(&skip, "s", "skip offset bytes from the beginning of the input")
	color := fs.Bool("l", false, "colorize the dump")
	verbose := fs.Bool("v", false, "show every row")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(w, usage)
			return ExitOK
		}
		return usageError(wErr, err)
	}
	if length.set && length.value < 0 {
		return usageError(wErr, fmt.Errorf("-n must be >= 0, got %d", length.value))
	}
	if skip.set && skip.value < 0 {
		return usageError(wErr, fmt.Errorf("-s must be >= 0, got %d", skip.value))
	}

	opts := []dump.Option{
		dump.WithOffset(skip.value),
		dump.WithCollapse(!*verbose),
		dump.WithColor(*color),
		dump.WithWriter(w),
	}

	files := fs.Args()
	if len(files) == 0 {
		if stdinIsTerminal {
			return usageError(wErr, nil)
		}
		if err := dumpStream(stdin, length, skip, opts); err != nil {
			Errorf(wErr, "%v", err)
			return ExitError
		}
		return ExitOK
	}

	for _, path := range files {
		if err := dumpFile(path, length, skip, opts); err != nil {
			Errorf(wErr, "%v", err)
			return ExitError
		}
	}
	return ExitOK
}

func usageError(wErr io.Writer, parseErr error) int {
	if parseErr != nil {
		Errorf(wErr, "%v", parseErr)
	}
	fmt.Fprintln(wErr, usageStyle.Render(usage))
	return ExitUsage
}

// dumpFile dumps one file, seeking past the skipped prefix so that a skip
// beyond the end of the file renders only the end address.
func dumpFile(path string, length, skip autoInt, opts []dump.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if skip.set {
		if _, err := f.Seek(skip.value, io.SeekStart); err != nil {
			return fmt.Errorf("seek %s: %w", path, err)
		}
	}
	data, err := readLimited(f, length)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	logging.Debug("dump %s: %d bytes at offset %#x", path, len(data), skip.value)
	return dump.Print(data, opts...)
}

// dumpStream dumps standard input, discarding the skipped prefix since a
// pipe cannot seek.
func dumpStream(r io.Reader, length, skip autoInt, opts []dump.Option) error {
	if skip.set {
		if _, err := io.CopyN(io.Discard, r, skip.value); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("skip stdin: %w", err)
		}
	}
	data, err := readLimited(r, length)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	logging.Debug("dump stdin: %d bytes at offset %#x", len(data), skip.value)
	return dump.Print(data, opts...)
}

func readLimited(r io.Reader, length autoInt) ([]byte, error) {
	if length.set {
		r = io.LimitReader(r, length.value)
	}
	return io.ReadAll(r)
}
