//go:build !windows

package dump

// lineSeparator terminates every rendered line except the final address
// line of a dump.
const lineSeparator = "\n"
