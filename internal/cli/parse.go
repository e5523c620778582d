package cli

import (
	"fmt"
	"strconv"
)

// autoInt is a flag.Value that accepts decimal, hex (0x), octal (0 or 0o),
// and binary (0b) forms, and remembers whether it was set at all.
type autoInt struct {
	set   bool
	value int64
}

func (a *autoInt) String() string {
	if !a.set {
		return ""
	}
	return strconv.FormatInt(a.value, 10)
}

func (a *autoInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return fmt.Errorf("cannot convert %q to an integer", s)
	}
	a.set = true
	a.value = v
	return nil
}
