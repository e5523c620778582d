package dump

import (
	"fmt"
	"reflect"
)

// Byter is the adapter for foreign types that carry raw bytes, such as
// bytes.Buffer.
type Byter interface {
	Bytes() []byte
}

// TypeError reports input that cannot be treated as a byte sequence.
// Missing names the capability the input lacks: "length" for values with
// no notion of size, "index" for values that have a size but no positional
// byte access. Callers rely on the distinction to diagnose malformed
// inputs.
type TypeError struct {
	Type    reflect.Type
	Missing string
}

func (e *TypeError) Error() string {
	name := "nil"
	if e.Type != nil {
		name = e.Type.String()
	}
	if e.Missing == "length" {
		return fmt.Sprintf("dump: %s has no length", name)
	}
	return fmt.Sprintf("dump: %s is not indexable as bytes", name)
}

// ElementError reports a sequence element that does not fit in a byte.
type ElementError struct {
	Index int
	Value any
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("dump: element %d (%v) does not fit in a byte", e.Index, e.Value)
}

// normalize converts byte-like input to a byte slice. Accepted inputs are
// byte slices, strings of code points up to 0xff (latin-1 semantics),
// Byter implementations, and slices or arrays of integer values in the
// byte range. Anything else fails with a TypeError.
func normalize(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return v, nil
	case string:
		return stringBytes(v)
	case Byter:
		return v.Bytes(), nil
	case nil:
		return nil, &TypeError{Missing: "length"}
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return sequenceBytes(rv)
	case reflect.Map, reflect.Chan:
		// Sized, but without positional byte access.
		return nil, &TypeError{Type: rv.Type(), Missing: "index"}
	default:
		return nil, &TypeError{Type: rv.Type(), Missing: "length"}
	}
}

// stringBytes maps each code point 0x00-0xff to the byte of the same
// value, so a string round-trips through the dump unchanged.
func stringBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	i := 0
	for _, r := range s {
		if r > 0xff {
			return nil, &ElementError{Index: i, Value: r}
		}
		out = append(out, byte(r))
		i++
	}
	return out, nil
}

func sequenceBytes(rv reflect.Value) ([]byte, error) {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		return rv.Bytes(), nil
	}
	out := make([]byte, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		el := rv.Index(i)
		switch el.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n := el.Int()
			if n < 0 || n > 0xff {
				return nil, &ElementError{Index: i, Value: el.Interface()}
			}
			out[i] = byte(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n := el.Uint()
			if n > 0xff {
				return nil, &ElementError{Index: i, Value: el.Interface()}
			}
			out[i] = byte(n)
		default:
			return nil, &ElementError{Index: i, Value: el.Interface()}
		}
	}
	return out, nil
}
