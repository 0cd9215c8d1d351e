package ordered

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilValue indicates a nil element passed where a value is required.
	ErrNilValue = errors.New("ordered: nil value")

	// ErrDuplicateValue indicates a positional write targeting a value that
	// is already a member at another position.
	ErrDuplicateValue = errors.New("ordered: duplicate value")

	// ErrOutOfRange indicates a positional access beyond the sequence.
	ErrOutOfRange = errors.New("ordered: index out of range")
)

func outOfRange(i, length int) error {
	return fmt.Errorf("%w: %d with length %d", ErrOutOfRange, i, length)
}

// isNil reports whether item is a nil pointer, interface, or other
// nil-able value. Non-nil-able kinds always report false.
func isNil(item any) bool {
	if item == nil {
		return true
	}
	val := reflect.ValueOf(item)
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Chan, reflect.Func:
		return val.IsNil()
	default:
		return false
	}
}
