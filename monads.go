package monads

import (
	"errors"
	"fmt"
	"reflect"
)

// monads.go - definitions shared by the result and option packages

var (
	ErrUnwrap       = errors.New("unwrap on wrong variant")
	ErrInvalidState = errors.New("invalid state")
)

// Void is the payload of a variant that carries no value, e.g. a
// Result[Void, error] returned by a write that only reports failure
type Void struct{}

// UnwrapError is returned (or panicked with) when a payload is extracted from
// the variant that does not hold it
type UnwrapError struct {
	// Op is the accessor that was called, e.g. "Result.Get"
	Op string
	// Variant is the variant the value actually holds, e.g. "Err" or "None"
	Variant string
	// Cause is the payload of the held variant when it is an error, so that
	// errors.Is/As can see through to it
	Cause error
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s called on %s: %v", e.Op, e.Variant, e.Cause)
	}
	return fmt.Sprintf("%s called on %s", e.Op, e.Variant)
}

func (e *UnwrapError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrUnwrap, e.Cause}
	}
	return []error{ErrUnwrap}
}

// InvalidStateError reports a value that cannot be constructed, such as a
// Some holding a nil pointer or a decoded result with both variants set
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrInvalidState, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// IsNil reports whether v is a nil pointer, interface, func, chan or unsafe
// pointer. Nil slices and maps are usable empty values and are not reported.
func IsNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		// nil interface
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
