// Package option provides Option, a value that is either present (Some) or
// absent (None).
package option

import (
	"fmt"

	"github.com/application-research/go-monads"
)

// Option holds either a value of type T (Some) or nothing (None). The zero
// Option is None. The value of a None is always T's zero value, so Options
// of a comparable T are == iff both are None or both hold equal values.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding value. It panics with a
// *monads.InvalidStateError if value is a nil pointer, interface, func or
// chan; use Of to map nil to None instead.
func Some[T any](value T) Option[T] {
	if monads.IsNil(value) {
		panic(&monads.InvalidStateError{Op: "option.Some", Reason: "nil value"})
	}
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of returns None if value is nil (see monads.IsNil) and Some(value)
// otherwise
func Of[T any](value T) Option[T] {
	if monads.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, some: true}
}

// FromPtr returns None for a nil pointer and Some(*ptr) otherwise
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Of(*ptr)
}

// FromPair converts a comma-ok pair, as returned by map lookups and type
// assertions
func FromPair[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(value)
}

func (opt Option[T]) IsSome() bool {
	return opt.some
}

func (opt Option[T]) IsNone() bool {
	return !opt.some
}

// Unwrap returns the value and whether it is present
func (opt Option[T]) Unwrap() (T, bool) {
	return opt.value, opt.some
}

// Get returns the value, or a *monads.UnwrapError if opt is None
func (opt Option[T]) Get() (T, error) {
	if !opt.some {
		return opt.value, &monads.UnwrapError{Op: "Option.Get", Variant: "None"}
	}
	return opt.value, nil
}

// MustGet returns the value and panics with a *monads.UnwrapError if opt is
// None
func (opt Option[T]) MustGet() T {
	value, err := opt.Get()
	if err != nil {
		panic(err)
	}
	return value
}

func (opt Option[T]) GetOrElse(def T) T {
	if !opt.some {
		return def
	}
	return opt.value
}

// GetOrZero returns the value, or T's zero value if opt is None
func (opt Option[T]) GetOrZero() T {
	return opt.value
}

// OrElse returns opt if it is Some, otherwise alt
func (opt Option[T]) OrElse(alt Option[T]) Option[T] {
	if opt.some {
		return opt
	}
	return alt
}

// OrElseGet returns opt if it is Some, otherwise the result of fn. fn is not
// called for a Some.
func (opt Option[T]) OrElseGet(fn func() Option[T]) Option[T] {
	if opt.some {
		return opt
	}
	return fn()
}

// Filter returns opt if it is Some and pred holds for its value, otherwise
// None
func (opt Option[T]) Filter(pred func(T) bool) Option[T] {
	if opt.some && pred(opt.value) {
		return opt
	}
	return None[T]()
}

// Ptr returns a pointer to a copy of the value, or nil for None
func (opt Option[T]) Ptr() *T {
	if !opt.some {
		return nil
	}
	value := opt.value
	return &value
}

func (opt Option[T]) IfSome(fn func(T)) {
	if opt.some {
		fn(opt.value)
	}
}

func (opt Option[T]) IfSomeOrElse(someFn func(T), noneFn func()) {
	if opt.some {
		someFn(opt.value)
	} else {
		noneFn()
	}
}

func (opt Option[T]) String() string {
	if !opt.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", opt.value)
}
