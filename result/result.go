package result

import (
	"fmt"

	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/option"
)

// Tag identifies which variant a Result holds
type Tag uint8

const (
	TagOk Tag = iota
	TagErr
)

func (tag Tag) String() string {
	switch tag {
	case TagOk:
		return "Ok"
	case TagErr:
		return "Err"
	}
	return fmt.Sprintf("Tag(%d)", uint8(tag))
}

// Result holds either a value of type T (Ok) or an error of type E (Err),
// never both. The payload of the variant not held is always the zero value,
// so two Results of comparable types are == iff they hold the same variant
// with equal payloads.
//
// The zero Result is Ok with T's zero value.
type Result[T, E any] struct {
	tag   Tag
	value T
	err   E
}

// Construct a result indicating success. A nil value is allowed.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		tag:   TagOk,
		value: value,
	}
}

// Construct a result indicating error. Panics with a
// *monads.InvalidStateError if err is a nil pointer or interface, since such
// a result could not be told apart from success by callers of Unwrap.
func Err[T, E any](err E) Result[T, E] {
	if monads.IsNil(err) {
		panic(&monads.InvalidStateError{Op: "result.Err", Reason: "nil error payload"})
	}
	return Result[T, E]{
		tag: TagErr,
		err: err,
	}
}

// From converts a Go (value, error) pair; a nil err yields Ok(value). Any
// non-nil err yields Err, including an interface holding a nil pointer, which
// Go callers also treat as a failure.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return failed[T](err)
	}
	return Ok[T, error](value)
}

// Try calls fn and wraps its return values with From
func Try[T any](fn func() (T, error)) Result[T, error] {
	return From(fn())
}

// FromOption returns Ok with the option's value, or Err(err) if it is None
func FromOption[T, E any](opt option.Option[T], err E) Result[T, E] {
	if value, ok := opt.Unwrap(); ok {
		return Ok[T, E](value)
	}
	return Err[T](err)
}

// Unwrap converts result back into a Go (value, error) pair. Unlike Get, the
// error returned for an Err result is the held error itself.
func Unwrap[T any](result Result[T, error]) (T, error) {
	return result.value, result.err
}

func (result Result[T, E]) Tag() Tag {
	return result.tag
}

func (result Result[T, E]) IsOk() bool {
	return result.tag == TagOk
}

func (result Result[T, E]) IsErr() bool {
	return result.tag == TagErr
}

// Get returns the Ok value, or a *monads.UnwrapError if result is Err
func (result Result[T, E]) Get() (T, error) {
	if result.tag != TagOk {
		var zero T
		return zero, result.unwrapError("Result.Get")
	}
	return result.value, nil
}

// MustGet returns the Ok value and panics with a *monads.UnwrapError if
// result is Err
func (result Result[T, E]) MustGet() T {
	value, err := result.Get()
	if err != nil {
		panic(err)
	}
	return value
}

// GetErr returns the Err payload, or a *monads.UnwrapError if result is Ok
func (result Result[T, E]) GetErr() (E, error) {
	if result.tag != TagErr {
		var zero E
		return zero, result.unwrapError("Result.GetErr")
	}
	return result.err, nil
}

func (result Result[T, E]) MustGetErr() E {
	err, unwrapErr := result.GetErr()
	if unwrapErr != nil {
		panic(unwrapErr)
	}
	return err
}

// GetOrElse returns the Ok value, or def if result is Err
func (result Result[T, E]) GetOrElse(def T) T {
	if result.tag != TagOk {
		return def
	}
	return result.value
}

// GetErrOrElse returns the Err payload, or def if result is Ok
func (result Result[T, E]) GetErrOrElse(def E) E {
	if result.tag != TagErr {
		return def
	}
	return result.err
}

// OrElse returns result if it is Ok, otherwise alt
func (result Result[T, E]) OrElse(alt Result[T, E]) Result[T, E] {
	if result.tag == TagOk {
		return result
	}
	return alt
}

// OrElseGet returns result if it is Ok, otherwise the result of calling fn
// with the error. fn is not called for an Ok result.
func (result Result[T, E]) OrElseGet(fn func(E) Result[T, E]) Result[T, E] {
	if result.tag == TagOk {
		return result
	}
	return fn(result.err)
}

// OkOption returns Some(value) for an Ok result and None otherwise
func (result Result[T, E]) OkOption() option.Option[T] {
	if result.tag != TagOk {
		return option.None[T]()
	}
	return option.Of(result.value)
}

// ErrOption returns Some(err) for an Err result and None otherwise
func (result Result[T, E]) ErrOption() option.Option[E] {
	if result.tag != TagErr {
		return option.None[E]()
	}
	return option.Some(result.err)
}

func (result Result[T, E]) IfOk(fn func(T)) {
	if result.tag == TagOk {
		fn(result.value)
	}
}

func (result Result[T, E]) IfErr(fn func(E)) {
	if result.tag == TagErr {
		fn(result.err)
	}
}

func (result Result[T, E]) IfOkOrElse(okFn func(T), errFn func(E)) {
	if result.tag == TagOk {
		okFn(result.value)
	} else {
		errFn(result.err)
	}
}

func (result Result[T, E]) String() string {
	if result.tag == TagOk {
		return fmt.Sprintf("Ok(%v)", result.value)
	}
	return fmt.Sprintf("Err(%v)", result.err)
}

// failed builds an Err without the nil check in Err
func failed[T, E any](err E) Result[T, E] {
	return Result[T, E]{tag: TagErr, err: err}
}

func (result Result[T, E]) unwrapError(op string) error {
	uerr := &monads.UnwrapError{
		Op:      op,
		Variant: result.tag.String(),
	}
	if result.tag == TagErr {
		if cause, ok := any(result.err).(error); ok {
			uerr.Cause = cause
		}
	}
	return uerr
}
