package result

// combinators.go - functions that change a Result's type parameters. Go
// methods cannot declare their own type parameters, so these live at package
// level.

// Map applies fn to the value of an Ok result. An Err result is returned
// unchanged and fn is not called.
func Map[T, U, E any](result Result[T, E], fn func(T) U) Result[U, E] {
	if result.tag != TagOk {
		return Result[U, E]{tag: TagErr, err: result.err}
	}
	return Ok[U, E](fn(result.value))
}

// FlatMap chains a fallible operation: fn is called with the value of an Ok
// result and its result is returned as is. An Err result short-circuits.
func FlatMap[T, U, E any](result Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if result.tag != TagOk {
		return Result[U, E]{tag: TagErr, err: result.err}
	}
	return fn(result.value)
}

// MapErr applies fn to the error of an Err result. fn must not return a nil
// pointer or interface. An Ok result passes through.
func MapErr[T, E, F any](result Result[T, E], fn func(E) F) Result[T, F] {
	if result.tag != TagErr {
		return Ok[T, F](result.value)
	}
	return Err[T](fn(result.err))
}

// Fold collapses result into a single value by calling exactly one of onOk
// or onErr
func Fold[T, E, U any](result Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if result.tag != TagOk {
		return onErr(result.err)
	}
	return onOk(result.value)
}

// Flatten removes one level of nesting
func Flatten[T, E any](result Result[Result[T, E], E]) Result[T, E] {
	if result.tag != TagOk {
		return Result[T, E]{tag: TagErr, err: result.err}
	}
	return result.value
}

// And returns next if result is Ok, otherwise result's error retyped
func And[T, U, E any](result Result[T, E], next Result[U, E]) Result[U, E] {
	if result.tag != TagOk {
		return Result[U, E]{tag: TagErr, err: result.err}
	}
	return next
}

// Equal reports whether a and b hold the same variant with equal payloads
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return a == b
}

// EqualFunc is Equal for payload types that are not comparable with ==
func EqualFunc[T, E any](a, b Result[T, E], eqValue func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag == TagOk {
		return eqValue(a.value, b.value)
	}
	return eqErr(a.err, b.err)
}
