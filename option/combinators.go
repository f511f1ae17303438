package option

// Map applies fn to the value of a Some. fn is not called for None. If fn
// returns a nil pointer, interface, func or chan the result is None, as with
// Of, so Map(Some(x), fn) is not always a Some.
func Map[T, U any](opt Option[T], fn func(T) U) Option[U] {
	if !opt.some {
		return None[U]()
	}
	return Of(fn(opt.value))
}

// FlatMap calls fn with the value of a Some and returns its Option. None
// short-circuits.
func FlatMap[T, U any](opt Option[T], fn func(T) Option[U]) Option[U] {
	if !opt.some {
		return None[U]()
	}
	return fn(opt.value)
}

// Fold calls exactly one of onSome or onNone
func Fold[T, U any](opt Option[T], onSome func(T) U, onNone func() U) U {
	if !opt.some {
		return onNone()
	}
	return onSome(opt.value)
}

func Flatten[T any](opt Option[Option[T]]) Option[T] {
	if !opt.some {
		return None[T]()
	}
	return opt.value
}

func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || eq(a.value, b.value)
}

// Values returns the values of the Somes in opts, in order
func Values[T any](opts []Option[T]) []T {
	values := make([]T, 0, len(opts))
	for _, opt := range opts {
		if opt.some {
			values = append(values, opt.value)
		}
	}
	return values
}

// Traverse calls fn on each element of xs and returns Some of all outputs,
// or None as soon as fn returns None
func Traverse[T, U any](xs []T, fn func(T) Option[U]) Option[[]U] {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		opt := fn(x)
		if !opt.some {
			return None[[]U]()
		}
		out = append(out, opt.value)
	}
	return Some(out)
}
