package result

// Collect turns a slice of results into a result holding a slice of values.
// The first Err in rs is returned.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.tag != TagOk {
			return Result[[]T, E]{tag: TagErr, err: r.err}
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// Traverse calls fn on each element of xs in order, stopping at the first
// Err. fn is never called after a failure.
func Traverse[T, U, E any](xs []T, fn func(T) Result[U, E]) Result[[]U, E] {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		r := fn(x)
		if r.tag != TagOk {
			return Result[[]U, E]{tag: TagErr, err: r.err}
		}
		out = append(out, r.value)
	}
	return Ok[[]U, E](out)
}

// Partition splits rs into the Ok values and the Err payloads, keeping order
func Partition[T, E any](rs []Result[T, E]) ([]T, []E) {
	var values []T
	var errs []E
	for _, r := range rs {
		if r.tag == TagOk {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.err)
		}
	}
	return values, errs
}
