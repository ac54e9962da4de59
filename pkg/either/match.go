package either

// Inspect returns whichever payload is present: the value for a
// success, the error payload for a failure. The static type of the
// union cannot be kept in Go; results with a shared payload type
// (Result[P, P], as built by From) stay fully typed through the
// comma-ok accessors instead.
func (r Result[T, E]) Inspect() any {
	if r.ok {
		return r.value
	}
	return r.err
}

// Invert swaps the success and failure roles while preserving the
// present payload. Inverting twice restores the original result.
func (r Result[T, E]) Invert() Result[E, T] {
	if r.ok {
		return Failure[E, T](r.value)
	}
	return Success[E, T](r.err)
}

// Unwrap returns the success payload. For a failure it returns
// fallback(err); the fallback runs exactly once and only on the
// failure path. Calling Unwrap on a possible failure without a
// fallback is a contract violation and panics.
func (r Result[T, E]) Unwrap(fallback func(E) T) T {
	if r.ok {
		return r.value
	}
	if fallback == nil {
		panic("either: Unwrap on a failure without a fallback")
	}
	return fallback(r.err)
}

// Match reduces a result to a single value via the handler matching
// its case.
func Match[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
