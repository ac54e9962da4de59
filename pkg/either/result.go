package either

// Unit is the payload carried by results constructed without a
// meaningful value. Succeed, Failed and FromBool default to it.
type Unit struct{}

// Never marks a payload type that cannot legitimately occur. A result
// branch typed with Never is unreachable: Success and Failure refuse
// to build a result around a Never payload.
type Never struct {
	impossible func()
}

// Result holds the outcome of an operation: either a success carrying
// a value of type T, or a failure carrying an error payload of type E.
// A Result is immutable; with comparable payload types two results
// compare equal with == exactly when their tags and present payloads
// are equal. The zero Result is a failure carrying E's zero value.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Success builds the success variant around value. It panics when the
// payload is a Never, since such a result must not exist.
func Success[T, E any](value T) Result[T, E] {
	guardNever(value)
	return Result[T, E]{ok: true, value: value}
}

// Failure builds the failure variant around err. Same Never guard as
// Success.
func Failure[T, E any](err E) Result[T, E] {
	guardNever(err)
	return Result[T, E]{err: err}
}

// Succeed is the no-payload form of Success, carrying Unit.
func Succeed[E any]() Result[Unit, E] {
	return Success[Unit, E](Unit{})
}

// Failed is the no-payload form of Failure, carrying Unit.
func Failed[T any]() Result[T, Unit] {
	return Failure[T](Unit{})
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success payload, or T's zero value for a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or E's zero value for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Success narrows r to its success case.
func (r Result[T, E]) Success() (T, bool) {
	return r.value, r.ok
}

// Failure narrows r to its failure case.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

func guardNever(payload any) {
	if _, bad := payload.(Never); bad {
		panic("either: cannot construct a result around a Never payload")
	}
}
