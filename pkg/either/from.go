package either

import "reflect"

// From builds a result from a boolean test, routing data to the
// success side when test is true and to the failure side otherwise.
// Both sides carry the same payload type, so either branch can be
// recovered through the comma-ok accessors.
func From[P any](test bool, data P) Result[P, P] {
	if test {
		return Success[P, P](data)
	}
	return Failure[P, P](data)
}

// FromBool is From with the payload defaulted to Unit{}.
func FromBool(test bool) Result[Unit, Unit] {
	return From(test, Unit{})
}

// FromError bridges a (value, error) pair into a Result. A nil error
// yields a success, including a typed nil pointer stored in the error
// interface.
func FromError[T any](value T, err error) Result[T, error] {
	if isNil(err) {
		return Success[T, error](value)
	}
	return Failure[T](err)
}

func isNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
