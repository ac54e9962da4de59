package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/either/pkg/either"
)

// Traced is a Result stamped with an identity and a creation time.
// The stamp lives outside the result itself, so the wrapped record
// keeps its plain tag-plus-payload shape and structural equality.
type Traced[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       either.Result[T, E]
}

// New stamps r with a fresh identity and the current UTC time.
func New[T, E any](r either.Result[T, E]) Traced[T, E] {
	return Traced[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// Success traces a freshly built success variant.
func Success[T, E any](value T) Traced[T, E] {
	return New(either.Success[T, E](value))
}

// Failure traces a freshly built failure variant.
func Failure[T, E any](err E) Traced[T, E] {
	return New(either.Failure[T, E](err))
}

func (t Traced[T, E]) Id() uuid.UUID {
	return t.id
}

func (t Traced[T, E]) CreatedAt() time.Time {
	return t.createdAt
}

// Result returns the wrapped result.
func (t Traced[T, E]) Result() either.Result[T, E] {
	return t.res
}

// Invert swaps the wrapped result's roles. The identity and creation
// time carry over, so the inverted outcome still refers to the same
// traced operation.
func (t Traced[T, E]) Invert() Traced[E, T] {
	return Traced[E, T]{
		id:        t.id,
		createdAt: t.createdAt,
		res:       t.res.Invert(),
	}
}
