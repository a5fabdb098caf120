package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success value of type T or a failure value of
// type E, never both. Use Success or Failure to construct; the zero value
// is a failure carrying E's zero value.
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	success   bool
}

func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		success:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Outcome[T, E]) IsSuccess() bool {
	return r.success
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.success
}

// Expect returns the success value. It panics with msg followed by the
// failure payload when the outcome is a failure.
func (r Outcome[T, E]) Expect(msg string) T {
	if !r.success {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// Unwrap returns the success value, panicking with a diagnostic that embeds
// the failure payload otherwise.
func (r Outcome[T, E]) Unwrap() T {
	return r.Expect("called Unwrap on a failure Outcome")
}

// ExpectFailure returns the failure value. It panics with msg followed by
// the success payload when the outcome is a success.
func (r Outcome[T, E]) ExpectFailure(msg string) E {
	if r.success {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// UnwrapFailure returns the failure value, panicking with a diagnostic that
// embeds the success payload otherwise.
func (r Outcome[T, E]) UnwrapFailure() E {
	return r.ExpectFailure("called UnwrapFailure on a success Outcome")
}

func (r Outcome[T, E]) UnwrapOr(def T) T {
	if r.success {
		return r.value
	}
	return def
}

// UnwrapOrElse folds a failure through fn; fn receives the failure payload
// and runs only on the failure branch.
func (r Outcome[T, E]) UnwrapOrElse(fn func(err E) T) T {
	if r.success {
		return r.value
	}
	return fn(r.err)
}

// Or returns the receiver when successful, otherwise other.
func (r Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if r.success {
		return r
	}
	return other
}

// OrElse is Or with a lazily computed alternative; fn receives the failure
// payload and runs only on the failure branch.
func (r Outcome[T, E]) OrElse(fn func(err E) Outcome[T, E]) Outcome[T, E] {
	if r.success {
		return r
	}
	return fn(r.err)
}

func (r Outcome[T, E]) String() string {
	if r.success {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func (r Outcome[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Outcome[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
