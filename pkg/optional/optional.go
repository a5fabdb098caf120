package optional

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Optional holds zero or one value of type T. The zero state is "absent";
// use Present or Absent to construct, never a struct literal.
type Optional[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	present   bool
}

func Present[T any](v T) Optional[T] {
	return Optional[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Absent[T any]() Optional[T] {
	return Optional[T]{
		present:   false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsAbsent() bool {
	return !o.present
}

// Expect returns the held value. It panics with exactly msg when absent.
func (o Optional[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

// Unwrap returns the held value. It panics with a generic diagnostic when
// absent; prefer UnwrapOr or IsPresent checks outside of invariant code.
func (o Optional[T]) Unwrap() T {
	return o.Expect("called Unwrap on an absent Optional")
}

func (o Optional[T]) UnwrapOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) UnwrapOrElse(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Insert overwrites the slot with v regardless of the previous state and
// returns v. Mutates the receiver.
func (o *Optional[T]) Insert(v T) T {
	o.value = v
	o.present = true
	return v
}

// GetOrInsert returns the held value, first inserting v if absent.
// Mutates the receiver only when it was absent.
func (o *Optional[T]) GetOrInsert(v T) T {
	if !o.present {
		return o.Insert(v)
	}
	return o.value
}

// GetOrInsertWith is GetOrInsert with a lazily computed value; fn runs only
// when the slot is absent.
func (o *Optional[T]) GetOrInsertWith(fn func() T) T {
	if !o.present {
		return o.Insert(fn())
	}
	return o.value
}

// Take moves the current state out into a fresh Optional and leaves the
// receiver absent.
func (o *Optional[T]) Take() Optional[T] {
	prev := o.snapshot()
	var zero T
	o.value = zero
	o.present = false
	return prev
}

// Replace sets the slot to present(v) and returns a fresh Optional holding
// the previous state.
func (o *Optional[T]) Replace(v T) Optional[T] {
	prev := o.snapshot()
	o.value = v
	o.present = true
	return prev
}

func (o Optional[T]) snapshot() Optional[T] {
	if o.present {
		return Present(o.value)
	}
	return Absent[T]()
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func (o Optional[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Optional[T]) CreatedAt() time.Time {
	return o.createdAt
}
