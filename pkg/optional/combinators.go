package optional

import "iter"

// Pair carries the two zipped payloads of Zip.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Filter keeps a present value only when pred accepts it. pred runs at most
// once and never on an absent receiver.
func (o Optional[T]) Filter(pred func(v T) bool) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}
	return Absent[T]()
}

// Or returns the receiver when present, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse is Or with a lazily computed alternative; fn runs only when the
// receiver is absent.
func (o Optional[T]) OrElse(fn func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return fn()
}

// Xor returns whichever of the receiver and other is present, and absent
// when both or neither are.
func (o Optional[T]) Xor(other Optional[T]) Optional[T] {
	if o.present == other.present {
		return Absent[T]()
	}
	if o.present {
		return o
	}
	return other
}

// Iterate yields the held value once, or nothing when absent. Each range
// over the returned sequence restarts from the same state.
func (o Optional[T]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// Contains reports whether o holds a value equal to x under ==.
func Contains[T comparable](o Optional[T], x T) bool {
	return o.present && o.value == x
}

// Map transforms the present value; fn runs at most once and never on an
// absent input.
func Map[T, U any](o Optional[T], fn func(v T) U) Optional[U] {
	if o.present {
		return Present(fn(o.value))
	}
	return Absent[U]()
}

// MapOr folds to a plain value with an eagerly supplied default.
func MapOr[T, U any](o Optional[T], def U, fn func(v T) U) U {
	if o.present {
		return fn(o.value)
	}
	return def
}

// MapOrElse folds to a plain value; exactly one of defFn and fn runs.
func MapOrElse[T, U any](o Optional[T], defFn func() U, fn func(v T) U) U {
	if o.present {
		return fn(o.value)
	}
	return defFn()
}

// And sequences two optionals, discarding the first payload: absent stays
// absent, present yields other.
func And[T, U any](o Optional[T], other Optional[U]) Optional[U] {
	if o.present {
		return other
	}
	return Absent[U]()
}

// AndThen composes an Optional-returning function over the present value
// (monadic bind).
func AndThen[T, U any](o Optional[T], fn func(v T) Optional[U]) Optional[U] {
	if o.present {
		return fn(o.value)
	}
	return Absent[U]()
}

// Zip pairs two present values, absent otherwise.
func Zip[T, U any](a Optional[T], b Optional[U]) Optional[Pair[T, U]] {
	return ZipWith(a, b, func(v T, w U) Pair[T, U] {
		return Pair[T, U]{First: v, Second: w}
	})
}

// ZipWith combines two present values through fn, absent otherwise.
func ZipWith[T, U, R any](a Optional[T], b Optional[U], fn func(v T, w U) R) Optional[R] {
	if a.present && b.present {
		return Present(fn(a.value, b.value))
	}
	return Absent[R]()
}

// Flatten removes exactly one nesting level. Repeated calls unwrap deeper
// nestings one level at a time.
func Flatten[T any](o Optional[Optional[T]]) Optional[T] {
	if o.present {
		return o.value
	}
	return Absent[T]()
}
