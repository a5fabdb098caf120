package outcome

import "iter"

// Iterate yields the success value once, or nothing on failure. Each range
// over the returned sequence restarts from the same state.
func (r Outcome[T, E]) Iterate() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.success {
			yield(r.value)
		}
	}
}

// Contains reports whether r is a success holding a value equal to x
// under ==.
func Contains[T comparable, E any](r Outcome[T, E], x T) bool {
	return r.success && r.value == x
}

// ContainsFailure reports whether r is a failure holding a payload equal
// to x under ==.
func ContainsFailure[T any, E comparable](r Outcome[T, E], x E) bool {
	return !r.success && r.err == x
}

// Map transforms the success value, leaving a failure untouched; fn runs
// at most once and never on the failure branch.
func Map[T, U, E any](r Outcome[T, E], fn func(v T) U) Outcome[U, E] {
	if r.success {
		return Success[U, E](fn(r.value))
	}
	return Failure[U](r.err)
}

// MapFailure transforms the failure payload, leaving a success untouched.
func MapFailure[T, E, F any](r Outcome[T, E], fn func(err E) F) Outcome[T, F] {
	if r.success {
		return Success[T, F](r.value)
	}
	return Failure[T](fn(r.err))
}

// MapOr folds to a plain value with an eagerly supplied default for the
// failure branch.
func MapOr[T, U, E any](r Outcome[T, E], def U, fn func(v T) U) U {
	if r.success {
		return fn(r.value)
	}
	return def
}

// MapOrElse folds to a plain value; defFn receives the failure payload and
// exactly one of the two functions runs.
func MapOrElse[T, U, E any](r Outcome[T, E], defFn func(err E) U, fn func(v T) U) U {
	if r.success {
		return fn(r.value)
	}
	return defFn(r.err)
}

// And sequences two outcomes, discarding the first success payload: the
// first failure short-circuits.
func And[T, U, E any](r Outcome[T, E], other Outcome[U, E]) Outcome[U, E] {
	if r.success {
		return other
	}
	return Failure[U](r.err)
}

// AndThen composes an Outcome-returning function over the success value
// (monadic bind); a failure propagates left to right without invoking fn.
func AndThen[T, U, E any](r Outcome[T, E], fn func(v T) Outcome[U, E]) Outcome[U, E] {
	if r.success {
		return fn(r.value)
	}
	return Failure[U](r.err)
}

// Flatten removes exactly one nesting level from a success-of-outcome.
// Repeated calls unwrap deeper nestings one level at a time.
func Flatten[T, E any](r Outcome[Outcome[T, E], E]) Outcome[T, E] {
	if r.success {
		return r.value
	}
	return Failure[T](r.err)
}
