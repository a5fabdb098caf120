package outcome

import "github.com/ib-77/adt/pkg/optional"

// ToOption projects the success side: success becomes present, failure
// becomes absent and its payload is discarded.
func (r Outcome[T, E]) ToOption() optional.Optional[T] {
	if r.success {
		return optional.Present(r.value)
	}
	return optional.Absent[T]()
}

// ToFailureOption projects the failure side: failure becomes present,
// success becomes absent and its payload is discarded.
func (r Outcome[T, E]) ToFailureOption() optional.Optional[E] {
	if !r.success {
		return optional.Present(r.err)
	}
	return optional.Absent[E]()
}

// OkOr lifts an optional into an outcome with an eagerly supplied failure
// payload for the absent case.
func OkOr[T, E any](o optional.Optional[T], err E) Outcome[T, E] {
	if o.IsPresent() {
		return Success[T, E](o.Unwrap())
	}
	return Failure[T](err)
}

// OkOrElse is OkOr with a lazily computed failure payload; errFn runs only
// when o is absent.
func OkOrElse[T, E any](o optional.Optional[T], errFn func() E) Outcome[T, E] {
	if o.IsPresent() {
		return Success[T, E](o.Unwrap())
	}
	return Failure[T](errFn())
}

// Transpose swaps an outcome-of-optional into an optional-of-outcome:
// success(absent) becomes absent, success(present(v)) becomes
// present(success(v)), failure(e) becomes present(failure(e)).
// TransposeOption is its inverse.
func Transpose[T, E any](r Outcome[optional.Optional[T], E]) optional.Optional[Outcome[T, E]] {
	if !r.success {
		return optional.Present(Failure[T](r.err))
	}
	if r.value.IsAbsent() {
		return optional.Absent[Outcome[T, E]]()
	}
	return optional.Present(Success[T, E](r.value.Unwrap()))
}

// TransposeOption swaps an optional-of-outcome into an outcome-of-optional;
// inverse of Transpose.
func TransposeOption[T, E any](o optional.Optional[Outcome[T, E]]) Outcome[optional.Optional[T], E] {
	if o.IsAbsent() {
		return Success[optional.Optional[T], E](optional.Absent[T]())
	}
	inner := o.Unwrap()
	if inner.IsFailure() {
		return Failure[optional.Optional[T]](inner.err)
	}
	return Success[optional.Optional[T], E](optional.Present(inner.value))
}
