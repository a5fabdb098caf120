package outcome

// Resultify runs fn and packages the call as an Outcome: a normal return
// becomes a success, a panic is recovered and its value becomes the failure
// payload, unmodified. This is the only place the library recovers; no
// combinator catches panics raised by its callback.
func Resultify[T any](fn func() T) (out Outcome[T, any]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T, any](r)
		}
	}()
	return Success[T, any](fn())
}

// Try lifts Go's (value, error) convention: a nil error becomes a success,
// anything else a failure carrying the error.
func Try[T any](fn func() (T, error)) Outcome[T, error] {
	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](v)
}
