// Package outcome provides Outcome[T, E], a value that is either a success
// of T or a failure of E, together with a synchronous combinator algebra
// and the conversions to and from optional.Optional.
//
// Highlights:
// - Success/Failure: construct Outcome[T, E]
// - IsSuccess/IsFailure/Contains/ContainsFailure: inspect without unwrapping
// - Unwrap/Expect and UnwrapFailure/ExpectFailure: take a payload,
//   panicking on the opposite branch
// - Map/MapFailure/And/AndThen/Or/OrElse/Flatten: pure transformations with
//   left-to-right failure propagation
// - ToOption/ToFailureOption/OkOr/OkOrElse/Transpose/TransposeOption: the
//   bridge between the two types
// - Resultify/Try: lift panicking or error-returning computations
//
// Failure payloads are a generic E, not error; use Try when composing with
// error-returning code. Both conversion directions live here because
// package optional cannot import this package back.
package outcome
