// Package optional provides Optional[T], a value that is either present or
// absent, together with a synchronous combinator algebra over it.
//
// Highlights:
// - Present/Absent: construct Optional[T]
// - IsPresent/IsAbsent/Contains: inspect without unwrapping
// - Unwrap/Expect: take the value, panicking when absent
// - UnwrapOr/UnwrapOrElse/MapOr/MapOrElse: fold to a plain value
// - Map/And/AndThen/Filter/Or/Xor/Zip/Flatten: pure transformations
// - Insert/GetOrInsert/Take/Replace: in-place slot mutation
//
// Type-changing operations are package-level functions because a Go method
// cannot introduce a new type parameter. Conversions to the success/failure
// type live in package outcome.
package optional
