// Package chain provides a fluent wrapper around Outcome[T, error]
// for building synchronous pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from an outcome or a value
// - Then/ThenTry/Map: compose same-type steps, short-circuiting on failure
// - Switch/SwitchTry/MapTo: move the chain to a new value type
// - Ensure: run side effects without changing the result
// - Or/And: combine chains by first-success or first-failure
// - Finally: collapse the chain into a final value via handlers
//
// Chains carry a context.Context for the composed functions; the chain
// itself never blocks or spawns work.
package chain
