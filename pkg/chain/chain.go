package chain

import (
	"context"

	"github.com/ib-77/adt/pkg/outcome"
)

// Chain wraps an outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res outcome.Outcome[T, error]
}

// Start creates a new chain from an outcome
func Start[T any](ctx context.Context, r outcome.Outcome[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success[T, error](v))
}

// Result returns the underlying outcome
func (c Chain[T]) Result() outcome.Outcome[T, error] {
	return c.res
}

// Then chains a function that returns a new outcome of the same type
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, error]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Unwrap())}
}

// ThenTry chains a function that returns (T, error)
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Unwrap())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: outcome.Failure[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Success[T, error](u)}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Success[T, error](onSuccess(c.ctx, c.res.Unwrap()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.UnwrapFailure())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Unwrap())
	}
	return c
}

// Or returns the first successful chain among the receiver and alternative,
// or the first failure seen when neither succeeds
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failing chain among the receiver and required, or
// required when both succeed
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Switch chains a function that moves the chain to a new value type
func Switch[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Outcome[U, error]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.AndThen(c.res, func(v T) outcome.Outcome[U, error] {
		return onSuccess(c.ctx, v)
	})}
}

// SwitchTry chains a function that returns (U, error), moving the chain to
// a new value type
func SwitchTry[T, U any](c Chain[T], try func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Switch(c, func(ctx context.Context, t T) outcome.Outcome[U, error] {
		u, err := try(ctx, t)
		if err != nil {
			return outcome.Failure[U](err)
		}
		return outcome.Success[U, error](u)
	})
}

// MapTo transforms the successful value to a new value type
func MapTo[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) U {
		return onSuccess(c.ctx, v)
	})}
}

// Finally collapses the chain to a final value via success/failure handlers
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, t T) U,
	onFailure func(ctx context.Context, err error) U) U {

	return outcome.MapOrElse(c.res,
		func(err error) U { return onFailure(c.ctx, err) },
		func(v T) U { return onSuccess(c.ctx, v) })
}
