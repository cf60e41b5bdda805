// Package result provides a two-variant outcome type used by the request core.
// Every fallible boundary in the client returns a Result instead of panicking
// or smuggling partial values next to an error.
package result

import "fmt"

// Result holds either a success value or an error, never both.
// The zero value is a failure with a nil error; construct values
// with Ok or Err.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a success Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err returns a failure Result wrapping err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether r is the success variant.
func (r Result[T]) IsOk() bool { return r.ok }

// IsErr reports whether r is the failure variant.
func (r Result[T]) IsErr() bool { return !r.ok }

// Unwrap returns the success value and panics on the failure variant.
// Use it only where failure is a programming error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Unwrap on failure: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on the failure variant.
func (r Result[T]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Err returns the wrapped error, or nil on the success variant.
func (r Result[T]) Err() error { return r.err }

// Get returns the value and error in conventional Go form.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

// Map applies fn to the success value, passing failure through unchanged.
// It is a package function because Go methods cannot introduce type parameters.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// MapErr applies fn to the error of a failure, passing success through unchanged.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.IsOk() {
		return r
	}
	return Err[T](fn(r.err))
}

// AndThen applies fn to the success value and returns its Result,
// passing failure through unchanged.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return fn(r.value)
}
