// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package result provides the Result sum type: a computation that
// either succeeded with a value of type T (Ok) or failed with a typed
// error of type E (Err).
//
// E is an arbitrary type, not necessarily error. Failures are ordinary
// return values; only the unwrap family and Expect raise defects, and
// only when called on the wrong variant. Constructors whose failure is
// produced on the caller's behalf come in two forms: the plain form
// pins E = error and uses the default taxonomy values from the outcome
// package, the *Func form takes an explicit error factory.
//
// Type-changing combinators ([Map], [MapErr], [AndThen], [Match],
// [Zip]) are package functions because Go methods cannot introduce type
// parameters; same-type combinators ([Result.Filter], [Result.Or],
// [Result.Swap]) are methods.
package result

import (
	"reflect"

	"code.hybscloud.com/outcome"
)

// Result represents success with T or failure with E.
// The zero Result is Ok with the zero value of T.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Ok returns a successful result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Err returns a failed result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From lifts a conventional (value, error) pair: Err when err is
// non-nil, Ok otherwise.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// FromNullable returns Ok(*p) when p is non-nil, otherwise
// Err(outcome.ErrNoValue).
func FromNullable[T any](p *T) Result[T, error] {
	return FromNullableFunc(p, func() error { return outcome.ErrNoValue })
}

// FromNullableFunc returns Ok(*p) when p is non-nil, otherwise Err of
// the produced error. onNil is only called when p is nil.
func FromNullableFunc[T, E any](p *T, onNil func() E) Result[T, E] {
	if p == nil {
		return Err[T](onNil())
	}
	return Ok[T, E](*p)
}

// FromFalsy returns Err(outcome.ErrNoValue) when v belongs to the fixed
// falsy set (see [outcome.IsFalsy]) and Ok(v) otherwise.
func FromFalsy[T any](v T) Result[T, error] {
	return FromFalsyFunc(v, func() error { return outcome.ErrNoValue })
}

// FromFalsyFunc is FromFalsy with an explicit error factory.
func FromFalsyFunc[T, E any](v T, onFalsy func() E) Result[T, E] {
	if outcome.IsFalsy(v) {
		return Err[T](onFalsy())
	}
	return Ok[T, E](v)
}

// FromPredicate returns Ok(v) when pred accepts v, otherwise Err of
// [outcome.FailedPredicateError] carrying the rejected value.
func FromPredicate[T any](v T, pred outcome.Predicate[T]) Result[T, error] {
	return FromPredicateFunc(v, pred, func(v T) error {
		return &outcome.FailedPredicateError{Value: v}
	})
}

// FromPredicateFunc is FromPredicate with an explicit error factory
// receiving the rejected value.
func FromPredicateFunc[T, E any](v T, pred outcome.Predicate[T], onFail func(T) E) Result[T, E] {
	if !pred(v) {
		return Err[T](onFail(v))
	}
	return Ok[T, E](v)
}

// FromRefinement applies the narrowing predicate, returning the
// narrowed payload on acceptance and Err of
// [outcome.FailedPredicateError] on rejection.
func FromRefinement[T, U any](v T, ref outcome.Refinement[T, U]) Result[U, error] {
	if u, ok := ref(v); ok {
		return Ok[U, error](u)
	}
	return Err[U, error](error(&outcome.FailedPredicateError{Value: v}))
}

// Recover runs f and lifts its (value, error) pair, folding a panic in
// f into Err([outcome.UnknownError]). The error channel never escapes
// as a panic.
func Recover[T any](f func() (T, error)) (r Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](outcome.Unknown(p))
		}
	}()
	return From(f())
}

// RecoverFunc runs f and returns Ok of its result, folding a panic into
// Err of the factory applied to the recovered value.
func RecoverFunc[T, E any](f func() T, onPanic func(cause any) E) (r Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](onPanic(p))
		}
	}()
	return Ok[T, E](f())
}

// IsOk reports whether the result is a success.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the result is a failure.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Get returns the success value and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.val, r.ok
}

// GetErr returns the failure value and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value.
// Calling Unwrap on Err is a defect and panics with
// [outcome.WrongVariantError].
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(&outcome.WrongVariantError{Op: "Unwrap", Tag: "Err"})
	}
	return r.val
}

// UnwrapErr returns the failure value.
// Calling UnwrapErr on Ok is a defect.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(&outcome.WrongVariantError{Op: "UnwrapErr", Tag: "Ok"})
	}
	return r.err
}

// Expect returns the success value, panicking with msg on Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.val
}

// ExpectErr returns the failure value, panicking with msg on Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(msg)
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback on Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.val
	}
	return fallback
}

// UnwrapOrElse returns the success value, or the result of applying f
// to the failure. f is only called on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.val
	}
	return f(r.err)
}

// UnwrapOrZero returns the success value, or the zero value of T.
func (r Result[T, E]) UnwrapOrZero() T {
	if r.ok {
		return r.val
	}
	var zero T
	return zero
}

// Ptr returns a pointer to a copy of the success value, or nil on Err.
func (r Result[T, E]) Ptr() *T {
	if !r.ok {
		return nil
	}
	v := r.val
	return &v
}

// Contains reports whether the result holds a success value accepted by
// pred. Always false on Err.
func (r Result[T, E]) Contains(pred outcome.Predicate[T]) bool {
	return r.ok && pred(r.val)
}

// ContainsErr reports whether the result holds a failure accepted by
// pred. Always false on Ok.
func (r Result[T, E]) ContainsErr(pred outcome.Predicate[E]) bool {
	return !r.ok && pred(r.err)
}

// ToSlice returns a slice of zero or one success value.
func (r Result[T, E]) ToSlice() []T {
	if !r.ok {
		return nil
	}
	return []T{r.val}
}

// Filter turns Ok into Err([outcome.FailedPredicateError]) when pred
// rejects the value; Err passes through. Requires E to be satisfiable
// by error values — use [Result.FilterFunc] for other failure types.
// Filtering twice with the same predicate equals filtering once.
func (r Result[T, E]) Filter(pred outcome.Predicate[T]) Result[T, E] {
	return r.FilterFunc(pred, func(v T) E {
		return any(error(&outcome.FailedPredicateError{Value: v})).(E)
	})
}

// FilterFunc turns Ok into Err of the factory applied to the rejected
// value when pred rejects it; Err passes through.
func (r Result[T, E]) FilterFunc(pred outcome.Predicate[T], onFail func(T) E) Result[T, E] {
	if r.ok && !pred(r.val) {
		return Err[T](onFail(r.val))
	}
	return r
}

// Or returns the result when Ok, or the lazily produced fallback.
// f is only called on Err.
func (r Result[T, E]) Or(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

// Swap exchanges the channels: Ok(v) becomes Err(v) and Err(e) becomes
// Ok(e).
func (r Result[T, E]) Swap() Result[E, T] {
	if r.ok {
		return Err[E](r.val)
	}
	return Ok[E, T](r.err)
}

// Equal reports structural equality per channel: both Ok with
// DeepEqual payloads, or both Err with DeepEqual failures. Use
// [EqualFunc] to override either comparator.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	return EqualFunc(r, other,
		func(a, b T) bool { return reflect.DeepEqual(a, b) },
		func(a, b E) bool { return reflect.DeepEqual(a, b) },
	)
}

// String implements fmt.Stringer for debugging output.
func (r Result[T, E]) String() string {
	if r.ok {
		return "Ok"
	}
	return "Err"
}

// EqualFunc compares two results with independent comparators for the
// success and failure channels.
func EqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqOk(a.val, b.val)
	}
	return eqErr(a.err, b.err)
}
