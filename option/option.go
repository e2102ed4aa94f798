// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option provides the Option sum type: a value that is either
// present (Some) or absent (None).
//
// Option values are immutable: every combinator returns a new value and
// the absent branch passes through transformations unchanged. Absence
// is an ordinary domain outcome; only the unwrap family and Expect
// raise defects, and only when called on the wrong variant.
//
// Type-changing combinators ([Map], [AndThen], [Match], [Zip]) are
// package functions because Go methods cannot introduce type
// parameters; same-type combinators ([Option.Filter], [Option.Or]) are
// methods.
package option

import (
	"reflect"

	"code.hybscloud.com/outcome"
)

// Option represents a present or absent value of type T.
// The zero Option is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns Some(*p) when p is non-nil, None otherwise.
func FromNullable[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromFalsy returns None when v belongs to the fixed falsy set
// (see [outcome.IsFalsy]) and Some(v) otherwise.
func FromFalsy[T any](v T) Option[T] {
	if outcome.IsFalsy(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPredicate returns Some(v) when pred accepts v, None otherwise.
func FromPredicate[T any](v T, pred outcome.Predicate[T]) Option[T] {
	if pred(v) {
		return Some(v)
	}
	return None[T]()
}

// FromRefinement applies the narrowing predicate and returns the
// narrowed payload on acceptance.
func FromRefinement[T, U any](v T, ref outcome.Refinement[T, U]) Option[U] {
	if u, ok := ref(v); ok {
		return Some(u)
	}
	return None[U]()
}

// Recover runs f and returns Some of its result, or None if f panics.
// The recovered value is discarded; use the result package when the
// failure itself matters.
func Recover[T any](f func() T) (o Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = None[T]()
		}
	}()
	return Some(f())
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

// Unwrap returns the value.
// Calling Unwrap on None is a defect and panics with
// [outcome.WrongVariantError].
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(&outcome.WrongVariantError{Op: "Unwrap", Tag: "None"})
	}
	return o.val
}

// Expect returns the value, panicking with msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.val
}

// UnwrapOr returns the value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.val
	}
	return fallback
}

// UnwrapOrElse returns the value, or the result of f on None.
// f is only called when the option is absent.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.val
	}
	return f()
}

// UnwrapOrZero returns the value, or the zero value of T on None.
func (o Option[T]) UnwrapOrZero() T {
	return o.val
}

// Ptr returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.val
	return &v
}

// Contains reports whether the option holds a value accepted by pred.
// Always false on None.
func (o Option[T]) Contains(pred outcome.Predicate[T]) bool {
	return o.some && pred(o.val)
}

// ToSlice returns a slice of zero or one element.
func (o Option[T]) ToSlice() []T {
	if !o.some {
		return nil
	}
	return []T{o.val}
}

// Filter returns the option unchanged when it is absent or pred accepts
// the value, and None when pred rejects it. Filtering twice with the
// same predicate equals filtering once.
func (o Option[T]) Filter(pred outcome.Predicate[T]) Option[T] {
	if o.some && !pred(o.val) {
		return None[T]()
	}
	return o
}

// Or returns the option when present, or the lazily produced fallback.
// f is only called on None.
func (o Option[T]) Or(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Equal reports structural equality: two Nones are equal, a Some and a
// None never are, and two Somes compare payloads with
// reflect.DeepEqual. Use [EqualFunc] to override the comparator.
func (o Option[T]) Equal(other Option[T]) bool {
	return EqualFunc(o, other, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

// String implements fmt.Stringer for debugging output.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return "Some"
}

// EqualFunc compares two options with a caller-supplied payload
// comparator.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.some != b.some {
		return false
	}
	if !a.some {
		return true
	}
	return eq(a.val, b.val)
}
