// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"sync"

	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/option"
)

// Option is a deferred option: a handle over a future resolving to an
// [option.Option] plus an owned queue of pending operations.
// Handles are immutable; combinators return new handles.
type Option[T any] struct {
	fut   *future
	queue []outcome.Call

	once sync.Once
	res  outcome.Raw
}

func newOption[T any](fut *future, queue []outcome.Call) *Option[T] {
	return &Option[T]{fut: fut, queue: queue}
}

// drain resolves the future and applies the pending queue, at most
// once per handle. The memoized carrier makes repeated consumption
// observationally identical to a single drain pass.
func (o *Option[T]) drain() outcome.Raw {
	o.once.Do(func() {
		o.res = drainQueue(outcome.OptionName, o.fut.await(), o.queue)
	})
	return o.res
}

func eraseOption[T any](o option.Option[T]) outcome.Raw {
	if v, ok := o.Get(); ok {
		return outcome.RawSome(v)
	}
	return outcome.RawNone()
}

func typedOption[T any](r outcome.Raw) option.Option[T] {
	if r.Tag == outcome.TagSome {
		return option.Some(r.Val.(T))
	}
	return option.None[T]()
}

// Some returns an already-resolved deferred option holding v.
func Some[T any](v T) *Option[T] {
	return newOption[T](settled(outcome.RawSome(v)), nil)
}

// None returns an already-resolved absent deferred option.
func None[T any]() *Option[T] {
	return newOption[T](settled(outcome.RawNone()), nil)
}

// FromOption lifts an already-resolved option.
func FromOption[T any](o option.Option[T]) *Option[T] {
	return newOption[T](settled(eraseOption(o)), nil)
}

// GoOption runs the producer asynchronously. A panic in f resolves to
// None.
func GoOption[T any](f func() option.Option[T]) *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		return eraseOption(f())
	}, foldNone), nil)
}

// WrapOption wraps an arbitrary (value, error)-shaped future. An error
// or a panic resolves to None; neither escapes the handle.
func WrapOption[T any](await func() (T, error)) *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		v, err := await()
		if err != nil {
			return outcome.RawNone()
		}
		return outcome.RawSome(v)
	}, foldNone), nil)
}

// NullableOption lifts [option.FromNullable] to an async producer.
func NullableOption[T any](f func() *T) *Option[T] {
	return GoOption(func() option.Option[T] { return option.FromNullable(f()) })
}

// FalsyOption lifts [option.FromFalsy] to an async producer.
func FalsyOption[T any](f func() T) *Option[T] {
	return GoOption(func() option.Option[T] { return option.FromFalsy(f()) })
}

// PredicateOption lifts [option.FromPredicate] to an async producer.
func PredicateOption[T any](f func() T, pred outcome.Predicate[T]) *Option[T] {
	return GoOption(func() option.Option[T] { return option.FromPredicate(f(), pred) })
}

// RecoverOption runs f asynchronously, resolving to Some of its result
// or None if f panics.
func RecoverOption[T any](f func() T) *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		return outcome.RawSome(f())
	}, foldNone), nil)
}

// MapOption enqueues a transformation of the present value. The
// underlying future is not forced; consecutive enqueued steps run in
// one drain pass.
func MapOption[T, U any](o *Option[T], f func(T) U) *Option[U] {
	return newOption[U](o.fut, extend(o.queue, outcome.Call{
		Op:   outcome.OpMap,
		Args: []outcome.Erased{eraseFn(f)},
	}))
}

// Filter enqueues a predicate test: a present value that fails pred
// resolves to None. The underlying future is not forced.
func (o *Option[T]) Filter(pred outcome.Predicate[T]) *Option[T] {
	return newOption[T](o.fut, extend(o.queue, outcome.Call{
		Op:   outcome.OpFilter,
		Args: []outcome.Erased{erasePred(pred), (func(outcome.Erased) outcome.Erased)(nil)},
	}))
}

// AndThenOption drains o and, on a present value, chains into the
// handle produced by f. Absence passes through. The fork happens on a
// new future; a panic in f resolves to None.
func AndThenOption[T, U any](o *Option[T], f func(T) *Option[U]) *Option[U] {
	return newOption[U](spawn(func() outcome.Raw {
		r := o.drain()
		if r.Tag != outcome.TagSome {
			return outcome.RawNone()
		}
		return f(r.Val.(T)).drain()
	}, foldNone), nil)
}

// Or drains o and, when absent, chains into the lazily produced
// fallback. f is only called on absence.
func (o *Option[T]) Or(f func() *Option[T]) *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		r := o.drain()
		if r.Tag == outcome.TagSome {
			return r
		}
		return f().drain()
	}, foldNone), nil)
}

// Await blocks until the handle resolves, drains the pending queue and
// returns the synchronous option.
func (o *Option[T]) Await() option.Option[T] {
	return typedOption[T](o.drain())
}

// Get awaits and returns the value and whether it was present.
func (o *Option[T]) Get() (T, bool) {
	return o.Await().Get()
}

// IsSome awaits and reports presence.
func (o *Option[T]) IsSome() bool {
	return o.drain().Tag == outcome.TagSome
}

// IsNone awaits and reports absence.
func (o *Option[T]) IsNone() bool {
	return !o.IsSome()
}

// Unwrap awaits and returns the value, panicking with
// [outcome.WrongVariantError] on None.
func (o *Option[T]) Unwrap() T {
	return o.Await().Unwrap()
}

// UnwrapOr awaits and returns the value, or fallback on None.
func (o *Option[T]) UnwrapOr(fallback T) T {
	return o.Await().UnwrapOr(fallback)
}

// UnwrapOrElse awaits and returns the value, or the result of f on
// None.
func (o *Option[T]) UnwrapOrElse(f func() T) T {
	return o.Await().UnwrapOrElse(f)
}

// MatchOption awaits and applies the handler for the resolved variant.
func MatchOption[T, R any](o *Option[T], onSome func(T) R, onNone func() R) R {
	return option.Match(o.Await(), onSome, onNone)
}

// ZipOption combines two deferred options into a pair iff both resolve
// present; absence propagates left to right.
func ZipOption[A, B any](a *Option[A], b *Option[B]) *Option[option.Pair[A, B]] {
	return ZipWithOption(a, b, func(x A, y B) option.Pair[A, B] {
		return option.Pair[A, B]{First: x, Second: y}
	})
}

// ZipWithOption combines two deferred options with f iff both resolve
// present. Expressed through AndThen/Map, so a resolves before b.
func ZipWithOption[A, B, C any](a *Option[A], b *Option[B], f func(A, B) C) *Option[C] {
	return AndThenOption(a, func(x A) *Option[C] {
		return MapOption(b, func(y B) C { return f(x, y) })
	})
}
