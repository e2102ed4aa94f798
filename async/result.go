// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"sync"

	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/result"
)

// Result is a deferred result: a handle over a future resolving to a
// [result.Result] plus an owned queue of pending operations.
// Handles are immutable; combinators return new handles.
//
// The never-rejects fold stores an [outcome.UnknownError] in the
// failure lane, so a handle whose E cannot hold error values turns a
// producer panic into a typed-edge defect at Await instead.
type Result[T, E any] struct {
	fut   *future
	queue []outcome.Call

	once sync.Once
	res  outcome.Raw
}

func newResult[T, E any](fut *future, queue []outcome.Call) *Result[T, E] {
	return &Result[T, E]{fut: fut, queue: queue}
}

// drain resolves the future and applies the pending queue, at most
// once per handle.
func (r *Result[T, E]) drain() outcome.Raw {
	r.once.Do(func() {
		r.res = drainQueue(outcome.ResultName, r.fut.await(), r.queue)
	})
	return r.res
}

func eraseResult[T, E any](r result.Result[T, E]) outcome.Raw {
	if v, ok := r.Get(); ok {
		return outcome.RawOk(v)
	}
	e, _ := r.GetErr()
	return outcome.RawErr(e)
}

func typedResult[T, E any](r outcome.Raw) result.Result[T, E] {
	if r.Tag == outcome.TagOk {
		return result.Ok[T, E](r.Val.(T))
	}
	return result.Err[T](r.Err.(E))
}

// Ok returns an already-resolved deferred result holding v.
func Ok[T, E any](v T) *Result[T, E] {
	return newResult[T, E](settled(outcome.RawOk(v)), nil)
}

// Err returns an already-resolved failed deferred result.
func Err[T, E any](e E) *Result[T, E] {
	return newResult[T, E](settled(outcome.RawErr(e)), nil)
}

// FromResult lifts an already-resolved result.
func FromResult[T, E any](r result.Result[T, E]) *Result[T, E] {
	return newResult[T, E](settled(eraseResult(r)), nil)
}

// GoResult runs the producer asynchronously. A panic in f resolves to
// Err([outcome.UnknownError]).
func GoResult[T, E any](f func() result.Result[T, E]) *Result[T, E] {
	return newResult[T, E](spawn(func() outcome.Raw {
		return eraseResult(f())
	}, foldErr), nil)
}

// WrapResult wraps an arbitrary (value, error)-shaped future. A
// returned error lands in the failure lane; a panic folds into
// Err([outcome.UnknownError]). Neither escapes the handle.
func WrapResult[T any](await func() (T, error)) *Result[T, error] {
	return newResult[T, error](spawn(func() outcome.Raw {
		v, err := await()
		if err != nil {
			return outcome.RawErr(err)
		}
		return outcome.RawOk(v)
	}, foldErr), nil)
}

// NullableResult lifts [result.FromNullable] to an async producer.
func NullableResult[T any](f func() *T) *Result[T, error] {
	return GoResult(func() result.Result[T, error] { return result.FromNullable(f()) })
}

// FalsyResult lifts [result.FromFalsy] to an async producer.
func FalsyResult[T any](f func() T) *Result[T, error] {
	return GoResult(func() result.Result[T, error] { return result.FromFalsy(f()) })
}

// PredicateResult lifts [result.FromPredicate] to an async producer.
func PredicateResult[T any](f func() T, pred outcome.Predicate[T]) *Result[T, error] {
	return GoResult(func() result.Result[T, error] { return result.FromPredicate(f(), pred) })
}

// RecoverResult lifts [result.Recover]: the producer's (value, error)
// pair resolves the handle, and a panic folds into
// Err([outcome.UnknownError]).
func RecoverResult[T any](f func() (T, error)) *Result[T, error] {
	return newResult[T, error](spawn(func() outcome.Raw {
		v, err := f()
		if err != nil {
			return outcome.RawErr(err)
		}
		return outcome.RawOk(v)
	}, foldErr), nil)
}

// MapResult enqueues a transformation of the success value. The
// underlying future is not forced; consecutive enqueued steps run in
// one drain pass.
func MapResult[T, U, E any](r *Result[T, E], f func(T) U) *Result[U, E] {
	return newResult[U, E](r.fut, extend(r.queue, outcome.Call{
		Op:   outcome.OpMap,
		Args: []outcome.Erased{eraseFn(f)},
	}))
}

// MapErr enqueues a transformation of the failure value.
func MapErr[T, E, F any](r *Result[T, E], f func(E) F) *Result[T, F] {
	return newResult[T, F](r.fut, extend(r.queue, outcome.Call{
		Op:   outcome.OpMapErr,
		Args: []outcome.Erased{eraseFn(f)},
	}))
}

// MapBoth enqueues transformations of both channels.
func MapBoth[T, U, E, F any](r *Result[T, E], onOk func(T) U, onErr func(E) F) *Result[U, F] {
	return newResult[U, F](r.fut, extend(r.queue, outcome.Call{
		Op:   outcome.OpMapBoth,
		Args: []outcome.Erased{eraseFn(onOk), eraseFn(onErr)},
	}))
}

// Filter enqueues a predicate test: a success value that fails pred
// resolves to Err([outcome.FailedPredicateError]). Requires E to be
// satisfiable by error values; use [Result.FilterFunc] otherwise.
func (r *Result[T, E]) Filter(pred outcome.Predicate[T]) *Result[T, E] {
	return newResult[T, E](r.fut, extend(r.queue, outcome.Call{
		Op:   outcome.OpFilter,
		Args: []outcome.Erased{erasePred(pred), (func(outcome.Erased) outcome.Erased)(nil)},
	}))
}

// FilterFunc enqueues a predicate test with an explicit error factory
// receiving the rejected value.
func (r *Result[T, E]) FilterFunc(pred outcome.Predicate[T], onFail func(T) E) *Result[T, E] {
	return newResult[T, E](r.fut, extend(r.queue, outcome.Call{
		Op:   outcome.OpFilter,
		Args: []outcome.Erased{erasePred(pred), eraseFn(onFail)},
	}))
}

// AndThenResult drains r and, on success, chains into the handle
// produced by f. Failures pass through. The fork happens on a new
// future; a panic in f folds into the failure lane.
func AndThenResult[T, U, E any](r *Result[T, E], f func(T) *Result[U, E]) *Result[U, E] {
	return newResult[U, E](spawn(func() outcome.Raw {
		raw := r.drain()
		if raw.Tag != outcome.TagOk {
			return raw
		}
		return f(raw.Val.(T)).drain()
	}, foldErr), nil)
}

// Or drains r and, on failure, chains into the lazily produced
// fallback. f is only called on failure.
func (r *Result[T, E]) Or(f func(E) *Result[T, E]) *Result[T, E] {
	return newResult[T, E](spawn(func() outcome.Raw {
		raw := r.drain()
		if raw.Tag == outcome.TagOk {
			return raw
		}
		return f(raw.Err.(E)).drain()
	}, foldErr), nil)
}

// Swap drains r and exchanges the channels.
func (r *Result[T, E]) Swap() *Result[E, T] {
	return newResult[E, T](spawn(func() outcome.Raw {
		raw := r.drain()
		if raw.Tag == outcome.TagOk {
			return outcome.RawErr(raw.Val)
		}
		return outcome.RawOk(raw.Err)
	}, foldErr), nil)
}

// ToOption drains r and drops the error channel.
func (r *Result[T, E]) ToOption() *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		raw := r.drain()
		if raw.Tag == outcome.TagOk {
			return outcome.RawSome(raw.Val)
		}
		return outcome.RawNone()
	}, foldNone), nil)
}

// OptionToResult drains o and lifts it into a deferred result, using
// the error factory for the None case.
func OptionToResult[T, E any](o *Option[T], onNone func() E) *Result[T, E] {
	return newResult[T, E](spawn(func() outcome.Raw {
		raw := o.drain()
		if raw.Tag == outcome.TagSome {
			return outcome.RawOk(raw.Val)
		}
		return outcome.RawErr(onNone())
	}, foldErr), nil)
}

// Await blocks until the handle resolves, drains the pending queue and
// returns the synchronous result.
func (r *Result[T, E]) Await() result.Result[T, E] {
	return typedResult[T, E](r.drain())
}

// Get awaits and returns the success value and whether the result is
// Ok.
func (r *Result[T, E]) Get() (T, bool) {
	return r.Await().Get()
}

// GetErr awaits and returns the failure value and whether the result
// is Err.
func (r *Result[T, E]) GetErr() (E, bool) {
	return r.Await().GetErr()
}

// IsOk awaits and reports success.
func (r *Result[T, E]) IsOk() bool {
	return r.drain().Tag == outcome.TagOk
}

// IsErr awaits and reports failure.
func (r *Result[T, E]) IsErr() bool {
	return !r.IsOk()
}

// Unwrap awaits and returns the success value, panicking with
// [outcome.WrongVariantError] on Err.
func (r *Result[T, E]) Unwrap() T {
	return r.Await().Unwrap()
}

// UnwrapErr awaits and returns the failure value, panicking on Ok.
func (r *Result[T, E]) UnwrapErr() E {
	return r.Await().UnwrapErr()
}

// UnwrapOr awaits and returns the success value, or fallback on Err.
func (r *Result[T, E]) UnwrapOr(fallback T) T {
	return r.Await().UnwrapOr(fallback)
}

// UnwrapOrElse awaits and returns the success value, or the result of
// applying f to the failure.
func (r *Result[T, E]) UnwrapOrElse(f func(E) T) T {
	return r.Await().UnwrapOrElse(f)
}

// MatchResult awaits and applies the handler for the resolved variant.
func MatchResult[T, E, R any](r *Result[T, E], onOk func(T) R, onErr func(E) R) R {
	return result.Match(r.Await(), onOk, onErr)
}

// ZipResult combines two deferred results into a pair iff both resolve
// Ok; the first failure left to right propagates.
func ZipResult[A, B, E any](a *Result[A, E], b *Result[B, E]) *Result[result.Pair[A, B], E] {
	return ZipWithResult(a, b, func(x A, y B) result.Pair[A, B] {
		return result.Pair[A, B]{First: x, Second: y}
	})
}

// ZipWithResult combines two deferred results with f iff both resolve
// Ok. Expressed through AndThen/Map, so a resolves before b.
func ZipWithResult[A, B, C, E any](a *Result[A, E], b *Result[B, E], f func(A, B) C) *Result[C, E] {
	return AndThenResult(a, func(x A) *Result[C, E] {
		return MapResult(b, func(y B) C { return f(x, y) })
	})
}
