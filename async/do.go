// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/outcome"

// Do-notation over deferred values. Every operation here is expressed
// through AndThen/Map and therefore inherits the chaining policy:
// BindTo and Let enqueue, Bind forks.

// BindToOption wraps the deferred option's value under key inside a
// fresh context.
func BindToOption[T any](o *Option[T], key string) *Option[outcome.Ctx] {
	return MapOption(o, func(v T) outcome.Ctx {
		return outcome.Ctx{}.With(key, v)
	})
}

// BindOption runs f against the accumulated context and merges its
// resolved value under key, short-circuiting on the first None.
func BindOption[U any](o *Option[outcome.Ctx], key string, f func(outcome.Ctx) *Option[U]) *Option[outcome.Ctx] {
	return AndThenOption(o, func(c outcome.Ctx) *Option[outcome.Ctx] {
		return MapOption(f(c), func(v U) outcome.Ctx {
			return c.With(key, v)
		})
	})
}

// LetOption is BindOption for a producer returning a raw value.
func LetOption[U any](o *Option[outcome.Ctx], key string, f func(outcome.Ctx) U) *Option[outcome.Ctx] {
	return MapOption(o, func(c outcome.Ctx) outcome.Ctx {
		return c.With(key, f(c))
	})
}

// BindToResult wraps the deferred result's value under key inside a
// fresh context.
func BindToResult[T, E any](r *Result[T, E], key string) *Result[outcome.Ctx, E] {
	return MapResult(r, func(v T) outcome.Ctx {
		return outcome.Ctx{}.With(key, v)
	})
}

// BindResult runs f against the accumulated context and merges its
// resolved value under key, short-circuiting on the first failure.
func BindResult[U, E any](r *Result[outcome.Ctx, E], key string, f func(outcome.Ctx) *Result[U, E]) *Result[outcome.Ctx, E] {
	return AndThenResult(r, func(c outcome.Ctx) *Result[outcome.Ctx, E] {
		return MapResult(f(c), func(v U) outcome.Ctx {
			return c.With(key, v)
		})
	})
}

// LetResult is BindResult for a producer returning a raw value.
func LetResult[U, E any](r *Result[outcome.Ctx, E], key string, f func(outcome.Ctx) U) *Result[outcome.Ctx, E] {
	return MapResult(r, func(c outcome.Ctx) outcome.Ctx {
		return c.With(key, f(c))
	})
}
