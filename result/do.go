// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import "code.hybscloud.com/outcome"

// Do-notation: sequential binding of several result-producing steps
// into one accumulated [outcome.Ctx], short-circuiting on the first
// failure. Each step extends a clone of the context, so a context
// captured by an earlier step stays valid after a later step fails.

// BindTo wraps the result's value under key inside a fresh context.
func BindTo[T, E any](r Result[T, E], key string) Result[outcome.Ctx, E] {
	return Map(r, func(v T) outcome.Ctx {
		return outcome.Ctx{}.With(key, v)
	})
}

// Bind runs f against the accumulated context and merges its result
// under key. The chain short-circuits on the first failure.
func Bind[U, E any](r Result[outcome.Ctx, E], key string, f func(outcome.Ctx) Result[U, E]) Result[outcome.Ctx, E] {
	return AndThen(r, func(c outcome.Ctx) Result[outcome.Ctx, E] {
		return Map(f(c), func(v U) outcome.Ctx {
			return c.With(key, v)
		})
	})
}

// Let is Bind for a producer returning a raw value instead of a
// result.
func Let[U, E any](r Result[outcome.Ctx, E], key string, f func(outcome.Ctx) U) Result[outcome.Ctx, E] {
	return Map(r, func(c outcome.Ctx) outcome.Ctx {
		return c.With(key, f(c))
	})
}
