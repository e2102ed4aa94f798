// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "code.hybscloud.com/outcome"

// Do-notation: sequential binding of several option-producing steps
// into one accumulated [outcome.Ctx], short-circuiting on the first
// None. Each step extends a clone of the context, so a context captured
// by an earlier step stays valid after a later step fails.
//
//	out := option.Bind(
//	    option.BindTo(lookupUser(id), "user"),
//	    "quota",
//	    func(c outcome.Ctx) option.Option[int] {
//	        return lookupQuota(outcome.CtxValue[User](c, "user"))
//	    },
//	)

// BindTo wraps the option's value under key inside a fresh context.
func BindTo[T any](o Option[T], key string) Option[outcome.Ctx] {
	return Map(o, func(v T) outcome.Ctx {
		return outcome.Ctx{}.With(key, v)
	})
}

// Bind runs f against the accumulated context and merges its result
// under key. The chain short-circuits on the first None.
func Bind[U any](o Option[outcome.Ctx], key string, f func(outcome.Ctx) Option[U]) Option[outcome.Ctx] {
	return AndThen(o, func(c outcome.Ctx) Option[outcome.Ctx] {
		return Map(f(c), func(v U) outcome.Ctx {
			return c.With(key, v)
		})
	})
}

// Let is Bind for a producer returning a raw value instead of an
// option.
func Let[U any](o Option[outcome.Ctx], key string, f func(outcome.Ctx) U) Option[outcome.Ctx] {
	return Map(o, func(c outcome.Ctx) outcome.Ctx {
		return c.With(key, f(c))
	})
}
