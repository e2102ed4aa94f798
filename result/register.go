// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import "code.hybscloud.com/outcome"

// rawOps is the Result operation vtable registered under
// [outcome.ResultName]. The async queue drain dispatches queued calls
// through it against type-erased carriers.
type rawOps struct{}

func (rawOps) CanonicalName() string { return outcome.ResultName }

func (rawOps) Apply(r outcome.Raw, c outcome.Call) outcome.Raw {
	switch c.Op {
	case outcome.OpMap:
		if r.Tag == outcome.TagOk {
			f := c.Args[0].(func(outcome.Erased) outcome.Erased)
			return outcome.RawOk(f(r.Val))
		}
		return r
	case outcome.OpMapErr:
		if r.Tag == outcome.TagErr {
			f := c.Args[0].(func(outcome.Erased) outcome.Erased)
			return outcome.RawErr(f(r.Err))
		}
		return r
	case outcome.OpMapBoth:
		if r.Tag == outcome.TagOk {
			f := c.Args[0].(func(outcome.Erased) outcome.Erased)
			return outcome.RawOk(f(r.Val))
		}
		f := c.Args[1].(func(outcome.Erased) outcome.Erased)
		return outcome.RawErr(f(r.Err))
	case outcome.OpFilter:
		if r.Tag == outcome.TagOk {
			pred := c.Args[0].(func(outcome.Erased) bool)
			if !pred(r.Val) {
				if onFail, ok := c.Args[1].(func(outcome.Erased) outcome.Erased); ok && onFail != nil {
					return outcome.RawErr(onFail(r.Val))
				}
				return outcome.RawErr(error(&outcome.FailedPredicateError{Value: r.Val}))
			}
		}
		return r
	}
	panic("outcome: result cannot apply operation " + c.Op)
}

func init() {
	// Default binding; tests may swap it via outcome.Register.
	outcome.Register(rawOps{})
}
