// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "code.hybscloud.com/outcome"

// rawOps is the Option operation vtable registered under
// [outcome.OptionName]. The async queue drain dispatches queued calls
// through it against type-erased carriers.
type rawOps struct{}

func (rawOps) CanonicalName() string { return outcome.OptionName }

func (rawOps) Apply(r outcome.Raw, c outcome.Call) outcome.Raw {
	switch c.Op {
	case outcome.OpMap, outcome.OpMapBoth:
		// mapBoth degenerates to map: an Option has no failure payload.
		if r.Tag == outcome.TagSome {
			f := c.Args[0].(func(outcome.Erased) outcome.Erased)
			return outcome.RawSome(f(r.Val))
		}
		return r
	case outcome.OpMapErr:
		return r
	case outcome.OpFilter:
		if r.Tag == outcome.TagSome {
			pred := c.Args[0].(func(outcome.Erased) bool)
			if !pred(r.Val) {
				return outcome.RawNone()
			}
		}
		return r
	}
	panic("outcome: option cannot apply operation " + c.Op)
}

func init() {
	// Default binding; tests may swap it via outcome.Register.
	outcome.Register(rawOps{})
}
