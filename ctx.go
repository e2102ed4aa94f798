// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "maps"

// Ctx is the accumulation record for do-notation. Keys are the names
// passed to BindTo/Bind/Let in the variant packages.
//
// Ctx values are treated as immutable: With clones before extending, so
// a context captured by an earlier bind step stays valid after a later
// step fails or extends its own copy.
type Ctx map[string]Erased

// With returns a copy of c extended with key bound to v.
// The receiver is never mutated.
func (c Ctx) With(key string, v Erased) Ctx {
	out := maps.Clone(c)
	if out == nil {
		out = make(Ctx, 1)
	}
	out[key] = v
	return out
}

// CtxValue returns the value bound under key, asserted to T.
// A missing binding is a programming error and panics.
func CtxValue[T any](c Ctx, key string) T {
	v, ok := c[key]
	if !ok {
		panic("outcome: no binding for " + key)
	}
	return v.(T)
}
