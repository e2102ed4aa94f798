// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"sync/atomic"

	"code.hybscloud.com/outcome"
)

// Asynchronous short-circuit evaluator. Semantics match the
// synchronous evaluators except that each Try awaits its handle before
// inspecting the tag. Suspension points remain strictly sequential —
// the body never observes two handles resolving concurrently.

// Scope marks one Eval body. It is valid only for the duration of that
// body; using it afterwards is a defect.
type Scope struct {
	done atomic.Uintptr
}

// scopeAbort carries the aborting carrier out of the body.
type scopeAbort struct {
	scope *Scope
	raw   outcome.Raw
}

func (s *Scope) check() {
	if s.done.Load() != 0 {
		panic("outcome: scope used outside its Eval body")
	}
}

// TryOption awaits o and returns its value, or aborts the enclosing
// Eval body when the option resolves absent.
func TryOption[U any](s *Scope, o *Option[U]) U {
	s.check()
	r := o.drain()
	if r.Tag == outcome.TagSome {
		return r.Val.(U)
	}
	panic(&scopeAbort{scope: s, raw: outcome.RawNone()})
}

// TryResult awaits r and returns its success value, or aborts the
// enclosing Eval body with the failure.
func TryResult[U, E any](s *Scope, r *Result[U, E]) U {
	s.check()
	raw := r.drain()
	if raw.Tag == outcome.TagOk {
		return raw.Val.(U)
	}
	panic(&scopeAbort{scope: s, raw: raw})
}

// runBody executes body under a fresh scope, translating its own
// scope aborts into carriers. Foreign panics re-raise and are folded
// by the caller's spawn.
func runBody(body func(*Scope) outcome.Raw) (out outcome.Raw) {
	s := &Scope{}
	defer func() {
		s.done.Store(1)
		if r := recover(); r != nil {
			if a, ok := r.(*scopeAbort); ok && a.scope == s {
				out = a.raw
				return
			}
			panic(r)
		}
	}()
	return body(s)
}

// EvalOption runs body on a new future. The first absent TryOption
// aborts the body and resolves the returned handle to None; otherwise
// the handle resolves to whatever the body returns. A foreign panic in
// the body also resolves to None.
func EvalOption[T any](body func(*Scope) *Option[T]) *Option[T] {
	return newOption[T](spawn(func() outcome.Raw {
		return runBody(func(s *Scope) outcome.Raw {
			return body(s).drain()
		})
	}, foldNone), nil)
}

// EvalResult runs body on a new future. The first failing TryResult
// aborts the body and resolves the returned handle to that failure;
// otherwise the handle resolves to whatever the body returns. A
// foreign panic folds into Err([outcome.UnknownError]).
func EvalResult[T, E any](body func(*Scope) *Result[T, E]) *Result[T, E] {
	return newResult[T, E](spawn(func() outcome.Raw {
		return runBody(func(s *Scope) outcome.Raw {
			return body(s).drain()
		})
	}, foldErr), nil)
}
