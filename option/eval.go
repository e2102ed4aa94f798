// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import "sync/atomic"

// Short-circuit evaluator.
//
// The canonical form of sequencing remains the [AndThen] chain; Eval is
// sugar over it for bodies that read better linearly. The body receives
// a one-shot *Scope and calls [Try] at each point where an option must
// be present; the first None aborts the body immediately — no later
// statement executes — and becomes the result of the whole Eval.

// Scope marks one Eval body. It is valid only for the duration of that
// body; using it afterwards is a defect.
type Scope struct {
	done atomic.Uintptr
}

// scopeAbort is the sentinel panicked by Try and recovered by Eval.
// The scope pointer ties the abort to its own evaluator so aborts from
// a nested Eval propagate through an outer recover untouched.
type scopeAbort struct {
	scope *Scope
}

// Try returns the option's value, or aborts the enclosing Eval body
// when the option is absent. It must only be called from inside the
// body that owns s.
func Try[U any](s *Scope, o Option[U]) U {
	if s.done.Load() != 0 {
		panic("outcome: scope used outside its Eval body")
	}
	if v, ok := o.Get(); ok {
		return v
	}
	panic(&scopeAbort{scope: s})
}

// Eval runs body with a fresh scope. If every Try succeeds, Eval
// returns the option the body returns; the first absent Try aborts the
// body and Eval returns None. Evaluation is strictly left to right and
// synchronous — statements after the aborting Try never run.
func Eval[T any](body func(*Scope) Option[T]) (out Option[T]) {
	s := &Scope{}
	defer func() {
		s.done.Store(1)
		if r := recover(); r != nil {
			if a, ok := r.(*scopeAbort); ok && a.scope == s {
				out = None[T]()
				return
			}
			panic(r)
		}
	}()
	return body(s)
}
