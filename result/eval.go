// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import "sync/atomic"

// Short-circuit evaluator.
//
// The canonical form of sequencing remains the [AndThen] chain; Eval is
// sugar over it for bodies that read better linearly. The body receives
// a one-shot *Scope and calls [Try] at each point where a result must
// be Ok; the first failure aborts the body immediately — no later
// statement executes — and becomes the result of the whole Eval.

// Scope marks one Eval body. It is valid only for the duration of that
// body; using it afterwards is a defect.
type Scope struct {
	done atomic.Uintptr
}

// scopeAbort is the sentinel panicked by Try and recovered by Eval.
// The scope pointer ties the abort to its own evaluator; the failure
// travels erased and is re-typed by Eval.
type scopeAbort struct {
	scope *Scope
	err   any
}

// Try returns the result's success value, or aborts the enclosing Eval
// body with the failure when the result is Err. It must only be called
// from inside the body that owns s, and the failure type must match the
// Eval's E.
func Try[U, E any](s *Scope, r Result[U, E]) U {
	if s.done.Load() != 0 {
		panic("outcome: scope used outside its Eval body")
	}
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.GetErr()
	panic(&scopeAbort{scope: s, err: e})
}

// Eval runs body with a fresh scope. If every Try succeeds, Eval
// returns the result the body returns; the first failing Try aborts the
// body and Eval returns that failure. Evaluation is strictly left to
// right and synchronous — statements after the aborting Try never run.
func Eval[T, E any](body func(*Scope) Result[T, E]) (out Result[T, E]) {
	s := &Scope{}
	defer func() {
		s.done.Store(1)
		if r := recover(); r != nil {
			if a, ok := r.(*scopeAbort); ok && a.scope == s {
				out = Err[T](a.err.(E))
				return
			}
			panic(r)
		}
	}()
	return body(s)
}
