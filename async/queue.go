// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/outcome"

// The pending-operation queue is an owned, immutable slice on each
// handle. Enqueueing clones and extends; the original slice is never
// appended to in place, so chains forked from a common origin cannot
// observe each other's operations.

// extend returns a fresh slice holding q plus c. The copy is explicit
// rather than append-based so the result never aliases q's backing
// array.
func extend(q []outcome.Call, c outcome.Call) []outcome.Call {
	out := make([]outcome.Call, len(q)+1)
	copy(out, q)
	out[len(q)] = c
	return out
}

// drainQueue applies each queued call to r in insertion order through
// the vtable registered under name, feeding each step's output into
// the next. Queued operations run only here, never at enqueue time.
func drainQueue(name string, r outcome.Raw, q []outcome.Call) outcome.Raw {
	if len(q) == 0 {
		return r
	}
	ops := outcome.Lookup(name)
	for _, c := range q {
		r = ops.Apply(r, c)
	}
	return r
}

// eraseFn adapts a typed transformation to the erased queue form.
func eraseFn[T, U any](f func(T) U) func(outcome.Erased) outcome.Erased {
	return func(v outcome.Erased) outcome.Erased { return f(v.(T)) }
}

// erasePred adapts a typed predicate to the erased queue form.
func erasePred[T any](pred outcome.Predicate[T]) func(outcome.Erased) bool {
	return func(v outcome.Erased) bool { return pred(v.(T)) }
}
