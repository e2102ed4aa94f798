// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/outcome"

// future is a one-shot resolved-variant producer. The value is written
// exactly once before done closes and never mutated afterwards, so any
// number of handles may await the same future.
type future struct {
	done chan struct{}
	val  outcome.Raw
}

// spawn starts produce on its own goroutine. A panic in produce is
// folded through onPanic into the carrier — the goroutine never dies
// with an unhandled panic.
func spawn(produce func() outcome.Raw, onPanic func(cause any) outcome.Raw) *future {
	f := &future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.val = onPanic(p)
			}
		}()
		f.val = produce()
	}()
	return f
}

// settled returns an already-resolved future.
func settled(v outcome.Raw) *future {
	f := &future{done: make(chan struct{}), val: v}
	close(f.done)
	return f
}

// await blocks until the future resolves.
func (f *future) await() outcome.Raw {
	<-f.done
	return f.val
}

// foldNone folds a recovered panic into the absent lane.
func foldNone(any) outcome.Raw { return outcome.RawNone() }

// foldErr folds a recovered panic into the failure lane as an
// UnknownError.
func foldErr(cause any) outcome.Raw {
	return outcome.RawErr(outcome.Unknown(cause))
}
