// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package async provides deferred Option and Result values: handles
// over a computation that has not resolved yet, exposing the same
// combinator vocabulary as the synchronous packages.
//
// # Handles and Queues
//
// A handle pairs a one-shot future (the producer) with an owned,
// append-only queue of pending operations. Handles are immutable:
// every enqueueing combinator returns a new handle that shares the
// underlying future and extends a cloned queue, so a handle can safely
// feed several independent downstream chains — two handles never share
// queue state.
//
// # Chaining Policy
//
// Operations whose outcome does not depend on branching the tag —
// [MapOption], [MapResult], [MapErr], [MapBoth], the Filter methods —
// are enqueued without forcing resolution, batching several logical
// steps into a single resolution round trip. Operations that must
// inspect the tag — [AndThenOption], [AndThenResult], the Or methods —
// drain first and fork a new future chained off the resolved value.
// Consumers (Await, Match, the unwrap family) always drain first.
// Do-notation and Zip are expressed through AndThen/Map and inherit
// these rules.
//
// # Draining
//
// Draining resolves the future, erases the value to an [outcome.Raw]
// carrier, applies each queued call in FIFO order through the [outcome.Ops]
// vtable registered under the handle's canonical name, and recovers the
// typed variant at the edge. A handle drains at most once; the drained
// value is memoized.
//
// # Never Rejects
//
// A deferred value's failure lane is the only way out: panics in
// producers and chained callbacks are caught and folded into None
// (options) or Err with [outcome.UnknownError] (results). Nothing this
// package starts can escape as an unhandled panic on the producing
// goroutine. Cancellation is not supported; a future runs to
// completion once created.
package async
