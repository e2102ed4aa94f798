// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package outcome provides the shared foundation for the option, result
// and async packages: default error values, predicate function types,
// the type-erased variant carrier, and the implementation registry.
//
// The library as a whole is an error-handling toolkit built around two
// sum types. [code.hybscloud.com/outcome/option] represents a value that
// may be absent, [code.hybscloud.com/outcome/result] a computation that
// may fail with a typed error, and [code.hybscloud.com/outcome/async]
// wraps both around a deferred computation while keeping the same
// combinator vocabulary. Failures are ordinary return values, never
// panics; panics are reserved for defects (wrong-variant unwraps and
// missing registry bindings).
//
// # Error Taxonomy
//
// A small closed set of error values serves as defaults wherever a
// constructor or combinator must produce a failure on the caller's
// behalf:
//
//   - [ErrNoValue]: absence where a value was required
//   - [FailedPredicateError]: a predicate rejected a value
//   - [WrongVariantError]: unwrap on the wrong variant (defect payload)
//   - [UnknownError]: a recovered panic folded into the failure channel
//
// # Predicates
//
// [Predicate] is a plain boolean test. [Refinement] is the narrowing
// form: it reports acceptance together with the narrowed payload, which
// is as close as Go comes to a type-narrowing guard.
//
// # Raw Carrier
//
// [Raw] is the type-erased resolved form of an Option or Result value.
// Heterogeneous payloads flow through the async operation queue erased;
// concrete types are recovered via type assertions at the typed edges.
//
// # Registry
//
// [Register] and [Lookup] maintain a canonical-name → operations table.
// Each variant package registers its [Ops] vtable at init; the async
// queue drain dispatches queued calls through the binding registered
// under the handle's canonical name. Exactly one binding is active per
// name; Register replaces and returns a func restoring the previous
// binding, which tests use to avoid leaking swapped implementations.
// Looking up an unbound name is a configuration defect and panics.
//
// # Do-Notation Context
//
// [Ctx] is the accumulation record for the bind/let do-notation offered
// by the variant packages. Extension always clones, so contexts bound in
// earlier steps stay valid after a later step fails.
package outcome
