// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// Predicate reports whether a value satisfies a condition.
// Used by filter, contains and the predicate constructors.
type Predicate[T any] func(T) bool

// Refinement is the narrowing form of a predicate: it reports acceptance
// together with the narrowed payload. A Refinement[any, U] built from a
// type assertion is the Go rendering of a type guard:
//
//	asString := func(v any) (string, bool) { s, ok := v.(string); return s, ok }
type Refinement[T, U any] func(T) (U, bool)

// Not inverts a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}
