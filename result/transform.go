// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

// Type-changing combinators. These are package functions because Go
// methods cannot introduce type parameters.

// Map applies f to the success value and returns the transformed
// result. A failure passes through unchanged.
//
// Map never flattens: mapping with a function that returns a Result
// yields a visibly nested Result. Use [AndThen] when f itself produces
// a result.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if v, ok := r.Get(); ok {
		return Ok[U, E](f(v))
	}
	e, _ := r.GetErr()
	return Err[U](e)
}

// MapErr applies f to the failure value. A success passes through.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if e, isErr := r.GetErr(); isErr {
		return Err[T](f(e))
	}
	v, _ := r.Get()
	return Ok[T, F](v)
}

// MapBoth applies onOk to a success value or onErr to a failure.
func MapBoth[T, U, E, F any](r Result[T, E], onOk func(T) U, onErr func(E) F) Result[U, F] {
	if v, ok := r.Get(); ok {
		return Ok[U, F](onOk(v))
	}
	e, _ := r.GetErr()
	return Err[U](onErr(e))
}

// AndThen applies f to the success value and flattens the returned
// result (monadic bind). A failure passes through.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if v, ok := r.Get(); ok {
		return f(v)
	}
	e, _ := r.GetErr()
	return Err[U](e)
}

// Flatten collapses one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if v, ok := r.Get(); ok {
		return v
	}
	e, _ := r.GetErr()
	return Err[T](e)
}

// Match applies the handler for the variant the result holds.
// The two cases are exhaustive.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if v, ok := r.Get(); ok {
		return onOk(v)
	}
	e, _ := r.GetErr()
	return onErr(e)
}

// Zip combines two results into a pair iff both are Ok, otherwise
// propagates the first failure left to right.
func Zip[A, B, E any](a Result[A, E], b Result[B, E]) Result[Pair[A, B], E] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith combines two results with f iff both are Ok, otherwise
// propagates the first failure left to right.
func ZipWith[A, B, C, E any](a Result[A, E], b Result[B, E], f func(A, B) C) Result[C, E] {
	av, ok := a.Get()
	if !ok {
		e, _ := a.GetErr()
		return Err[C](e)
	}
	bv, ok := b.Get()
	if !ok {
		e, _ := b.GetErr()
		return Err[C](e)
	}
	return Ok[C, E](f(av, bv))
}

// Pair is the tuple type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Values filter-maps a slice of results down to the success payloads,
// dropping failures and preserving order.
func Values[T, E any](results []Result[T, E]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if v, ok := r.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
