// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

// Type-changing combinators. These are package functions because Go
// methods cannot introduce type parameters.

// Map applies f to the value of a present option and returns the
// transformed option. An absent option passes through unchanged.
//
// Map never flattens: mapping with a function that returns an Option
// yields a visibly nested Option[Option[U]]. Use [AndThen] when f
// itself produces an option.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// AndThen applies f to the value of a present option and flattens the
// returned option (monadic bind). An absent option passes through.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if v, ok := o.Get(); ok {
		return v
	}
	return None[T]()
}

// Match applies the handler for the variant the option holds.
// The two cases are exhaustive.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// Zip combines two options into a pair iff both are present, otherwise
// returns None. Absence propagates left to right.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})
}

// ZipWith combines two options with f iff both are present.
func ZipWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	av, ok := a.Get()
	if !ok {
		return None[C]()
	}
	bv, ok := b.Get()
	if !ok {
		return None[C]()
	}
	return Some(f(av, bv))
}

// Pair is the tuple type produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Values filter-maps a slice of options down to the present payloads,
// dropping absent entries and preserving order.
func Values[T any](opts []Option[T]) []T {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if v, ok := o.Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
