// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package result

import (
	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/option"
)

// Cross-conversions between the two halves. Both directions live here:
// this package already depends on option, and Go's package DAG lets the
// reference be direct instead of routed through the registry.

// ToOption drops the error channel: Ok becomes Some, Err becomes None.
func (r Result[T, E]) ToOption() option.Option[T] {
	if v, ok := r.Get(); ok {
		return option.Some(v)
	}
	return option.None[T]()
}

// FromOption lifts an option into a result. The error factory supplies
// the failure for the None case and is only called then.
func FromOption[T, E any](o option.Option[T], onNone func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](onNone())
}

// OptionOr lifts an option pinning E = error, failing with
// [outcome.ErrNoValue] on None.
func OptionOr[T any](o option.Option[T]) Result[T, error] {
	return FromOption(o, func() error { return outcome.ErrNoValue })
}
