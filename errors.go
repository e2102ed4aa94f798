// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "errors"

// Default error values.
//
// The taxonomy is closed: these four cover every failure the library
// produces on the caller's behalf. User code supplies its own error
// values through the *Func constructor variants.

// ErrNoValue reports absence where a value was required. It is the
// default failure for nullable/falsy lifting and for converting an
// absent Option into a Result.
var ErrNoValue = errors.New("outcome: no value")

// FailedPredicateError reports that a predicate rejected a value.
// It carries the failing value erased so callers can inspect it.
type FailedPredicateError struct {
	Value any
}

func (e *FailedPredicateError) Error() string {
	return "outcome: predicate failed"
}

// WrongVariantError is the defect payload raised by the unwrap family
// when called on the wrong variant. It is panicked, never returned.
type WrongVariantError struct {
	// Op is the operation that was misused, e.g. "Unwrap".
	Op string

	// Tag is the variant the value actually held, e.g. "None".
	Tag string
}

func (e *WrongVariantError) Error() string {
	return "outcome: " + e.Op + " called on " + e.Tag
}

// UnknownError wraps a recovered panic value that was folded into the
// failure channel at a Recover/future boundary.
type UnknownError struct {
	Cause any
}

func (e *UnknownError) Error() string {
	if err, ok := e.Cause.(error); ok {
		return "outcome: recovered: " + err.Error()
	}
	return "outcome: recovered from panic"
}

// Unwrap exposes the cause when it is itself an error, so errors.Is and
// errors.As see through the fold.
func (e *UnknownError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// Unknown folds an arbitrary recovered value into an error.
// Existing *UnknownError values pass through unchanged so nested folds
// do not stack wrappers.
func Unknown(cause any) error {
	if u, ok := cause.(*UnknownError); ok {
		return u
	}
	return &UnknownError{Cause: cause}
}
