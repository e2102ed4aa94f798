// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/outcome/option"
)

func TestEvalAllPresent(t *testing.T) {
	out := option.Eval(func(s *option.Scope) option.Option[int] {
		a := option.Try(s, option.Some(1))
		b := option.Try(s, option.Some(2))
		return option.Some(a + b)
	})
	require.Equal(t, option.Some(3), out)
}

func TestEvalShortCircuits(t *testing.T) {
	// The step after the first None must never run.
	thirdCalls := 0
	third := func() option.Option[int] {
		thirdCalls++
		return option.Some(3)
	}

	out := option.Eval(func(s *option.Scope) option.Option[int] {
		_ = option.Try(s, option.Some(1))
		_ = option.Try(s, option.None[int]())
		return option.Some(option.Try(s, third()))
	})

	require.True(t, out.IsNone())
	require.Equal(t, 0, thirdCalls)
}

func TestEvalLeftToRight(t *testing.T) {
	var order []int
	step := func(n int, o option.Option[int]) option.Option[int] {
		order = append(order, n)
		return o
	}

	option.Eval(func(s *option.Scope) option.Option[int] {
		_ = option.Try(s, step(1, option.Some(1)))
		_ = option.Try(s, step(2, option.None[int]()))
		_ = option.Try(s, step(3, option.Some(3)))
		return option.Some(0)
	})

	require.Equal(t, []int{1, 2}, order)
}

func TestEvalNestedScopesIndependent(t *testing.T) {
	out := option.Eval(func(outer *option.Scope) option.Option[string] {
		inner := option.Eval(func(s *option.Scope) option.Option[int] {
			return option.Some(option.Try(s, option.None[int]()))
		})
		// The inner abort must not leak into the outer body.
		require.True(t, inner.IsNone())
		return option.Some("outer survived")
	})
	require.Equal(t, option.Some("outer survived"), out)
}

func TestEvalForeignPanicPropagates(t *testing.T) {
	require.PanicsWithValue(t, "user bug", func() {
		option.Eval(func(s *option.Scope) option.Option[int] {
			panic("user bug")
		})
	})
}

func TestEvalScopeEscapeIsDefect(t *testing.T) {
	var escaped *option.Scope
	option.Eval(func(s *option.Scope) option.Option[int] {
		escaped = s
		return option.Some(1)
	})
	require.PanicsWithValue(t, "outcome: scope used outside its Eval body", func() {
		option.Try(escaped, option.Some(2))
	})
}

func TestEvalEquivalentToAndThenChain(t *testing.T) {
	half := func(n int) option.Option[int] {
		if n%2 != 0 {
			return option.None[int]()
		}
		return option.Some(n / 2)
	}

	chain := option.AndThen(option.AndThen(option.Some(8), half), half)
	body := option.Eval(func(s *option.Scope) option.Option[int] {
		a := option.Try(s, half(8))
		return half(a)
	})
	require.True(t, chain.Equal(body))
}
