// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/option"
)

func TestDoChain(t *testing.T) {
	out := option.Let(
		option.Bind(
			option.BindTo(option.Some(2), "x"),
			"y",
			func(c outcome.Ctx) option.Option[int] {
				return option.Some(outcome.CtxValue[int](c, "x") * 10)
			},
		),
		"sum",
		func(c outcome.Ctx) int {
			return outcome.CtxValue[int](c, "x") + outcome.CtxValue[int](c, "y")
		},
	)

	c := out.Unwrap()
	require.Equal(t, 2, outcome.CtxValue[int](c, "x"))
	require.Equal(t, 20, outcome.CtxValue[int](c, "y"))
	require.Equal(t, 22, outcome.CtxValue[int](c, "sum"))
}

func TestDoShortCircuits(t *testing.T) {
	letCalls := 0
	out := option.Let(
		option.Bind(
			option.BindTo(option.Some(2), "x"),
			"y",
			func(outcome.Ctx) option.Option[int] { return option.None[int]() },
		),
		"z",
		func(outcome.Ctx) int { letCalls++; return 0 },
	)

	require.True(t, out.IsNone())
	require.Equal(t, 0, letCalls)
}

func TestDoEarlierContextSurvivesLaterFailure(t *testing.T) {
	var afterBindTo outcome.Ctx
	out := option.Bind(
		option.Bind(
			option.BindTo(option.Some(1), "a"),
			"b",
			func(c outcome.Ctx) option.Option[int] {
				afterBindTo = c
				return option.Some(2)
			},
		),
		"c",
		func(outcome.Ctx) option.Option[int] { return option.None[int]() },
	)

	require.True(t, out.IsNone())
	// The context captured before the failing step is intact.
	require.Equal(t, outcome.Ctx{"a": 1}, afterBindTo)
}
