// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async_test

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/outcome"
	"code.hybscloud.com/outcome/async"
	"code.hybscloud.com/outcome/result"
)

var errBoom = errors.New("boom")

func TestOkErrResolved(t *testing.T) {
	require.Equal(t, result.Ok[int, error](5), async.Ok[int, error](5).Await())
	require.Equal(t, result.Err[int](errBoom), async.Err[int](errBoom).Await())
}

func TestMapFamilyBatches(t *testing.T) {
	var produced atomic.Int32
	base := async.GoResult(func() result.Result[int, error] {
		produced.Add(1)
		return result.Ok[int, error](2)
	})

	out := async.MapResult(async.MapResult(base,
		func(n int) int { return n * 2 }),
		strconv.Itoa,
	)
	require.Equal(t, result.Ok[string, error]("4"), out.Await())
	require.Equal(t, int32(1), produced.Load())
}

func TestMapErrEnqueued(t *testing.T) {
	wrapped := async.MapErr(async.Err[int](errBoom), func(e error) string { return e.Error() })
	require.Equal(t, "boom", wrapped.Await().UnwrapErr())

	// Ok passes through a mapErr untouched.
	kept := async.MapErr(async.Ok[int, error](5), func(e error) string { return "" })
	require.Equal(t, 5, kept.Await().Unwrap())
}

func TestMapBothEnqueued(t *testing.T) {
	okSide := async.MapBoth(async.Ok[int, error](5), strconv.Itoa, func(e error) string { return e.Error() })
	require.Equal(t, result.Ok[string, string]("5"), okSide.Await())

	errSide := async.MapBoth(async.Err[int](errBoom), strconv.Itoa, func(e error) string { return e.Error() })
	require.Equal(t, result.Err[string]("boom"), errSide.Await())
}

func TestFilterDefaultAndCustom(t *testing.T) {
	gt10 := func(n int) bool { return n > 10 }

	r := async.Ok[int, error](5).Filter(gt10).Await()
	var fp *outcome.FailedPredicateError
	require.ErrorAs(t, r.UnwrapErr(), &fp)
	require.Equal(t, any(5), fp.Value)

	custom := async.Ok[int, string](5).FilterFunc(gt10, func(n int) string {
		return "rejected " + strconv.Itoa(n)
	})
	require.Equal(t, "rejected 5", custom.Await().UnwrapErr())
}

func TestResultQueueOrderingMatchesSynchronous(t *testing.T) {
	f := func(n int) int { return n + 1 }
	p := func(n int) bool { return n%2 == 0 }
	onFail := func(n int) error { return errBoom }

	for _, seed := range []int{1, 2, 3, 4} {
		deferred := async.MapResult(async.Ok[int, error](seed), f).FilterFunc(p, onFail).Await()
		sync := result.Map(result.Ok[int, error](seed), f).FilterFunc(p, onFail)
		require.True(t, deferred.Equal(sync), "seed %d: %v != %v", seed, deferred, sync)
	}
}

func TestAndThenResultBranchesOnTag(t *testing.T) {
	parse := func(s string) *async.Result[int, error] {
		return async.FromResult(result.From(strconv.Atoi(s)))
	}

	require.Equal(t, 42, async.AndThenResult(async.Ok[string, error]("42"), parse).Await().Unwrap())
	require.True(t, async.AndThenResult(async.Ok[string, error]("nope"), parse).Await().IsErr())
	require.Equal(t, errBoom, async.AndThenResult(async.Err[string](errBoom), parse).Await().UnwrapErr())
}

func TestOrReceivesFailure(t *testing.T) {
	var seen error
	out := async.Err[int](errBoom).Or(func(e error) *async.Result[int, error] {
		seen = e
		return async.Ok[int, error](9)
	})
	require.Equal(t, 9, out.Await().Unwrap())
	require.Equal(t, errBoom, seen)
}

func TestSwap(t *testing.T) {
	require.Equal(t, result.Err[error, int](5), async.Ok[int, error](5).Swap().Await())
	require.Equal(t, result.Ok[error, int](errBoom), async.Err[int](errBoom).Swap().Await())
}

func TestResultNeverRejects(t *testing.T) {
	var u *outcome.UnknownError

	r := async.GoResult(func() result.Result[int, error] { panic("producer bug") }).Await()
	require.ErrorAs(t, r.UnwrapErr(), &u)
	require.Equal(t, any("producer bug"), u.Cause)

	chained := async.AndThenResult(async.Ok[int, error](1),
		func(int) *async.Result[int, error] { panic("chain bug") }).Await()
	require.ErrorAs(t, chained.UnwrapErr(), &u)
}

func TestWrapResult(t *testing.T) {
	require.Equal(t, result.Ok[int, error](5), async.WrapResult(func() (int, error) { return 5, nil }).Await())
	require.Equal(t, result.Err[int](errBoom), async.WrapResult(func() (int, error) { return 0, errBoom }).Await())

	var u *outcome.UnknownError
	r := async.WrapResult(func() (int, error) { panic("future bug") }).Await()
	require.ErrorAs(t, r.UnwrapErr(), &u)
}

func TestLiftedResultConstructors(t *testing.T) {
	require.ErrorIs(t,
		async.NullableResult(func() *int { return nil }).Await().UnwrapErr(),
		outcome.ErrNoValue)
	require.ErrorIs(t,
		async.FalsyResult(func() int { return 0 }).Await().UnwrapErr(),
		outcome.ErrNoValue)

	even := func(n int) bool { return n%2 == 0 }
	require.Equal(t, 4, async.PredicateResult(func() int { return 4 }, even).Await().Unwrap())

	require.Equal(t, result.Err[int](errBoom),
		async.RecoverResult(func() (int, error) { return 0, errBoom }).Await())
}

func TestCrossConversions(t *testing.T) {
	// Result → Option drops the error.
	require.Equal(t, 5, async.Ok[int, error](5).ToOption().Await().Unwrap())
	require.True(t, async.Err[int](errBoom).ToOption().Await().IsNone())

	// Option → Result requires the factory for None.
	require.Equal(t, 5,
		async.OptionToResult(async.Some(5), func() error { return errBoom }).Await().Unwrap())
	require.Equal(t, errBoom,
		async.OptionToResult(async.None[int](), func() error { return errBoom }).Await().UnwrapErr())
}

func TestResultConsumers(t *testing.T) {
	require.Equal(t, 5, async.Ok[int, error](5).Unwrap())
	require.Equal(t, errBoom, async.Err[int](errBoom).UnwrapErr())
	require.Equal(t, 9, async.Err[int](errBoom).UnwrapOr(9))
	require.Equal(t, 4, async.Err[int](errBoom).UnwrapOrElse(func(error) int { return 4 }))
	require.True(t, async.Ok[int, error](1).IsOk())
	require.True(t, async.Err[int](errBoom).IsErr())

	e, isErr := async.Err[int](errBoom).GetErr()
	require.True(t, isErr)
	require.Equal(t, errBoom, e)

	got := async.MatchResult(async.Ok[int, error](2),
		func(n int) string { return strconv.Itoa(n) },
		func(e error) string { return e.Error() },
	)
	require.Equal(t, "2", got)
}

func TestZipResultPropagatesFirstError(t *testing.T) {
	pair := async.ZipResult(async.Ok[string, error]("a"), async.Ok[string, error]("b")).Await()
	require.Equal(t, result.Pair[string, string]{First: "a", Second: "b"}, pair.Unwrap())

	errA := errors.New("a")
	require.Equal(t, errA,
		async.ZipResult(async.Err[string](errA), async.Err[string](errBoom)).Await().UnwrapErr())
}
