// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/outcome"
)

type fakeOps struct {
	name  string
	calls int
}

func (f *fakeOps) CanonicalName() string { return f.name }

func (f *fakeOps) Apply(r outcome.Raw, c outcome.Call) outcome.Raw {
	f.calls++
	return r
}

func TestLookupUnregisteredPanics(t *testing.T) {
	require.PanicsWithValue(t,
		"outcome: no implementation registered for test.Missing",
		func() { outcome.Lookup("test.Missing") },
	)
}

func TestRegisterLifecycle(t *testing.T) {
	impl := &fakeOps{name: "test.Lifecycle"}

	// Before registration: configuration defect.
	require.Panics(t, func() { outcome.Lookup("test.Lifecycle") })

	unregister := outcome.Register(impl)
	require.Same(t, outcome.Ops(impl), outcome.Lookup("test.Lifecycle"))

	// After unregister the prior (absent) binding is restored.
	unregister()
	require.Panics(t, func() { outcome.Lookup("test.Lifecycle") })
}

func TestRegisterReplacesNotAdds(t *testing.T) {
	first := &fakeOps{name: "test.Replace"}
	second := &fakeOps{name: "test.Replace"}

	u1 := outcome.Register(first)
	defer u1()

	u2 := outcome.Register(second)
	require.Same(t, outcome.Ops(second), outcome.Lookup("test.Replace"))

	// Unregistering the replacement restores the first binding.
	u2()
	require.Same(t, outcome.Ops(first), outcome.Lookup("test.Replace"))
}

func TestCanonicalNames(t *testing.T) {
	// The option and result packages register under these keys at init.
	require.Equal(t, "option.Option", outcome.OptionName)
	require.Equal(t, "result.Result", outcome.ResultName)
}
