// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

import "sync"

// Canonical implementation names.
const (
	// OptionName is the registry key for the Option operation set.
	OptionName = "option.Option"

	// ResultName is the registry key for the Result operation set.
	ResultName = "result.Result"
)

// Queued operation names. The set is closed: only operations whose
// outcome does not depend on branching the tag may be queued.
const (
	OpMap     = "map"
	OpMapErr  = "mapErr"
	OpMapBoth = "mapBoth"
	OpFilter  = "filter"
)

// Call is one queued operation: a name from the Op* set plus its
// type-erased arguments. Argument conventions per operation:
//
//	OpMap:     Args[0] func(Erased) Erased
//	OpMapErr:  Args[0] func(Erased) Erased
//	OpMapBoth: Args[0], Args[1] func(Erased) Erased (success, failure)
//	OpFilter:  Args[0] func(Erased) bool, Args[1] func(Erased) Erased or nil
type Call struct {
	Op   string
	Args []Erased
}

// Ops is the enumerated operation vtable a variant implementation
// registers under its canonical name. Every operation the queue drain
// can dispatch is named in the Op* set; there is no open-ended
// interception.
type Ops interface {
	// CanonicalName returns the registry key for this implementation.
	CanonicalName() string

	// Apply executes one queued call against a resolved carrier and
	// returns the next carrier. Apply must not panic for calls in the
	// Op* set with well-formed arguments.
	Apply(r Raw, c Call) Raw
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Ops)
)

// Register stores impl under its canonical name, replacing any prior
// binding, and returns a func that restores the previous state. Exactly
// one binding is active per name at a time. Tests that swap a binding
// must call the returned func to avoid leaking state across cases.
func Register(impl Ops) (unregister func()) {
	name := impl.CanonicalName()
	registryMu.Lock()
	prev, had := registry[name]
	registry[name] = impl
	registryMu.Unlock()
	return func() {
		registryMu.Lock()
		if had {
			registry[name] = prev
		} else {
			delete(registry, name)
		}
		registryMu.Unlock()
	}
}

// Lookup returns the active implementation for name.
// A lookup before registration is a configuration defect and panics.
func Lookup(name string) Ops {
	registryMu.RLock()
	impl, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		panic("outcome: no implementation registered for " + name)
	}
	return impl
}
