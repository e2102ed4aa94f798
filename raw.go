// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package outcome

// Erased represents a type-erased payload flowing through the queued
// operation pipeline. Concrete types are recovered via type assertions
// at the typed edges of the variant packages.
type Erased = any

// Tag identifies the resolved variant held by a Raw carrier.
type Tag uint8

const (
	// TagNone is an absent Option.
	TagNone Tag = iota
	// TagSome is a present Option.
	TagSome
	// TagErr is a failed Result.
	TagErr
	// TagOk is a successful Result.
	TagOk
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagSome:
		return "Some"
	case TagErr:
		return "Err"
	case TagOk:
		return "Ok"
	}
	return "Invalid"
}

// Present reports whether the tag carries a success payload.
func (t Tag) Present() bool {
	return t == TagSome || t == TagOk
}

// Raw is the type-erased resolved form of a variant. Queued operations
// manipulate Raw values through the registered Ops vtable; the typed
// packages convert to and from Raw at the pipeline boundary.
type Raw struct {
	Tag Tag
	Val Erased
	Err Erased
}

// RawSome builds a present Option carrier.
func RawSome(v Erased) Raw { return Raw{Tag: TagSome, Val: v} }

// RawNone builds an absent Option carrier.
func RawNone() Raw { return Raw{Tag: TagNone} }

// RawOk builds a successful Result carrier.
func RawOk(v Erased) Raw { return Raw{Tag: TagOk, Val: v} }

// RawErr builds a failed Result carrier.
func RawErr(e Erased) Raw { return Raw{Tag: TagErr, Err: e} }
