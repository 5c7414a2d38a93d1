// Package model defines the entities loom creates through a backend.
//
// A model is any value a test suite or seed job wants persisted remotely.
// Models identify themselves with a Kind, a stable string tag chosen by the
// caller, and carry a single server-issued identifier once created.
//
// # Kinds
//
// Kinds are plain string constants owned by the caller:
//
//	const KindProduct model.Kind = "product"
//
// Dispatch in the registry is a pure map lookup on the kind; no reflection
// is involved, and two distinct Go types may share a kind if they are
// created the same way.
//
// # Lifecycle
//
// Every model starts Uncreated (identifier equal to UnassignedID) and
// transitions to Created exactly once, when the backend confirms creation.
// The transition is one-way: applying a second creation payload fails with
// ErrAlreadyCreated and leaves the first identifier intact.
//
// # Identity
//
// Creation mutates the model in place. The instance handed to the registry
// is the instance handed back, with its identifier assigned; callers may
// keep their own pointers to it across the call.
//
// Embed Base to satisfy the identifier half of the Model interface:
//
//	type Product struct {
//	    model.Base
//	    Name string `json:"name"`
//	}
//
//	func (*Product) Kind() model.Kind { return KindProduct }
package model
