// Package foreign defines the object/attribute/call protocol through which
// facet reaches the hosted GUI toolkit. Everything the toolkit owns (widgets,
// scalars, callables, the application base class, the serving loop) is
// represented as an opaque Value and manipulated only through a Runtime.
//
// Runtime implementations are interchangeable: pkg/host speaks the protocol
// to a real hosted interpreter over a pipe, while pkg/testing provides an
// in-memory emulation for tests. Application and widget code depends only on
// the interfaces in this package.
package foreign

// Value is an opaque handle to a value living in the foreign runtime: an
// object, a string, a number, a boolean, the runtime's null, or a callable.
//
// A Value is a weak reference into foreign-managed memory. Equality of the
// underlying values is identity in the foreign runtime; native code must not
// assume a Value outlives the foreign object it names, and never disposes it.
type Value interface {
	// ForeignValue marks the type as a foreign handle. Implementations are
	// provided by Runtime implementations; application code never constructs
	// Values directly.
	ForeignValue()
}

// Func is the shape of native code exposed to the foreign runtime. The
// runtime invokes it with the receiving foreign object (self) and the call
// arguments, all as Values owned by that runtime.
//
// A Func may be invoked re-entrantly: a foreign event dispatched while an
// earlier invocation is still blocked in a protocol call runs on its own.
// Implementations must not keep mutable state across invocations.
type Func func(self Value, args []Value) (Value, error)

// Kwargs carries named constructor arguments for Runtime.Construct.
type Kwargs map[string]Value
