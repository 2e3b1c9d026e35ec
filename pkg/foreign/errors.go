package foreign

import "errors"

// Sentinel errors for protocol operations.
var (
	// ErrClosed is returned when operating on a closed runtime or server.
	ErrClosed = errors.New("foreign: runtime closed")

	// ErrNotConnected is returned when the foreign interpreter is not
	// reachable.
	ErrNotConnected = errors.New("foreign: not connected")

	// ErrNoSuchClass indicates the toolkit does not know the requested
	// class name.
	ErrNoSuchClass = errors.New("foreign: no such class")

	// ErrNoSuchAttribute indicates the object has no attribute of the
	// requested name.
	ErrNoSuchAttribute = errors.New("foreign: no such attribute")

	// ErrNoSuchMethod indicates the object has no method of the requested
	// name.
	ErrNoSuchMethod = errors.New("foreign: no such method")

	// ErrTypeMismatch indicates a scalar accessor was applied to a value of
	// a different type.
	ErrTypeMismatch = errors.New("foreign: value type mismatch")

	// ErrNotCallable indicates an invocation target is not a callable.
	ErrNotCallable = errors.New("foreign: value is not callable")
)
