// Package errors provides structured error reporting for the facet bridge.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindForeign indicates a failure of the foreign object protocol.
	KindForeign
	// KindDispatch indicates an event handler failure.
	KindDispatch
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindForeign:
		return "foreign"
	case KindDispatch:
		return "dispatch"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FacetError represents a structured error in the facet bridge.
type FacetError struct {
	// Op is the operation that failed (e.g., "bridge.Attach").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Slot is the foreign event slot name, if applicable.
	Slot string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FacetError) Error() string {
	if e.Slot != "" {
		return fmt.Sprintf("%s [%s] slot=%s: %v", e.Op, e.Kind, e.Slot, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FacetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "bridge.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the facet bridge.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FacetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
