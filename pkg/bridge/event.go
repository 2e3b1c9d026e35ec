package bridge

import (
	"fmt"

	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/foreign"
)

// Kind identifies an event the foreign toolkit can deliver to native code.
// Each kind maps to a fixed slot attribute on the foreign widget object.
type Kind int

const (
	// Click fires when a widget is activated.
	Click Kind = iota
	// Change fires when a widget's value changes.
	Change
	// Confirm fires when a dialog's confirm action is taken.
	Confirm
	// Cancel fires when a dialog's cancel action is taken.
	Cancel
	// Selection fires when a list's selected item changes.
	Selection
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case Change:
		return "change"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Slot returns the foreign attribute name the event adapter is installed on.
func (k Kind) Slot() string {
	switch k {
	case Click:
		return "onclick"
	case Change:
		return "onchange"
	case Confirm:
		return "onconfirm"
	case Cancel:
		return "oncancel"
	case Selection:
		return "onselection"
	default:
		return ""
	}
}

// Handler receives one dispatched event. The raw foreign arguments are passed
// through untouched; widgets re-read their own typed accessors instead of
// trusting them, so the value handed to application code is always the
// authoritative current state.
type Handler func(args []foreign.Value)

// Attach installs fn on target's slot for kind. At most one handler exists
// per (target, kind): attaching again replaces the previous handler, since
// the slot attribute is simply overwritten.
//
// All attached handlers funnel through a single dispatch path that converts
// their completion to the foreign no-value sentinel and contains failures
// (see NewCallable). Dispatch is synchronous: one foreign event invokes at
// most one handler, in the order the foreign runtime delivers events.
func Attach(rt foreign.Runtime, target foreign.Value, kind Kind, fn Handler) error {
	slot := kind.Slot()
	if slot == "" {
		return fmt.Errorf("bridge: unknown event kind %v", kind)
	}
	cb := rt.Callable(slot, dispatch(rt, kind, fn))
	if err := rt.Set(target, slot, cb); err != nil {
		return &facerr.FacetError{
			Op:   "bridge.Attach",
			Kind: facerr.KindForeign,
			Slot: slot,
			Err:  err,
		}
	}
	return nil
}

// Detach clears the handler for kind on target, if any.
func Detach(rt foreign.Runtime, target foreign.Value, kind Kind) error {
	slot := kind.Slot()
	if slot == "" {
		return fmt.Errorf("bridge: unknown event kind %v", kind)
	}
	return rt.Set(target, slot, rt.None())
}

// dispatch is the demultiplexing entry point every event adapter routes
// through, regardless of kind or handler shape. A panicking handler is
// reported and contained; the foreign runtime always receives the no-value
// sentinel and keeps serving the session.
func dispatch(rt foreign.Runtime, kind Kind, fn Handler) foreign.Func {
	return func(self foreign.Value, args []foreign.Value) (ret foreign.Value, err error) {
		defer facerr.RecoverWithCallback("bridge.dispatch "+kind.String(), func(any) {
			ret = rt.None()
			err = nil
		})
		fn(args)
		return rt.None(), nil
	}
}
