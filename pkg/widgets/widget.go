// Package widgets provides the typed widget catalog over the foreign
// toolkit. Every widget owns exactly one foreign object reference for its
// lifetime; accessors read and write foreign state through the object
// protocol on every call, never from a native cache.
package widgets

import (
	"fmt"

	"github.com/go-facet/facet/pkg/bridge"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/foreign"
)

// Widget is the capability shared by every control in the catalog: it can
// present its underlying foreign object. A widget's identity is the identity
// of that object.
type Widget interface {
	Foreign() foreign.Value
	Runtime() foreign.Runtime
}

const (
	attrDisabled = "disabled"
	styleDisplay = "display"
	displayNone  = "none"
	displayBlock = "block"
)

// Handle is the base every concrete widget embeds. It is created once at
// construction and its foreign object is never reassigned.
//
// Accessors treat a failing protocol operation as a broken bridge session and
// panic after reporting; when the failure happens inside a dispatched event
// handler the panic is contained to that request by the bridge dispatch
// path. Recoverable conditions (bad indexes, duplicate keys) are returned as
// typed errors by the operations that can produce them.
type Handle struct {
	rt  foreign.Runtime
	obj foreign.Value
}

// construct instantiates the foreign class and wraps it in a Handle.
func construct(rt foreign.Runtime, class string, kwargs foreign.Kwargs) Handle {
	obj, err := rt.Construct(class, kwargs)
	if err != nil {
		fail("widgets.construct "+class, err)
	}
	return Handle{rt: rt, obj: obj}
}

// Foreign returns the widget's underlying foreign object.
func (h *Handle) Foreign() foreign.Value { return h.obj }

// Runtime returns the runtime that owns the widget's foreign object.
func (h *Handle) Runtime() foreign.Runtime { return h.rt }

// Enabled reports whether the widget accepts input. The foreign attributes
// dict carries a disabled marker when it does not; the marker is probed on
// every call.
func (h *Handle) Enabled() bool {
	attrs := h.must(h.rt.Get(h.obj, "attributes"))
	marker := h.must(h.rt.Call(attrs, "contains", h.rt.Str(attrDisabled)))
	present, err := h.rt.AsBool(marker)
	if err != nil {
		fail("widgets.Enabled", err)
	}
	return !present
}

// SetEnabled enables or disables the widget.
func (h *Handle) SetEnabled(on bool) {
	h.must(h.rt.Call(h.obj, "set_enabled", h.rt.Bool(on)))
}

// Visible reports whether the widget is displayed. A widget with no display
// style entry is visible.
func (h *Handle) Visible() bool {
	style := h.must(h.rt.Get(h.obj, "style"))
	v := h.must(h.rt.Call(style, "get", h.rt.Str(styleDisplay)))
	if h.rt.IsNone(v) {
		return true
	}
	s, err := h.rt.AsStr(v)
	if err != nil {
		fail("widgets.Visible", err)
	}
	return s != displayNone
}

// SetVisible shows or hides the widget. The toolkit has no dedicated
// visibility setter, so the style entry is written directly.
func (h *Handle) SetVisible(on bool) {
	style := h.must(h.rt.Get(h.obj, "style"))
	display := displayNone
	if on {
		display = displayBlock
	}
	h.must(h.rt.Call(style, "set", h.rt.Str(styleDisplay), h.rt.Str(display)))
}

// Size returns the widget's width and height as typed sizes. A dimension
// with no style entry is the zero Size. A malformed stored string means
// foreign state was corrupted outside this bridge and is treated as fatal.
func (h *Handle) Size() (width, height Size) {
	return h.styleSize("width"), h.styleSize("height")
}

// Width returns the widget's width.
func (h *Handle) Width() Size { return h.styleSize("width") }

// Height returns the widget's height.
func (h *Handle) Height() Size { return h.styleSize("height") }

// SetSize serializes both dimensions and hands them to the foreign set_size
// operation, which rewrites the style entries and redraws the widget.
func (h *Handle) SetSize(width, height Size) {
	h.must(h.rt.Call(h.obj, "set_size", h.rt.Str(width.String()), h.rt.Str(height.String())))
}

func (h *Handle) styleSize(name string) Size {
	style := h.must(h.rt.Get(h.obj, "style"))
	v := h.must(h.rt.Call(style, "get", h.rt.Str(name)))
	if h.rt.IsNone(v) {
		return Size{}
	}
	s, err := h.rt.AsStr(v)
	if err != nil {
		fail("widgets.styleSize "+name, err)
	}
	size, err := ParseSize(s)
	if err != nil {
		// Only this bridge writes size strings; a malformed one is a
		// foreign-state invariant violation.
		fail("widgets.styleSize "+name, err)
	}
	return size
}

// bind installs an event handler on the widget's foreign object.
func (h *Handle) bind(kind bridge.Kind, fn bridge.Handler) {
	if err := bridge.Attach(h.rt, h.obj, kind, fn); err != nil {
		fail("widgets.bind "+kind.String(), err)
	}
}

// must unwraps a protocol result, failing fatally on error.
func (h *Handle) must(v foreign.Value, err error) foreign.Value {
	if err != nil {
		fail("widgets.protocol", err)
	}
	return v
}

// fail reports a fatal accessor failure and panics. The panic is isolated to
// the offending accessor: event dispatch recovers it and keeps the session
// alive.
func fail(op string, err error) {
	facerr.Report(&facerr.FacetError{Op: op, Kind: facerr.KindForeign, Err: err})
	panic(fmt.Sprintf("%s: %v", op, err))
}
