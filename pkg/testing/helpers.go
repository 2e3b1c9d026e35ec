package testing

import (
	"fmt"

	"github.com/go-facet/facet/pkg/foreign"
)

// Fire simulates the foreign runtime delivering an event: it looks up the
// adapter installed on obj's slot attribute and invokes it with obj as self.
// Firing a slot with no handler is an error so tests notice a missing
// registration.
func (r *FakeRuntime) Fire(obj foreign.Value, slot string, args ...foreign.Value) (foreign.Value, error) {
	o, err := asObject(obj)
	if err != nil {
		return nil, err
	}
	o.mu.Lock()
	member, ok := o.members[slot]
	o.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("fake: no handler on slot %q", slot)
	}
	cb, err := asObject(member)
	if err != nil || cb.fn == nil {
		return nil, fmt.Errorf("fake: slot %q: %w", slot, foreign.ErrNotCallable)
	}
	return cb.fn(obj, args)
}

// Invoke calls a callable value produced by Callable, passing self and args
// the way the foreign runtime would.
func (r *FakeRuntime) Invoke(cb foreign.Value, self foreign.Value, args ...foreign.Value) (foreign.Value, error) {
	o, err := asObject(cb)
	if err != nil {
		return nil, err
	}
	if o.fn == nil {
		return nil, fmt.Errorf("fake: %w", foreign.ErrNotCallable)
	}
	return o.fn(self, args)
}

// HasHandler reports whether a handler is installed on obj's slot.
func (r *FakeRuntime) HasHandler(obj foreign.Value, slot string) bool {
	o, err := asObject(obj)
	if err != nil {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.members[slot]
	return ok
}

// StyleOf returns obj's style entry and whether it is present.
func (r *FakeRuntime) StyleOf(obj foreign.Value, key string) (string, bool) {
	o, err := asObject(obj)
	if err != nil {
		return "", false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.style[key]
	return v, ok
}

// SetStyle writes obj's style entry directly, bypassing the widget layer.
// Tests use it to simulate foreign state this bridge never wrote.
func (r *FakeRuntime) SetStyle(obj foreign.Value, key, value string) {
	o, err := asObject(obj)
	if err != nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.style[key] = value
}

// SetRawValue overwrites obj's stored value string, bypassing the widget
// layer, to simulate foreign-state corruption.
func (r *FakeRuntime) SetRawValue(obj foreign.Value, value string) {
	o, err := asObject(obj)
	if err != nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.value = value
}

// HasAttribute reports whether obj's attributes dict contains key.
func (r *FakeRuntime) HasAttribute(obj foreign.Value, key string) bool {
	o, err := asObject(obj)
	if err != nil {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.attrs[key]
	return ok
}

// RedrawCount returns how many times obj was redrawn by set_size/redraw.
func (r *FakeRuntime) RedrawCount(obj foreign.Value) int {
	o, err := asObject(obj)
	if err != nil {
		return 0
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.redraws
}

// Shown reports whether a dialog object is currently shown.
func (r *FakeRuntime) Shown(obj foreign.Value) bool {
	o, err := asObject(obj)
	if err != nil {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.shown
}

// ResourceDirOf returns the resource path recorded on an application
// instance by the base-class constructor.
func (r *FakeRuntime) ResourceDirOf(instance foreign.Value) string {
	o, err := asObject(instance)
	if err != nil {
		return ""
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.resourceDir
}

// ChildrenOf returns the child objects appended to a container or dialog.
func (r *FakeRuntime) ChildrenOf(obj foreign.Value) []foreign.Value {
	o, err := asObject(obj)
	if err != nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]foreign.Value, len(o.children))
	copy(out, o.children)
	return out
}

// LastDialog returns the most recently constructed dialog object, or nil.
func (r *FakeRuntime) LastDialog() foreign.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.dialogs) == 0 {
		return nil
	}
	return r.dialogs[len(r.dialogs)-1]
}

// ItemsOf returns a copy of a list object's foreign items.
func (r *FakeRuntime) ItemsOf(obj foreign.Value) []string {
	o, err := asObject(obj)
	if err != nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.items))
	copy(out, o.items)
	return out
}
