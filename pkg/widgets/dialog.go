package widgets

import (
	"fmt"

	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// DuplicateKeyError is the recoverable failure of registering a dialog field
// under a key that is already taken.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("widgets: dialog field key %q already registered", e.Key)
}

// Dialog is a modal dialog with built-in confirm and cancel actions and a
// registry of caller-keyed input fields.
type Dialog struct {
	Handle
	fields map[string]Widget
}

// NewDialog creates a dialog with the given title and message.
func NewDialog(rt foreign.Runtime, title, message string) *Dialog {
	return &Dialog{
		Handle: construct(rt, "GenericDialog", foreign.Kwargs{
			"title":   rt.Str(title),
			"message": rt.Str(message),
		}),
		fields: make(map[string]Widget),
	}
}

// AddField registers w in the dialog under key and appends it to the dialog
// body. A repeated key fails with DuplicateKeyError; the existing field is
// never overwritten.
func (d *Dialog) AddField(key string, w Widget) error {
	if _, ok := d.fields[key]; ok {
		return &DuplicateKeyError{Key: key}
	}
	d.must(d.rt.Call(d.obj, "add_field", d.rt.Str(key), w.Foreign()))
	d.fields[key] = w
	return nil
}

// Field returns the widget registered under key.
func (d *Dialog) Field(key string) (Widget, bool) {
	w, ok := d.fields[key]
	return w, ok
}

// Show presents the dialog to the client.
func (d *Dialog) Show() {
	d.must(d.rt.Call(d.obj, "show"))
}

// Hide dismisses the dialog.
func (d *Dialog) Hide() {
	d.must(d.rt.Call(d.obj, "hide"))
}

// SetActionsEnabled enables or disables the dialog's built-in confirm and
// cancel buttons, which the toolkit exposes as attributes of the dialog
// object.
func (d *Dialog) SetActionsEnabled(on bool) {
	for _, name := range []string{"conf", "cancel"} {
		btn := d.must(d.rt.Get(d.obj, name))
		d.must(d.rt.Call(btn, "set_enabled", d.rt.Bool(on)))
	}
}

// OnConfirm registers fn for the dialog's confirm event, replacing any
// handler registered before it.
func (d *Dialog) OnConfirm(fn func(d *Dialog)) {
	d.bind(bridge.Confirm, func([]foreign.Value) {
		fn(d)
	})
}

// OnCancel registers fn for the dialog's cancel event, replacing any handler
// registered before it.
func (d *Dialog) OnCancel(fn func(d *Dialog)) {
	d.bind(bridge.Cancel, func([]foreign.Value) {
		fn(d)
	})
}
