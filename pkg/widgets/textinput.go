package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// TextInput is a single-line editable text field.
type TextInput struct {
	Handle
}

// NewTextInput creates a text field with the given placeholder hint.
func NewTextInput(rt foreign.Runtime, hint string) *TextInput {
	return &TextInput{construct(rt, "TextInput", foreign.Kwargs{
		"hint":        rt.Str(hint),
		"single_line": rt.Bool(true),
	})}
}

// Text returns the field's current content, read from foreign state.
func (t *TextInput) Text() string {
	s, err := t.rt.AsStr(t.must(t.rt.Call(t.obj, "get_text")))
	if err != nil {
		fail("widgets.TextInput.Text", err)
	}
	return s
}

// SetText replaces the field's content.
func (t *TextInput) SetText(text string) {
	t.must(t.rt.Call(t.obj, "set_text", t.rt.Str(text)))
}

// OnChange registers fn for the field's change event, replacing any handler
// registered before it. The new value handed to fn is re-read from the
// widget at dispatch time, never taken from the event payload, so it is the
// authoritative current state.
func (t *TextInput) OnChange(fn func(t *TextInput, text string)) {
	t.bind(bridge.Change, func([]foreign.Value) {
		fn(t, t.Text())
	})
}
