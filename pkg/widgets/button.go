package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// Button is a clickable push button.
type Button struct {
	Handle
}

// NewButton creates a button with the given label text.
func NewButton(rt foreign.Runtime, text string) *Button {
	return &Button{construct(rt, "Button", foreign.Kwargs{"text": rt.Str(text)})}
}

// Text returns the button's label.
func (b *Button) Text() string {
	s, err := b.rt.AsStr(b.must(b.rt.Call(b.obj, "get_text")))
	if err != nil {
		fail("widgets.Button.Text", err)
	}
	return s
}

// SetText replaces the button's label.
func (b *Button) SetText(text string) {
	b.must(b.rt.Call(b.obj, "set_text", b.rt.Str(text)))
}

// OnClick registers fn for the button's click event, replacing any handler
// registered before it.
func (b *Button) OnClick(fn func(b *Button)) {
	b.bind(bridge.Click, func([]foreign.Value) {
		fn(b)
	})
}
