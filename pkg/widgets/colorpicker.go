package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// ColorPicker is a color selector. Its value crosses the bridge as a
// "#rrggbb" hex string.
type ColorPicker struct {
	Handle
}

// NewColorPicker creates a color picker initialized to the given color.
func NewColorPicker(rt foreign.Runtime, initial Color) *ColorPicker {
	return &ColorPicker{construct(rt, "ColorPicker", foreign.Kwargs{
		"default_value": rt.Str(initial.Hex()),
	})}
}

// Value returns the currently selected color. A foreign value that is not a
// well-formed hex string fails fatally.
func (c *ColorPicker) Value() Color {
	s, err := c.rt.AsStr(c.must(c.rt.Call(c.obj, "get_value")))
	if err != nil {
		fail("widgets.ColorPicker.Value", err)
	}
	col, err := ParseColor(s)
	if err != nil {
		fail("widgets.ColorPicker.Value", err)
	}
	return col
}

// SetValue sets the selected color.
func (c *ColorPicker) SetValue(col Color) {
	c.must(c.rt.Call(c.obj, "set_value", c.rt.Str(col.Hex())))
}

// OnChange registers fn for the picker's change event, replacing any handler
// registered before it. The color handed to fn is re-read at dispatch time.
func (c *ColorPicker) OnChange(fn func(c *ColorPicker, value Color)) {
	c.bind(bridge.Change, func([]foreign.Value) {
		fn(c, c.Value())
	})
}
