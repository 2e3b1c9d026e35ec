package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// CheckBox is a labeled boolean toggle.
type CheckBox struct {
	Handle
}

// NewCheckBox creates a check box with the given label and initial state.
func NewCheckBox(rt foreign.Runtime, label string, checked bool) *CheckBox {
	return &CheckBox{construct(rt, "CheckBox", foreign.Kwargs{
		"label":   rt.Str(label),
		"checked": rt.Bool(checked),
	})}
}

// Checked returns the current toggle state.
func (c *CheckBox) Checked() bool {
	b, err := c.rt.AsBool(c.must(c.rt.Call(c.obj, "get_value")))
	if err != nil {
		fail("widgets.CheckBox.Checked", err)
	}
	return b
}

// SetChecked sets the toggle state.
func (c *CheckBox) SetChecked(on bool) {
	c.must(c.rt.Call(c.obj, "set_value", c.rt.Bool(on)))
}

// OnChange registers fn for the toggle's change event, replacing any handler
// registered before it. The state handed to fn is re-read at dispatch time.
func (c *CheckBox) OnChange(fn func(c *CheckBox, checked bool)) {
	c.bind(bridge.Change, func([]foreign.Value) {
		fn(c, c.Checked())
	})
}
