package widgets

import (
	"time"

	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// DateLayout is the fixed wire format for date values. No locale variation.
const DateLayout = "2006-01-02"

// DatePicker is a calendar date selector. Its value crosses the bridge as a
// DateLayout string and is parsed into a time.Time at day granularity.
type DatePicker struct {
	Handle
}

// NewDatePicker creates a date picker initialized to the given date.
func NewDatePicker(rt foreign.Runtime, initial time.Time) *DatePicker {
	return &DatePicker{construct(rt, "Date", foreign.Kwargs{
		"default_value": rt.Str(initial.Format(DateLayout)),
	})}
}

// Value returns the currently selected date. The foreign value is parsed on
// every call; a string this bridge could not have written means corrupted
// foreign state and fails fatally.
func (d *DatePicker) Value() time.Time {
	s, err := d.rt.AsStr(d.must(d.rt.Call(d.obj, "get_value")))
	if err != nil {
		fail("widgets.DatePicker.Value", err)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		fail("widgets.DatePicker.Value", err)
	}
	return t
}

// SetValue sets the selected date, truncated to day granularity.
func (d *DatePicker) SetValue(t time.Time) {
	d.must(d.rt.Call(d.obj, "set_value", d.rt.Str(t.Format(DateLayout))))
}

// OnChange registers fn for the picker's change event, replacing any handler
// registered before it. The date handed to fn is re-read at dispatch time.
func (d *DatePicker) OnChange(fn func(d *DatePicker, value time.Time)) {
	d.bind(bridge.Change, func([]foreign.Value) {
		fn(d, d.Value())
	})
}
