package widgets_test

import (
	"testing"
	"time"

	facettest "github.com/go-facet/facet/pkg/testing"
	"github.com/go-facet/facet/pkg/widgets"
)

func TestTextInput_OnChangeObservesNewValue(t *testing.T) {
	rt := facettest.NewRuntime()
	in := widgets.NewTextInput(rt, "type here")

	var got string
	in.OnChange(func(w *widgets.TextInput, text string) {
		got = text
	})

	// The handler must see the authoritative current state, not a stale
	// event payload: set the text natively, then deliver the event with a
	// different (stale) payload argument.
	in.SetText("hello")
	if _, err := rt.Fire(in.Foreign(), "onchange", rt.Str("stale")); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if got != "hello" {
		t.Errorf("handler observed %q, want %q", got, "hello")
	}
}

func TestTextInput_ReregistrationReplaces(t *testing.T) {
	rt := facettest.NewRuntime()
	in := widgets.NewTextInput(rt, "")

	first, second := 0, 0
	in.OnChange(func(*widgets.TextInput, string) { first++ })
	in.OnChange(func(*widgets.TextInput, string) { second++ })

	if _, err := rt.Fire(in.Foreign(), "onchange"); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if first != 0 || second != 1 {
		t.Errorf("dispatch counts first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestCheckBox_OnChange(t *testing.T) {
	rt := facettest.NewRuntime()
	cb := widgets.NewCheckBox(rt, "opt in", false)

	if cb.Checked() {
		t.Fatal("checkbox should start unchecked")
	}

	var got bool
	cb.OnChange(func(w *widgets.CheckBox, checked bool) {
		got = checked
	})
	cb.SetChecked(true)
	if _, err := rt.Fire(cb.Foreign(), "onchange"); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if !got {
		t.Error("handler observed checked=false, want true")
	}
}

func TestDatePicker_RoundTrip(t *testing.T) {
	rt := facettest.NewRuntime()
	d := widgets.NewDatePicker(rt, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))

	if got := d.Value(); !got.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("initial value = %v", got)
	}

	// Day granularity: the time-of-day part is dropped on the wire.
	d.SetValue(time.Date(1999, 12, 31, 23, 59, 58, 0, time.UTC))
	if got := d.Value(); !got.Equal(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("value after set = %v, want 1999-12-31", got)
	}
}

func TestDatePicker_CorruptValuePanics(t *testing.T) {
	rt := facettest.NewRuntime()
	d := widgets.NewDatePicker(rt, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	rt.SetRawValue(d.Foreign(), "30/08/2026")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on malformed foreign date string")
		}
	}()
	d.Value()
}

func TestColorPicker_RoundTrip(t *testing.T) {
	rt := facettest.NewRuntime()
	c := widgets.NewColorPicker(rt, widgets.Color{R: 0x10, G: 0x20, B: 0x30})

	if got := c.Value(); got != (widgets.Color{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("initial value = %+v", got)
	}

	var observed widgets.Color
	c.OnChange(func(w *widgets.ColorPicker, v widgets.Color) {
		observed = v
	})
	c.SetValue(widgets.Color{R: 0xff, G: 0x00, B: 0x7f})
	if _, err := rt.Fire(c.Foreign(), "onchange"); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if observed != (widgets.Color{R: 0xff, G: 0x00, B: 0x7f}) {
		t.Errorf("handler observed %+v", observed)
	}
}

func TestButton_OnClick(t *testing.T) {
	rt := facettest.NewRuntime()
	b := widgets.NewButton(rt, "Go")

	clicks := 0
	b.OnClick(func(w *widgets.Button) {
		if w != b {
			t.Error("handler received a different widget")
		}
		clicks++
	})
	for i := 0; i < 3; i++ {
		if _, err := rt.Fire(b.Foreign(), "onclick"); err != nil {
			t.Fatalf("Fire: %v", err)
		}
	}
	if clicks != 3 {
		t.Errorf("clicks = %d, want 3", clicks)
	}
}
