package widgets_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	facettest "github.com/go-facet/facet/pkg/testing"
	"github.com/go-facet/facet/pkg/widgets"
)

func newDropDown(t *testing.T, rt *facettest.FakeRuntime, items []string) *widgets.DropDown {
	t.Helper()
	d, err := widgets.NewDropDown(rt, items)
	if err != nil {
		t.Fatalf("NewDropDown: %v", err)
	}
	return d
}

func newListView(t *testing.T, rt *facettest.FakeRuntime, items []string) *widgets.ListView {
	t.Helper()
	l, err := widgets.NewListView(rt, items)
	if err != nil {
		t.Fatalf("NewListView: %v", err)
	}
	return l
}

func TestDropDown_FirstItemSelectedByDefault(t *testing.T) {
	rt := facettest.NewRuntime()
	d := newDropDown(t, rt, []string{"Monday", "Tuesday"})

	if got := d.SelectedText(); got != "Monday" {
		t.Errorf("default selection = %q, want %q", got, "Monday")
	}
	if got := d.SelectedIndex(); got != 0 {
		t.Errorf("default selected index = %d, want 0", got)
	}
}

func TestDropDown_EmptyHasNoSelection(t *testing.T) {
	rt := facettest.NewRuntime()
	d := newDropDown(t, rt, nil)

	if _, ok := d.Selected(); ok {
		t.Error("empty drop-down should have no selection")
	}
	if got := d.SelectedText(); got != "" {
		t.Errorf("empty drop-down selection = %q, want empty", got)
	}
	if got := d.SelectedIndex(); got != -1 {
		t.Errorf("empty drop-down selected index = %d, want -1", got)
	}
}

func TestDropDown_SelectAndChange(t *testing.T) {
	rt := facettest.NewRuntime()
	d := newDropDown(t, rt, []string{"a", "b", "c"})

	var observed string
	d.OnChange(func(w *widgets.DropDown, selected string) {
		observed = selected
	})

	if err := d.Select(2); err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if _, err := rt.Fire(d.Foreign(), "onchange"); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if observed != "c" {
		t.Errorf("handler observed %q, want %q", observed, "c")
	}

	var idxErr *widgets.IndexError
	if err := d.Select(7); !errors.As(err, &idxErr) {
		t.Errorf("Select(7) = %v, want IndexError", err)
	}
}

func TestDropDown_RejectsDuplicateLabels(t *testing.T) {
	rt := facettest.NewRuntime()

	var dupErr *widgets.DuplicateItemError
	if _, err := widgets.NewDropDown(rt, []string{"a", "b", "a"}); !errors.As(err, &dupErr) {
		t.Errorf("NewDropDown with repeated label = %v, want DuplicateItemError", err)
	}

	d := newDropDown(t, rt, []string{"a", "b"})
	if err := d.Append("a"); !errors.As(err, &dupErr) {
		t.Errorf("Append(a) = %v, want DuplicateItemError", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, d.Items()); diff != "" {
		t.Errorf("rejected append changed the items (-want +got):\n%s", diff)
	}
}

func TestListView_SelectionByIndex(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"1", "2", "3", "4", "5"})

	if err := l.Select(2); err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if got := l.SelectedText(); got != "3" {
		t.Errorf("selected text = %q, want %q", got, "3")
	}
}

func TestListView_RemoveShiftsIndexes(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"1", "2", "3", "4", "5"})

	if err := l.Select(2); err != nil {
		t.Fatalf("Select(2): %v", err)
	}
	if err := l.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt(0): %v", err)
	}

	want := []string{"2", "3", "4", "5"}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	// The mirror and the foreign list must stay 1:1.
	if diff := cmp.Diff(want, rt.ItemsOf(l.Foreign())); diff != "" {
		t.Errorf("foreign items mismatch (-want +got):\n%s", diff)
	}

	if got, err := l.ItemAt(0); err != nil || got != "2" {
		t.Errorf("ItemAt(0) = %q, %v", got, err)
	}

	// The selection was made by value and survives removal of other items;
	// its index shifts down with the list.
	if got := l.SelectedText(); got != "3" {
		t.Errorf("selected text after removal = %q, want %q", got, "3")
	}
	if got := l.SelectedIndex(); got != 1 {
		t.Errorf("selected index after removal = %d, want 1", got)
	}
}

func TestListView_RejectsDuplicateLabels(t *testing.T) {
	rt := facettest.NewRuntime()

	var dupErr *widgets.DuplicateItemError
	if _, err := widgets.NewListView(rt, []string{"a", "x", "a"}); !errors.As(err, &dupErr) {
		t.Errorf("NewListView with repeated label = %v, want DuplicateItemError", err)
	}

	// Label-addressed removal stays 1:1 with the mirror because a second
	// "a" can never get in.
	l := newListView(t, rt, []string{"a", "x"})
	if err := l.Append("a"); !errors.As(err, &dupErr) {
		t.Fatalf("Append(a) = %v, want DuplicateItemError", err)
	}
	if err := l.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1): %v", err)
	}
	if diff := cmp.Diff(l.Items(), rt.ItemsOf(l.Foreign())); diff != "" {
		t.Errorf("mirror diverged from the foreign list (-mirror +foreign):\n%s", diff)
	}
}

func TestListView_IndexErrors(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"only"})

	var idxErr *widgets.IndexError
	if _, err := l.ItemAt(1); !errors.As(err, &idxErr) {
		t.Errorf("ItemAt(1) = %v, want IndexError", err)
	}
	if err := l.RemoveAt(-1); !errors.As(err, &idxErr) {
		t.Errorf("RemoveAt(-1) = %v, want IndexError", err)
	}
	if err := l.Select(3); !errors.As(err, &idxErr) {
		t.Errorf("Select(3) = %v, want IndexError", err)
	}
}

func TestListView_OnSelection(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"x", "y"})

	var observed string
	l.OnSelection(func(w *widgets.ListView, selected string) {
		observed = selected
	})
	if err := l.Select(1); err != nil {
		t.Fatalf("Select(1): %v", err)
	}
	if _, err := rt.Fire(l.Foreign(), "onselection"); err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if observed != "y" {
		t.Errorf("handler observed %q, want %q", observed, "y")
	}
}

func TestListView_EmptyLabelSelection(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"", "other"})

	if _, ok := l.Selected(); ok {
		t.Error("fresh list should have no selection")
	}

	if err := l.Select(0); err != nil {
		t.Fatalf("Select(0): %v", err)
	}
	s, ok := l.Selected()
	if !ok || s != "" {
		t.Errorf("Selected() = %q, %v; want empty label reported as selected", s, ok)
	}
	if got := l.SelectedIndex(); got != 0 {
		t.Errorf("SelectedIndex() = %d, want 0", got)
	}
}

func TestListView_Clear(t *testing.T) {
	rt := facettest.NewRuntime()
	l := newListView(t, rt, []string{"a", "b"})
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear", l.Len())
	}
	if got := l.SelectedIndex(); got != -1 {
		t.Errorf("SelectedIndex() = %d after Clear, want -1", got)
	}
}
