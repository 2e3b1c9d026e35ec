package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// ListView is a selectable list of text items with unique labels. Selection
// is identified by item label, so a selection survives removal of other
// items.
type ListView struct {
	Handle
	model listModel
}

// NewListView creates a list populated with items. Nothing is selected
// initially. A repeated label fails with DuplicateItemError.
func NewListView(rt foreign.Runtime, items []string) (*ListView, error) {
	l := &ListView{Handle: construct(rt, "ListView", nil)}
	for _, item := range items {
		if err := l.Append(item); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Items returns the list's item labels in order, from the local mirror.
func (l *ListView) Items() []string {
	return l.model.all()
}

// Len returns the number of items.
func (l *ListView) Len() int {
	return l.model.len()
}

// ItemAt returns the label at position i.
func (l *ListView) ItemAt(i int) (string, error) {
	return l.model.at(i)
}

// Append adds an item at the end of the list. Labels address items in the
// foreign list, so a label the list already holds fails with
// DuplicateItemError.
func (l *ListView) Append(item string) error {
	if err := l.model.append(item); err != nil {
		return err
	}
	l.must(l.rt.Call(l.obj, "append", l.rt.Str(item)))
	return nil
}

// RemoveAt removes the item at position i from the foreign list and the
// mirror; later items shift down by one.
func (l *ListView) RemoveAt(i int) error {
	item, err := l.model.at(i)
	if err != nil {
		return err
	}
	l.must(l.rt.Call(l.obj, "remove_item", l.rt.Str(item)))
	if _, err := l.model.removeAt(i); err != nil {
		return err
	}
	return nil
}

// Clear removes all items.
func (l *ListView) Clear() {
	l.must(l.rt.Call(l.obj, "empty"))
	l.model.clear()
}

// Selected returns the selected item's label and whether a selection exists,
// telling a selected empty-string label apart from no selection.
func (l *ListView) Selected() (string, bool) {
	v := l.must(l.rt.Call(l.obj, "get_value"))
	if l.rt.IsNone(v) {
		return "", false
	}
	s, err := l.rt.AsStr(v)
	if err != nil {
		fail("widgets.ListView.Selected", err)
	}
	return s, true
}

// SelectedText returns the selected item's label, or the empty string when
// nothing is selected. A selected empty-string label is indistinguishable
// from no selection here; use Selected when labels may be empty.
func (l *ListView) SelectedText() string {
	s, _ := l.Selected()
	return s
}

// SelectedIndex returns the selected item's current position, or -1 when
// nothing is selected.
func (l *ListView) SelectedIndex() int {
	s, ok := l.Selected()
	if !ok {
		return -1
	}
	return l.model.indexOf(s)
}

// Select selects the item at position i.
func (l *ListView) Select(i int) error {
	item, err := l.model.at(i)
	if err != nil {
		return err
	}
	l.must(l.rt.Call(l.obj, "select_by_value", l.rt.Str(item)))
	return nil
}

// OnSelection registers fn for the list's selection event, replacing any
// handler registered before it. The selected label handed to fn is re-read
// at dispatch time.
func (l *ListView) OnSelection(fn func(l *ListView, selected string)) {
	l.bind(bridge.Selection, func([]foreign.Value) {
		fn(l, l.SelectedText())
	})
}
