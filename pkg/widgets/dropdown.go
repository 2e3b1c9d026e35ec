package widgets

import (
	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
)

// DropDown is a single-selection drop-down list with unique item labels.
type DropDown struct {
	Handle
	model listModel
}

// NewDropDown creates a drop-down populated with items. The first item, if
// any, is selected immediately after construction. A repeated label fails
// with DuplicateItemError.
func NewDropDown(rt foreign.Runtime, items []string) (*DropDown, error) {
	d := &DropDown{Handle: construct(rt, "DropDown", nil)}
	for _, item := range items {
		if err := d.Append(item); err != nil {
			return nil, err
		}
	}
	if len(items) > 0 {
		d.must(rt.Call(d.obj, "select_by_value", rt.Str(items[0])))
	}
	return d, nil
}

// Items returns the drop-down's item labels in order, from the local mirror.
func (d *DropDown) Items() []string {
	return d.model.all()
}

// Append adds an item at the end of the list. Labels address items in the
// foreign list, so a label the list already holds fails with
// DuplicateItemError.
func (d *DropDown) Append(item string) error {
	if err := d.model.append(item); err != nil {
		return err
	}
	d.must(d.rt.Call(d.obj, "append", d.rt.Str(item)))
	return nil
}

// Selected returns the selected item's label and whether a selection exists,
// telling a selected empty-string label apart from no selection.
func (d *DropDown) Selected() (string, bool) {
	v := d.must(d.rt.Call(d.obj, "get_value"))
	if d.rt.IsNone(v) {
		return "", false
	}
	s, err := d.rt.AsStr(v)
	if err != nil {
		fail("widgets.DropDown.Selected", err)
	}
	return s, true
}

// SelectedText returns the selected item's label, or the empty string when
// nothing is selected. A selected empty-string label is indistinguishable
// from no selection here; use Selected when labels may be empty.
func (d *DropDown) SelectedText() string {
	s, _ := d.Selected()
	return s
}

// SelectedIndex returns the selected item's position, or -1 when nothing is
// selected. The position comes from the local mirror; the foreign object
// only reports the selected label.
func (d *DropDown) SelectedIndex() int {
	s, ok := d.Selected()
	if !ok {
		return -1
	}
	return d.model.indexOf(s)
}

// Select selects the item at position i.
func (d *DropDown) Select(i int) error {
	item, err := d.model.at(i)
	if err != nil {
		return err
	}
	d.must(d.rt.Call(d.obj, "select_by_value", d.rt.Str(item)))
	return nil
}

// OnChange registers fn for the drop-down's change event, replacing any
// handler registered before it. The selected label handed to fn is re-read
// at dispatch time.
func (d *DropDown) OnChange(fn func(d *DropDown, selected string)) {
	d.bind(bridge.Change, func([]foreign.Value) {
		fn(d, d.SelectedText())
	})
}
