package widgets

import "fmt"

// IndexError is the recoverable failure of a positional list operation.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("widgets: index %d out of range (len %d)", e.Index, e.Len)
}

// DuplicateItemError is the recoverable failure of adding an item label that
// the list already holds.
type DuplicateItemError struct {
	Item string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("widgets: item %q already in the list", e.Item)
}

// listModel mirrors a foreign widget's item list 1:1. The foreign object can
// only report its selected item, not positional data, so lookups between
// index and text are served from this mirror. Item labels are the keys the
// foreign list is addressed by: duplicates are rejected, since a repeated
// label would make label-addressed removal diverge from the mirror.
type listModel struct {
	items []string
}

func (m *listModel) append(item string) error {
	if m.indexOf(item) >= 0 {
		return &DuplicateItemError{Item: item}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *listModel) at(i int) (string, error) {
	if i < 0 || i >= len(m.items) {
		return "", &IndexError{Index: i, Len: len(m.items)}
	}
	return m.items[i], nil
}

func (m *listModel) removeAt(i int) (string, error) {
	item, err := m.at(i)
	if err != nil {
		return "", err
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return item, nil
}

func (m *listModel) indexOf(item string) int {
	for i, it := range m.items {
		if it == item {
			return i
		}
	}
	return -1
}

func (m *listModel) clear() {
	m.items = nil
}

func (m *listModel) all() []string {
	out := make([]string, len(m.items))
	copy(out, m.items)
	return out
}

func (m *listModel) len() int {
	return len(m.items)
}
