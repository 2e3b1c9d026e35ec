package bridge_test

import (
	"errors"
	"testing"

	"github.com/go-facet/facet/pkg/bridge"
	"github.com/go-facet/facet/pkg/foreign"
	facettest "github.com/go-facet/facet/pkg/testing"
	"github.com/go-facet/facet/pkg/widgets"
)

func noop(foreign.Value, []foreign.Value) (foreign.Value, error) {
	return nil, nil
}

func TestBuilder_RejectsReservedNames(t *testing.T) {
	rt := facettest.NewRuntime()
	b := bridge.NewBuilder(rt)
	w := widgets.NewButton(rt, "ok")

	for _, name := range []string{"init", "main"} {
		if err := b.Register(name, w); !errors.Is(err, bridge.ErrReservedName) {
			t.Errorf("Register(%q) = %v, want ErrReservedName", name, err)
		}
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after rejected registrations, want 0", b.Len())
	}
}

func TestBuilder_RejectsDuplicates(t *testing.T) {
	rt := facettest.NewRuntime()
	b := bridge.NewBuilder(rt)

	if err := b.Register("send", widgets.NewButton(rt, "Send")); err != nil {
		t.Fatalf("Register(send): %v", err)
	}
	err := b.Register("send", widgets.NewButton(rt, "Send again"))
	if !errors.Is(err, bridge.ErrDuplicateField) {
		t.Fatalf("duplicate Register = %v, want ErrDuplicateField", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBuilder_RejectsNilWidget(t *testing.T) {
	rt := facettest.NewRuntime()
	b := bridge.NewBuilder(rt)

	if err := b.Register("missing", nil); err == nil {
		t.Error("Register(nil) should fail")
	}
	// A typed-nil pointer is non-nil as an interface; it must be refused,
	// not dereferenced.
	if err := b.Register("missing", (*widgets.Button)(nil)); err == nil {
		t.Error("Register of typed-nil widget should fail")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after rejected registrations, want 0", b.Len())
	}
}

func TestBuilder_BuildIsTerminal(t *testing.T) {
	rt := facettest.NewRuntime()
	b := bridge.NewBuilder(rt)
	if err := b.Register("name", widgets.NewTextInput(rt, "")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	d, err := b.Build(noop, noop)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Len() != 3 {
		t.Errorf("descriptor Len() = %d, want 3 (field + init + main)", d.Len())
	}

	if err := b.Register("late", widgets.NewButton(rt, "")); !errors.Is(err, bridge.ErrAlreadyBuilt) {
		t.Errorf("Register after Build = %v, want ErrAlreadyBuilt", err)
	}
	if _, err := b.Build(noop, noop); !errors.Is(err, bridge.ErrAlreadyBuilt) {
		t.Errorf("second Build = %v, want ErrAlreadyBuilt", err)
	}
}

func TestDescriptor_MembersAndDefine(t *testing.T) {
	rt := facettest.NewRuntime()
	b := bridge.NewBuilder(rt)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := b.Register(name, widgets.NewLabel(rt, name)); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	d, err := b.Build(noop, noop)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, name := range append(names, "init", "main") {
		if !d.Has(name) {
			t.Errorf("descriptor missing member %q", name)
		}
	}
	if d.Len() != len(names)+2 {
		t.Errorf("Len() = %d, want %d", d.Len(), len(names)+2)
	}

	cls, err := d.Define(rt, "MyApp")
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if cls == nil {
		t.Fatal("Define returned nil class")
	}
	if got := rt.DefinedClass("MyApp"); got == nil {
		t.Error("runtime has no class MyApp after Define")
	}
}

func TestDescriptor_EmptyDefineFails(t *testing.T) {
	d := &bridge.Descriptor{}
	rt := facettest.NewRuntime()
	if _, err := d.Define(rt, "Empty"); err == nil {
		t.Error("Define on empty descriptor should fail")
	}
}
