package bridge

import (
	"fmt"
	"reflect"

	"github.com/go-facet/facet/pkg/foreign"
)

// Names of the members every synthesized descriptor carries. Application
// widgets may not register under these names.
const (
	MemberInit = "init"
	MemberMain = "main"
)

// Configuration errors raised while assembling a descriptor.
var (
	// ErrReservedName indicates a registration under a synthesized member
	// name (init, main).
	ErrReservedName = fmt.Errorf("bridge: field name is reserved")

	// ErrDuplicateField indicates two registrations under the same name.
	ErrDuplicateField = fmt.Errorf("bridge: field already registered")

	// ErrAlreadyBuilt indicates Build was called on a builder that already
	// produced its descriptor.
	ErrAlreadyBuilt = fmt.Errorf("bridge: descriptor already built")
)

// ForeignPresenter is the capability a value must have to become a member of
// the foreign application class. Every widget handle satisfies it; plain
// native state cannot, so exclusion of non-bridge fields is decided by the
// type system rather than by inspecting names at run time.
type ForeignPresenter interface {
	Foreign() foreign.Value
}

// Builder assembles the member map for one foreign application class. It
// moves from unbuilt to built exactly once; a built builder rejects further
// registrations and a second Build.
type Builder struct {
	rt     foreign.Runtime
	fields map[string]foreign.Value
	built  bool
}

// NewBuilder creates a descriptor builder for the given runtime.
func NewBuilder(rt foreign.Runtime) *Builder {
	return &Builder{
		rt:     rt,
		fields: make(map[string]foreign.Value),
	}
}

// Register adds a named widget to the descriptor. Names must be unique and
// must not collide with the synthesized member names. Registering a nil
// presenter or one holding no foreign object is an error.
func (b *Builder) Register(name string, w ForeignPresenter) error {
	if b.built {
		return ErrAlreadyBuilt
	}
	if name == MemberInit || name == MemberMain {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if _, ok := b.fields[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	if w == nil || isNilPresenter(w) {
		return fmt.Errorf("bridge: register %q: nil widget", name)
	}
	obj := w.Foreign()
	if obj == nil {
		return fmt.Errorf("bridge: register %q: widget has no foreign object", name)
	}
	b.fields[name] = obj
	return nil
}

// isNilPresenter catches typed-nil widget pointers, which compare non-nil as
// an interface but would panic inside Foreign.
func isNilPresenter(w ForeignPresenter) bool {
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Len returns the number of registered widget fields.
func (b *Builder) Len() int {
	return len(b.fields)
}

// Build seals the builder and produces the descriptor: all registered fields
// plus the two synthesized lifecycle callables. Zero registered fields is
// legal. Build is terminal; calling it again fails with ErrAlreadyBuilt.
func (b *Builder) Build(init, main foreign.Func) (*Descriptor, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if init == nil || main == nil {
		return nil, fmt.Errorf("bridge: build requires init and main callables")
	}
	b.built = true

	members := make(map[string]foreign.Value, len(b.fields)+2)
	for name, obj := range b.fields {
		members[name] = obj
	}
	members[MemberInit] = NewCallable(b.rt, MemberInit, init)
	members[MemberMain] = NewCallable(b.rt, MemberMain, main)

	return &Descriptor{members: members}, nil
}

// Descriptor is the immutable member map from which the foreign
// application class is defined. Every entry is either a widget's foreign
// object or a synthesized callable.
type Descriptor struct {
	members map[string]foreign.Value
}

// Members returns a copy of the member map.
func (d *Descriptor) Members() map[string]foreign.Value {
	out := make(map[string]foreign.Value, len(d.members))
	for name, v := range d.members {
		out[name] = v
	}
	return out
}

// Has reports whether the descriptor carries a member of the given name.
func (d *Descriptor) Has(name string) bool {
	_, ok := d.members[name]
	return ok
}

// Len returns the number of members, synthesized entries included.
func (d *Descriptor) Len() int {
	return len(d.members)
}

// Define registers the descriptor as a new foreign class of the given name,
// deriving from the toolkit's application base class.
func (d *Descriptor) Define(rt foreign.Runtime, name string) (foreign.Value, error) {
	if len(d.members) == 0 {
		return nil, fmt.Errorf("bridge: empty descriptor")
	}
	cls, err := rt.DefineClass(name, d.Members())
	if err != nil {
		return nil, fmt.Errorf("bridge: define class %q: %w", name, err)
	}
	return cls, nil
}
