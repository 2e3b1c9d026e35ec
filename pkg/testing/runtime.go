// Package testing provides an in-memory foreign runtime emulating the
// toolkit's object protocol, so the bridge, widget, and app layers can be
// exercised end to end without a hosted interpreter process.
package testing

import (
	"fmt"
	"sync"

	"github.com/go-facet/facet/pkg/foreign"
)

// FakeRuntime is an in-memory implementation of foreign.Runtime. It models
// toolkit objects with attributes/style dicts, per-class method semantics,
// callables, class definition, and a server that drives one synthetic
// session per Start.
type FakeRuntime struct {
	mu      sync.Mutex
	classes map[string]*classDef
	servers []*FakeServer
	dialogs []*Object
	appBase *Object
}

type classDef struct {
	name    string
	members map[string]foreign.Value
}

// NewRuntime creates an empty fake runtime.
func NewRuntime() *FakeRuntime {
	return &FakeRuntime{classes: make(map[string]*classDef)}
}

// Object is a foreign toolkit object held by the fake runtime. Exported so
// tests can assert on runtime-level state through the helpers below; widget
// code never sees the concrete type.
type Object struct {
	Class string

	mu       sync.Mutex
	members  map[string]foreign.Value
	attrs    map[string]string
	style    map[string]string
	text     string
	checked  bool
	value    string
	items    []string
	selected string
	hasSel   bool
	children []foreign.Value
	shown    bool
	redraws  int

	// dict objects view another object's attrs or style map.
	dict map[string]string

	// callable objects.
	fn     foreign.Func
	fnName string

	// application instances.
	resourceDir string
}

// ForeignValue marks Object as a foreign handle.
func (o *Object) ForeignValue() {}

func (r *FakeRuntime) newObject(class string) *Object {
	return &Object{
		Class:   class,
		members: make(map[string]foreign.Value),
		attrs:   make(map[string]string),
		style:   make(map[string]string),
	}
}

func (r *FakeRuntime) dictOf(m map[string]string) *Object {
	return &Object{Class: "dict", dict: m}
}

// Construct instantiates a toolkit class. Unknown class names produce a
// plain object, keeping the fake permissive about catalog growth.
func (r *FakeRuntime) Construct(class string, kwargs foreign.Kwargs) (foreign.Value, error) {
	o := r.newObject(class)
	str := func(key string) string {
		if v, ok := kwargs[key]; ok {
			if s, err := r.AsStr(v); err == nil {
				return s
			}
		}
		return ""
	}
	switch class {
	case "Button", "Label":
		o.text = str("text")
	case "TextInput":
		o.attrs["placeholder"] = str("hint")
	case "CheckBox":
		o.text = str("label")
		if v, ok := kwargs["checked"]; ok {
			b, err := r.AsBool(v)
			if err != nil {
				return nil, err
			}
			o.checked = b
		}
	case "Date", "ColorPicker":
		o.value = str("default_value")
	case "Image":
		o.value = str("filename")
	case "GenericDialog":
		o.text = str("title")
		o.value = str("message")
		conf := r.newObject("Button")
		conf.text = "Ok"
		cancel := r.newObject("Button")
		cancel.text = "Cancel"
		o.members["conf"] = conf
		o.members["cancel"] = cancel
		r.mu.Lock()
		r.dialogs = append(r.dialogs, o)
		r.mu.Unlock()
	case "DropDown", "ListView", "VBox", "HBox":
		// Start empty; populated through append.
	}
	return o, nil
}

// Get reads an object attribute. The attributes and style dicts are exposed
// as dict objects sharing the widget's backing maps.
func (r *FakeRuntime) Get(obj foreign.Value, name string) (foreign.Value, error) {
	o, err := asObject(obj)
	if err != nil {
		return nil, err
	}
	switch name {
	case "attributes":
		return r.dictOf(o.attrs), nil
	case "style":
		return r.dictOf(o.style), nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if v, ok := o.members[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s.%s", foreign.ErrNoSuchAttribute, o.Class, name)
}

// Set writes an object attribute. Setting none removes the attribute, which
// is how event handlers are detached.
func (r *FakeRuntime) Set(obj foreign.Value, name string, v foreign.Value) error {
	o, err := asObject(obj)
	if err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if r.IsNone(v) {
		delete(o.members, name)
		return nil
	}
	o.members[name] = v
	return nil
}

// Call invokes a method on an object, emulating the toolkit's per-class
// semantics.
func (r *FakeRuntime) Call(obj foreign.Value, method string, args ...foreign.Value) (foreign.Value, error) {
	o, err := asObject(obj)
	if err != nil {
		return nil, err
	}
	if o.dict != nil {
		return r.callDict(o, method, args)
	}
	if o.Class == "AppBase" && method == "init" {
		return r.callAppBaseInit(args)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	switch method {
	case "set_enabled":
		on, err := r.argBool(args, 0)
		if err != nil {
			return nil, err
		}
		if on {
			delete(o.attrs, "disabled")
		} else {
			o.attrs["disabled"] = "true"
		}
		return r.None(), nil

	case "set_size":
		w, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		h, err := r.argStr(args, 1)
		if err != nil {
			return nil, err
		}
		o.style["width"] = w
		o.style["height"] = h
		o.redraws++
		return r.None(), nil

	case "redraw":
		o.redraws++
		return r.None(), nil

	case "get_text":
		return r.Str(o.text), nil

	case "set_text":
		s, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		o.text = s
		return r.None(), nil

	case "get_value":
		switch o.Class {
		case "CheckBox":
			return r.Bool(o.checked), nil
		case "DropDown", "ListView":
			if !o.hasSel {
				return r.None(), nil
			}
			return r.Str(o.selected), nil
		default:
			return r.Str(o.value), nil
		}

	case "set_value":
		if o.Class == "CheckBox" {
			b, err := r.argBool(args, 0)
			if err != nil {
				return nil, err
			}
			o.checked = b
			return r.None(), nil
		}
		s, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		o.value = s
		return r.None(), nil

	case "set_image":
		s, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		o.value = s
		return r.None(), nil

	case "append":
		switch o.Class {
		case "DropDown", "ListView":
			s, err := r.argStr(args, 0)
			if err != nil {
				return nil, err
			}
			o.items = append(o.items, s)
		default:
			if len(args) < 1 {
				return nil, fmt.Errorf("append: missing child")
			}
			o.children = append(o.children, args[0])
		}
		return r.None(), nil

	case "select_by_value":
		s, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		for _, item := range o.items {
			if item == s {
				o.selected = s
				o.hasSel = true
				return r.None(), nil
			}
		}
		return nil, fmt.Errorf("select_by_value: no item %q", s)

	case "remove_item":
		s, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		for i, item := range o.items {
			if item == s {
				o.items = append(o.items[:i], o.items[i+1:]...)
				if o.hasSel && o.selected == s && !contains(o.items, s) {
					o.hasSel = false
					o.selected = ""
				}
				return r.None(), nil
			}
		}
		return nil, fmt.Errorf("remove_item: no item %q", s)

	case "empty":
		o.items = nil
		o.hasSel = false
		o.selected = ""
		o.children = nil
		return r.None(), nil

	case "add_field":
		if len(args) < 2 {
			return nil, fmt.Errorf("add_field: missing key or widget")
		}
		key, err := r.argStr(args, 0)
		if err != nil {
			return nil, err
		}
		o.members["field:"+key] = args[1]
		o.children = append(o.children, args[1])
		return r.None(), nil

	case "show":
		o.shown = true
		return r.None(), nil

	case "hide":
		o.shown = false
		return r.None(), nil
	}
	return nil, fmt.Errorf("%w: %s.%s", foreign.ErrNoSuchMethod, o.Class, method)
}

func (r *FakeRuntime) callDict(o *Object, method string, args []foreign.Value) (foreign.Value, error) {
	key, err := r.argStr(args, 0)
	if err != nil {
		return nil, err
	}
	switch method {
	case "contains":
		_, ok := o.dict[key]
		return r.Bool(ok), nil
	case "get":
		v, ok := o.dict[key]
		if !ok {
			return r.None(), nil
		}
		return r.Str(v), nil
	case "set":
		v, err := r.argStr(args, 1)
		if err != nil {
			return nil, err
		}
		o.dict[key] = v
		return r.None(), nil
	case "pop":
		v, ok := o.dict[key]
		delete(o.dict, key)
		if !ok {
			return r.None(), nil
		}
		return r.Str(v), nil
	}
	return nil, fmt.Errorf("%w: dict.%s", foreign.ErrNoSuchMethod, method)
}

// callAppBaseInit emulates the foreign application base-class constructor:
// it records the static resource path on the instance.
func (r *FakeRuntime) callAppBaseInit(args []foreign.Value) (foreign.Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("AppBase.init: missing self or resource path")
	}
	self, err := asObject(args[0])
	if err != nil {
		return nil, err
	}
	res, err := r.AsStr(args[1])
	if err != nil {
		return nil, err
	}
	self.mu.Lock()
	self.resourceDir = res
	self.mu.Unlock()
	return r.None(), nil
}

// Callable wraps fn as a callable object.
func (r *FakeRuntime) Callable(name string, fn foreign.Func) foreign.Value {
	return &Object{Class: "callable", fn: fn, fnName: name}
}

// DefineClass registers a class deriving from the application base. A name
// collision overwrites the earlier definition, matching a toolkit that does
// not defend against it.
func (r *FakeRuntime) DefineClass(name string, members map[string]foreign.Value) (foreign.Value, error) {
	if name == "" {
		return nil, fmt.Errorf("fake: empty class name")
	}
	def := &classDef{name: name, members: members}
	r.mu.Lock()
	r.classes[name] = def
	r.mu.Unlock()

	cls := r.newObject("class")
	cls.text = name
	for k, v := range members {
		cls.members[k] = v
	}
	return cls, nil
}

// AppBase returns the application base class object.
func (r *FakeRuntime) AppBase() foreign.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appBase == nil {
		r.appBase = r.newObject("AppBase")
	}
	return r.appBase
}

func (r *FakeRuntime) argStr(args []foreign.Value, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	return r.AsStr(args[i])
}

func (r *FakeRuntime) argBool(args []foreign.Value, i int) (bool, error) {
	if i >= len(args) {
		return false, fmt.Errorf("missing argument %d", i)
	}
	return r.AsBool(args[i])
}

func asObject(v foreign.Value) (*Object, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: not an object", foreign.ErrTypeMismatch)
	}
	return o, nil
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
