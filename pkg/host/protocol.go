package host

import (
	"fmt"

	"github.com/go-facet/facet/pkg/foreign"
)

// Construct instantiates a foreign toolkit class by name.
func (r *Runtime) Construct(class string, kwargs foreign.Kwargs) (foreign.Value, error) {
	wk, err := encodeKwargs(kwargs)
	if err != nil {
		return nil, err
	}
	result, err := r.roundTrip(&frame{Op: opConstruct, Name: class, Kwargs: wk})
	if err != nil {
		return nil, err
	}
	return decodeValue(*result)
}

// Get reads an attribute of a foreign object.
func (r *Runtime) Get(obj foreign.Value, name string) (foreign.Value, error) {
	ref, err := objectRef(obj)
	if err != nil {
		return nil, err
	}
	result, err := r.roundTrip(&frame{Op: opGet, Target: ref, Name: name})
	if err != nil {
		return nil, err
	}
	return decodeValue(*result)
}

// Set writes an attribute of a foreign object.
func (r *Runtime) Set(obj foreign.Value, name string, v foreign.Value) error {
	ref, err := objectRef(obj)
	if err != nil {
		return err
	}
	wv, err := encodeValue(v)
	if err != nil {
		return err
	}
	_, err = r.roundTrip(&frame{Op: opSet, Target: ref, Name: name, Args: []wireValue{wv}})
	return err
}

// Call invokes a method on a foreign object.
func (r *Runtime) Call(obj foreign.Value, method string, args ...foreign.Value) (foreign.Value, error) {
	ref, err := objectRef(obj)
	if err != nil {
		return nil, err
	}
	wargs, err := encodeArgs(args)
	if err != nil {
		return nil, err
	}
	result, err := r.roundTrip(&frame{Op: opCall, Target: ref, Name: method, Args: wargs})
	if err != nil {
		return nil, err
	}
	return decodeValue(*result)
}

// Callable registers fn in the callable table and returns its wire handle.
func (r *Runtime) Callable(name string, fn foreign.Func) foreign.Value {
	id := r.nextFn.Add(1)
	r.mu.Lock()
	r.callables[id] = namedFunc{name: name, fn: fn}
	r.mu.Unlock()
	return &value{kind: kindFn, ref: id}
}

// DefineClass registers a new foreign class deriving from the application
// base class.
func (r *Runtime) DefineClass(name string, members map[string]foreign.Value) (foreign.Value, error) {
	wm := make(map[string]wireValue, len(members))
	for k, v := range members {
		wv, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("host: member %q: %w", k, err)
		}
		wm[k] = wv
	}
	result, err := r.roundTrip(&frame{Op: opClass, Name: name, Kwargs: wm})
	if err != nil {
		return nil, err
	}
	return decodeValue(*result)
}

// AppBase returns the foreign application base class, fetched once.
func (r *Runtime) AppBase() foreign.Value {
	r.appBaseMu.Lock()
	defer r.appBaseMu.Unlock()
	if r.appBase != nil {
		return r.appBase
	}
	result, err := r.roundTrip(&frame{Op: opAppBase})
	if err != nil {
		r.log.Errorf("app base: %s", err.Error())
		return noneVal
	}
	v, err := decodeValue(*result)
	if err != nil {
		r.log.Errorf("app base: %s", err.Error())
		return noneVal
	}
	r.appBase = v
	return v
}

func encodeArgs(args []foreign.Value) ([]wireValue, error) {
	out := make([]wireValue, len(args))
	for i, a := range args {
		wv, err := encodeValue(a)
		if err != nil {
			return nil, err
		}
		out[i] = wv
	}
	return out, nil
}

func encodeKwargs(kwargs foreign.Kwargs) (map[string]wireValue, error) {
	if len(kwargs) == 0 {
		return nil, nil
	}
	out := make(map[string]wireValue, len(kwargs))
	for k, v := range kwargs {
		wv, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("host: kwarg %q: %w", k, err)
		}
		out[k] = wv
	}
	return out, nil
}
