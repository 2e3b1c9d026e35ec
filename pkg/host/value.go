package host

import (
	"fmt"

	"github.com/go-facet/facet/pkg/foreign"
)

// value is the host runtime's foreign.Value: scalars are carried immediately,
// objects and callables by reference.
type value struct {
	kind string
	b    bool
	i    int64
	f    float64
	s    string
	ref  uint64
}

func (v *value) ForeignValue() {}

var noneVal = &value{kind: kindNone}

// encodeValue converts a foreign.Value produced by this runtime into its
// wire form.
func encodeValue(v foreign.Value) (wireValue, error) {
	if v == nil {
		return wireValue{Kind: kindNone}, nil
	}
	hv, ok := v.(*value)
	if !ok {
		return wireValue{}, fmt.Errorf("%w: value from a different runtime", foreign.ErrTypeMismatch)
	}
	return wireValue{
		Kind:  hv.kind,
		Bool:  hv.b,
		Int:   hv.i,
		Float: hv.f,
		Str:   hv.s,
		Ref:   hv.ref,
	}, nil
}

// decodeValue converts a wire value into this runtime's foreign.Value.
func decodeValue(wv wireValue) (*value, error) {
	switch wv.Kind {
	case kindNone, "":
		return noneVal, nil
	case kindBool:
		return &value{kind: kindBool, b: wv.Bool}, nil
	case kindInt:
		return &value{kind: kindInt, i: wv.Int}, nil
	case kindFloat:
		return &value{kind: kindFloat, f: wv.Float}, nil
	case kindStr:
		return &value{kind: kindStr, s: wv.Str}, nil
	case kindObj:
		return &value{kind: kindObj, ref: wv.Ref}, nil
	case kindFn:
		return &value{kind: kindFn, ref: wv.Ref}, nil
	default:
		return nil, fmt.Errorf("host: unknown value kind %q", wv.Kind)
	}
}

// None returns the runtime's null value.
func (r *Runtime) None() foreign.Value { return noneVal }

// Bool wraps a native bool.
func (r *Runtime) Bool(b bool) foreign.Value { return &value{kind: kindBool, b: b} }

// Int wraps a native int.
func (r *Runtime) Int(i int) foreign.Value { return &value{kind: kindInt, i: int64(i)} }

// Float wraps a native float.
func (r *Runtime) Float(f float64) foreign.Value { return &value{kind: kindFloat, f: f} }

// Str wraps a native string.
func (r *Runtime) Str(s string) foreign.Value { return &value{kind: kindStr, s: s} }

// AsBool unwraps a bool value.
func (r *Runtime) AsBool(v foreign.Value) (bool, error) {
	if hv, ok := v.(*value); ok && hv.kind == kindBool {
		return hv.b, nil
	}
	return false, foreign.ErrTypeMismatch
}

// AsInt unwraps an int value.
func (r *Runtime) AsInt(v foreign.Value) (int, error) {
	if hv, ok := v.(*value); ok && hv.kind == kindInt {
		return int(hv.i), nil
	}
	return 0, foreign.ErrTypeMismatch
}

// AsFloat unwraps a float value.
func (r *Runtime) AsFloat(v foreign.Value) (float64, error) {
	if hv, ok := v.(*value); ok && hv.kind == kindFloat {
		return hv.f, nil
	}
	return 0, foreign.ErrTypeMismatch
}

// AsStr unwraps a string value.
func (r *Runtime) AsStr(v foreign.Value) (string, error) {
	if hv, ok := v.(*value); ok && hv.kind == kindStr {
		return hv.s, nil
	}
	return "", foreign.ErrTypeMismatch
}

// IsNone reports whether v is the runtime's null.
func (r *Runtime) IsNone(v foreign.Value) bool {
	if v == nil {
		return true
	}
	hv, ok := v.(*value)
	return ok && hv.kind == kindNone
}

// objectRef returns v's wire reference, requiring an object or class value.
func objectRef(v foreign.Value) (uint64, error) {
	hv, ok := v.(*value)
	if !ok || hv.kind != kindObj {
		return 0, fmt.Errorf("%w: not an object handle", foreign.ErrTypeMismatch)
	}
	return hv.ref, nil
}
