package testing

import (
	"github.com/go-facet/facet/pkg/foreign"
)

// Scalar handles of the fake runtime. Values are immediate rather than
// interned; identity semantics only matter for objects.

type noneValue struct{}

func (noneValue) ForeignValue() {}

type boolValue bool

func (boolValue) ForeignValue() {}

type intValue int

func (intValue) ForeignValue() {}

type floatValue float64

func (floatValue) ForeignValue() {}

type strValue string

func (strValue) ForeignValue() {}

// None returns the runtime's null value.
func (r *FakeRuntime) None() foreign.Value { return noneValue{} }

// Bool wraps a native bool.
func (r *FakeRuntime) Bool(b bool) foreign.Value { return boolValue(b) }

// Int wraps a native int.
func (r *FakeRuntime) Int(i int) foreign.Value { return intValue(i) }

// Float wraps a native float.
func (r *FakeRuntime) Float(f float64) foreign.Value { return floatValue(f) }

// Str wraps a native string.
func (r *FakeRuntime) Str(s string) foreign.Value { return strValue(s) }

// AsBool unwraps a bool value.
func (r *FakeRuntime) AsBool(v foreign.Value) (bool, error) {
	if b, ok := v.(boolValue); ok {
		return bool(b), nil
	}
	return false, foreign.ErrTypeMismatch
}

// AsInt unwraps an int value.
func (r *FakeRuntime) AsInt(v foreign.Value) (int, error) {
	if i, ok := v.(intValue); ok {
		return int(i), nil
	}
	return 0, foreign.ErrTypeMismatch
}

// AsFloat unwraps a float value.
func (r *FakeRuntime) AsFloat(v foreign.Value) (float64, error) {
	if f, ok := v.(floatValue); ok {
		return float64(f), nil
	}
	return 0, foreign.ErrTypeMismatch
}

// AsStr unwraps a string value.
func (r *FakeRuntime) AsStr(v foreign.Value) (string, error) {
	if s, ok := v.(strValue); ok {
		return string(s), nil
	}
	return "", foreign.ErrTypeMismatch
}

// IsNone reports whether v is the runtime's null.
func (r *FakeRuntime) IsNone(v foreign.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(noneValue)
	return ok
}
