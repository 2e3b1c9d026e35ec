// Package bridge implements the object/callback bridge between native Go
// code and the foreign toolkit: wrapping Go functions as foreign callables,
// attaching them to widget event slots, and synthesizing the descriptor from
// which the foreign application class is defined.
package bridge

import (
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/foreign"
)

// NewCallable wraps fn as a foreign callable value.
//
// The returned value upholds the boundary contract: a nil result from fn is
// converted to the runtime's none, and a failing or panicking fn never
// crosses into the foreign runtime: the failure is reported through
// pkg/errors and the foreign side receives none, leaving the session usable.
//
// The wrapper holds no mutable state, so the foreign runtime may invoke it
// re-entrantly from nested event dispatch.
func NewCallable(rt foreign.Runtime, name string, fn foreign.Func) foreign.Value {
	return rt.Callable(name, func(self foreign.Value, args []foreign.Value) (ret foreign.Value, err error) {
		defer facerr.RecoverWithCallback("bridge.callable "+name, func(any) {
			ret = rt.None()
			err = nil
		})

		v, ferr := fn(self, args)
		if ferr != nil {
			facerr.Report(&facerr.FacetError{
				Op:   "bridge.callable " + name,
				Kind: facerr.KindDispatch,
				Err:  ferr,
			})
			return rt.None(), nil
		}
		if v == nil {
			return rt.None(), nil
		}
		return v, nil
	})
}
