package host

import (
	"github.com/go-facet/facet/pkg/foreign"
)

// server is the host-side handle to the foreign serving loop.
type server struct {
	rt  *Runtime
	ref uint64
}

// NewServer asks the foreign runtime to create a server for the defined
// class.
func (r *Runtime) NewServer(class foreign.Value, cfg foreign.ServerConfig) (foreign.Server, error) {
	ref, err := objectRef(class)
	if err != nil {
		return nil, err
	}
	result, err := r.roundTrip(&frame{Op: opServerNew, Target: ref, Kwargs: map[string]wireValue{
		"address":      {Kind: kindStr, Str: cfg.Address},
		"port":         {Kind: kindInt, Int: int64(cfg.Port)},
		"title":        {Kind: kindStr, Str: cfg.Title},
		"resource_dir": {Kind: kindStr, Str: cfg.ResourceDir},
	}})
	if err != nil {
		return nil, err
	}
	v, err := decodeValue(*result)
	if err != nil {
		return nil, err
	}
	sref, err := objectRef(v)
	if err != nil {
		return nil, err
	}
	return &server{rt: r, ref: sref}, nil
}

// Start binds the foreign server to its configured address.
func (s *server) Start() error {
	_, err := s.rt.roundTrip(&frame{Op: opServerStart, Target: s.ref})
	return err
}

// ServeForever blocks until the foreign serving loop ends; the response to
// this frame only arrives after Stop.
func (s *server) ServeForever() error {
	_, err := s.rt.roundTrip(&frame{Op: opServerServe, Target: s.ref})
	return err
}

// Stop shuts the foreign server down without waiting for in-flight sessions.
func (s *server) Stop() error {
	_, err := s.rt.roundTrip(&frame{Op: opServerStop, Target: s.ref})
	return err
}
