package testing

import (
	"fmt"
	"sync"

	"github.com/go-facet/facet/pkg/foreign"
)

// FakeServer emulates the foreign serving loop. Start runs one synthetic
// session synchronously: it instantiates the defined class, invokes the
// synthesized init with the configured resource path, then invokes main and
// retains the returned root. ServeForever blocks until Stop.
type FakeServer struct {
	rt    *FakeRuntime
	class *Object
	cfg   foreign.ServerConfig

	mu       sync.Mutex
	started  bool
	instance *Object
	root     foreign.Value

	done     chan struct{}
	stopOnce sync.Once
}

// NewServer creates a fake server for a defined class.
func (r *FakeRuntime) NewServer(class foreign.Value, cfg foreign.ServerConfig) (foreign.Server, error) {
	cls, err := asObject(class)
	if err != nil {
		return nil, err
	}
	srv := &FakeServer{
		rt:    r,
		class: cls,
		cfg:   cfg,
		done:  make(chan struct{}),
	}
	r.mu.Lock()
	r.servers = append(r.servers, srv)
	r.mu.Unlock()
	return srv, nil
}

// Start instantiates the application class and drives its lifecycle members.
func (s *FakeServer) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("fake server: already started")
	}
	s.started = true
	s.mu.Unlock()

	instance := s.rt.newObject("instance")
	s.class.mu.Lock()
	for name, v := range s.class.members {
		instance.members[name] = v
	}
	s.class.mu.Unlock()

	if _, err := s.invokeMember(instance, "init"); err != nil {
		return err
	}
	root, err := s.invokeMember(instance, "main")
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.instance = instance
	s.root = root
	s.mu.Unlock()
	return nil
}

func (s *FakeServer) invokeMember(instance *Object, name string) (foreign.Value, error) {
	instance.mu.Lock()
	member, ok := instance.members[name]
	instance.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("fake server: class has no %s member", name)
	}
	cb, err := asObject(member)
	if err != nil || cb.fn == nil {
		return nil, fmt.Errorf("fake server: %s member is not callable: %w", name, foreign.ErrNotCallable)
	}
	return cb.fn(instance, nil)
}

// ServeForever blocks until Stop is called.
func (s *FakeServer) ServeForever() error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return foreign.ErrNotConnected
	}
	<-s.done
	return nil
}

// Stop releases ServeForever. Idempotent.
func (s *FakeServer) Stop() error {
	s.stopOnce.Do(func() { close(s.done) })
	return nil
}

// Config returns the server configuration the runtime received.
func (s *FakeServer) Config() foreign.ServerConfig { return s.cfg }

// Instance returns the application instance created by Start, or nil before
// a session ran.
func (s *FakeServer) Instance() foreign.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.instance == nil {
		return nil
	}
	return s.instance
}

// Root returns the root widget object returned by the main member.
func (s *FakeServer) Root() foreign.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// LastServer returns the most recently created server, or nil.
func (r *FakeRuntime) LastServer() *FakeServer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.servers) == 0 {
		return nil
	}
	return r.servers[len(r.servers)-1]
}

// DefinedClass returns the member map registered under name, or nil.
func (r *FakeRuntime) DefinedClass(name string) map[string]foreign.Value {
	r.mu.Lock()
	defer r.mu.Unlock()
	def, ok := r.classes[name]
	if !ok {
		return nil
	}
	out := make(map[string]foreign.Value, len(def.members))
	for k, v := range def.members {
		out[k] = v
	}
	return out
}
