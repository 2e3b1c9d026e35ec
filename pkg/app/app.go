// Package app owns the lifecycle of one running facet application: it builds
// the foreign class descriptor from the delegate's declared widgets, defines
// the class, and runs the foreign serving loop until closed.
package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-facet/facet/pkg/bridge"
	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/foreign"
	"github.com/go-facet/facet/pkg/widgets"
)

// ErrAlreadyStarted is returned by Start on an App whose descriptor was
// already built. An App runs at most once; there is no rebuild path.
var ErrAlreadyStarted = errors.New("app: already started")

// Delegate is the application-defined object behind a facet app. It declares
// its widgets explicitly and builds the UI tree on session start.
type Delegate interface {
	// Declare registers the delegate's widgets with the descriptor builder.
	// Only values that can present a foreign object are registrable; plain
	// native state stays out of the descriptor by construction.
	Declare(b *bridge.Builder) error

	// Build assembles the UI tree and returns its root widget. Build runs
	// on the foreign request loop when a session starts. A nil root falls
	// back to the default welcome layout.
	Build() widgets.Widget
}

// Options configures a running application.
type Options struct {
	// Address is the interface to bind. Defaults to 127.0.0.1.
	Address string
	// Port is the TCP port to serve on. Defaults to 8081.
	Port int
	// Title is the page title. Defaults to the delegate's type name.
	Title string
	// ResourceDir is the static asset directory registered with the foreign
	// server. Defaults to "res".
	ResourceDir string
}

// App runs one delegate on one foreign runtime.
type App struct {
	rt       foreign.Runtime
	delegate Delegate
	opts     Options

	mu      sync.Mutex
	started bool
	server  foreign.Server
}

// New creates an application for the given runtime and delegate, applying
// option defaults.
func New(rt foreign.Runtime, delegate Delegate, opts Options) *App {
	if opts.Address == "" {
		opts.Address = "127.0.0.1"
	}
	if opts.Port == 0 {
		opts.Port = 8081
	}
	if opts.ResourceDir == "" {
		opts.ResourceDir = "res"
	}
	if opts.Title == "" {
		opts.Title = classNameFor(delegate)
	}
	return &App{rt: rt, delegate: delegate, opts: opts}
}

// Start builds the descriptor, defines the foreign application class, and
// blocks serving requests until Close is invoked from within a handler.
// Declaration and synthesis failures surface immediately; Start never
// silently no-ops. A second Start fails with ErrAlreadyStarted.
func (a *App) Start() error {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return ErrAlreadyStarted
	}
	a.started = true
	a.mu.Unlock()

	builder := bridge.NewBuilder(a.rt)
	if err := a.delegate.Declare(builder); err != nil {
		return &facerr.FacetError{Op: "app.Start", Kind: facerr.KindConfig, Err: err}
	}

	desc, err := builder.Build(a.initFunc(), a.mainFunc())
	if err != nil {
		return &facerr.FacetError{Op: "app.Start", Kind: facerr.KindConfig, Err: err}
	}

	cls, err := desc.Define(a.rt, classNameFor(a.delegate))
	if err != nil {
		return &facerr.FacetError{Op: "app.Start", Kind: facerr.KindForeign, Err: err}
	}

	srv, err := a.rt.NewServer(cls, foreign.ServerConfig{
		Address:     a.opts.Address,
		Port:        a.opts.Port,
		Title:       a.opts.Title,
		ResourceDir: a.opts.ResourceDir,
	})
	if err != nil {
		return &facerr.FacetError{Op: "app.Start", Kind: facerr.KindForeign, Err: err}
	}

	a.mu.Lock()
	a.server = srv
	a.mu.Unlock()

	if err := srv.Start(); err != nil {
		return &facerr.FacetError{Op: "app.Start", Kind: facerr.KindForeign, Err: err}
	}
	return srv.ServeForever()
}

// Close shows a terminal notice with its action buttons disabled and stops
// the foreign server. Fire-and-forget: no acknowledgment is awaited. Close
// is meant to be called from within a dispatched event handler.
func (a *App) Close() {
	notice := widgets.NewDialog(a.rt, "Application closed",
		"It is now safe to close this window.")
	notice.SetActionsEnabled(false)
	notice.Show()

	a.mu.Lock()
	srv := a.server
	a.mu.Unlock()
	if srv == nil {
		return
	}
	if err := srv.Stop(); err != nil {
		facerr.Report(&facerr.FacetError{Op: "app.Close", Kind: facerr.KindForeign, Err: err})
	}
}

// initFunc synthesizes the descriptor's init member: it forwards to the
// foreign application base-class constructor with the configured static
// resource path.
func (a *App) initFunc() foreign.Func {
	return func(self foreign.Value, args []foreign.Value) (foreign.Value, error) {
		callArgs := append([]foreign.Value{self, a.rt.Str(a.opts.ResourceDir)}, args...)
		return a.rt.Call(a.rt.AppBase(), "init", callArgs...)
	}
}

// mainFunc synthesizes the descriptor's main member: it invokes the
// delegate's entry point and returns the resulting root widget's foreign
// object, substituting the welcome layout for a nil root.
func (a *App) mainFunc() foreign.Func {
	return func(self foreign.Value, args []foreign.Value) (foreign.Value, error) {
		root := a.delegate.Build()
		if root == nil {
			root = welcome(a.rt, a.opts.Title)
		}
		return root.Foreign(), nil
	}
}

// classNameFor derives the foreign class name from the delegate's Go type.
// Distinct delegate types yield distinct names; reusing one delegate type for
// two concurrently defined classes is a configuration error.
func classNameFor(d Delegate) string {
	name := fmt.Sprintf("%T", d)
	name = strings.TrimLeft(name, "*")
	name = strings.NewReplacer(".", "_", "/", "_", "[", "_", "]", "_").Replace(name)
	return name
}
