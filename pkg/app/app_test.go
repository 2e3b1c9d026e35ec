package app_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-facet/facet/pkg/app"
	"github.com/go-facet/facet/pkg/bridge"
	facettest "github.com/go-facet/facet/pkg/testing"
	"github.com/go-facet/facet/pkg/widgets"
)

// taskDelegate is a minimal delegate with two declared widgets.
type taskDelegate struct {
	rt    *facettest.FakeRuntime
	input *widgets.TextInput
	add   *widgets.Button

	builds int
}

func newTaskDelegate(rt *facettest.FakeRuntime) *taskDelegate {
	return &taskDelegate{
		rt:    rt,
		input: widgets.NewTextInput(rt, "task"),
		add:   widgets.NewButton(rt, "Add"),
	}
}

func (d *taskDelegate) Declare(b *bridge.Builder) error {
	if err := b.Register("input", d.input); err != nil {
		return err
	}
	return b.Register("add", d.add)
}

func (d *taskDelegate) Build() widgets.Widget {
	d.builds++
	box := widgets.NewVBox(d.rt)
	box.Append(d.input)
	box.Append(d.add)
	return box
}

// emptyDelegate declares nothing and builds no root.
type emptyDelegate struct{}

func (emptyDelegate) Declare(*bridge.Builder) error { return nil }
func (emptyDelegate) Build() widgets.Widget         { return nil }

// startApp runs Start in a goroutine and waits until the fake server has
// driven the synthetic session.
func startApp(t *testing.T, rt *facettest.FakeRuntime, a *app.App) (*facettest.FakeServer, chan error) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- a.Start() }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if srv := rt.LastServer(); srv != nil && srv.Instance() != nil {
			return srv, errc
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for the session to start")
	return nil, nil
}

func TestApp_StartDrivesSession(t *testing.T) {
	rt := facettest.NewRuntime()
	d := newTaskDelegate(rt)
	a := app.New(rt, d, app.Options{})

	srv, errc := startApp(t, rt, a)

	members := rt.DefinedClass("app_test_taskDelegate")
	if members == nil {
		t.Fatal("application class was not defined")
	}
	for _, name := range []string{"input", "add", "init", "main"} {
		if _, ok := members[name]; !ok {
			t.Errorf("class missing member %q", name)
		}
	}

	if got := rt.ResourceDirOf(srv.Instance()); got != "res" {
		t.Errorf("resource dir = %q, want default %q", got, "res")
	}
	if srv.Root() == nil {
		t.Error("session retained no root widget")
	}
	if d.builds != 1 {
		t.Errorf("Build ran %d times, want 1", d.builds)
	}

	cfg := srv.Config()
	if cfg.Address != "127.0.0.1" || cfg.Port != 8081 {
		t.Errorf("server config = %s:%d, want default 127.0.0.1:8081", cfg.Address, cfg.Port)
	}

	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := <-errc; err != nil {
		t.Errorf("Start returned %v after Stop, want nil", err)
	}
}

func TestApp_SecondStartFails(t *testing.T) {
	rt := facettest.NewRuntime()
	a := app.New(rt, newTaskDelegate(rt), app.Options{})

	srv, errc := startApp(t, rt, a)
	if err := a.Start(); !errors.Is(err, app.ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}
	srv.Stop()
	<-errc
}

func TestApp_OptionsOverrideDefaults(t *testing.T) {
	rt := facettest.NewRuntime()
	a := app.New(rt, newTaskDelegate(rt), app.Options{
		Address:     "0.0.0.0",
		Port:        9000,
		Title:       "Tasks",
		ResourceDir: "assets",
	})

	srv, errc := startApp(t, rt, a)
	cfg := srv.Config()
	if cfg.Address != "0.0.0.0" || cfg.Port != 9000 || cfg.Title != "Tasks" || cfg.ResourceDir != "assets" {
		t.Errorf("server config = %+v, want the explicit options", cfg)
	}
	if got := rt.ResourceDirOf(srv.Instance()); got != "assets" {
		t.Errorf("resource dir = %q, want %q", got, "assets")
	}
	srv.Stop()
	<-errc
}

func TestApp_CloseShowsNoticeAndReleasesStart(t *testing.T) {
	rt := facettest.NewRuntime()
	a := app.New(rt, newTaskDelegate(rt), app.Options{})

	_, errc := startApp(t, rt, a)
	a.Close()

	notice := rt.LastDialog()
	if notice == nil {
		t.Fatal("Close should construct a notice dialog")
	}
	if !rt.Shown(notice) {
		t.Error("notice dialog should be shown")
	}
	for _, name := range []string{"conf", "cancel"} {
		btn, err := rt.Get(notice, name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		if !rt.HasAttribute(btn, "disabled") {
			t.Errorf("notice %s button should be disabled", name)
		}
	}

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Start returned %v after Close, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Start did not return after Close")
	}
}

func TestApp_NilRootFallsBackToWelcome(t *testing.T) {
	rt := facettest.NewRuntime()
	a := app.New(rt, emptyDelegate{}, app.Options{Title: "Bare"})

	srv, errc := startApp(t, rt, a)
	root := srv.Root()
	if root == nil {
		t.Fatal("welcome fallback produced no root")
	}
	if children := rt.ChildrenOf(root); len(children) == 0 {
		t.Error("welcome layout should hold child widgets")
	}
	srv.Stop()
	<-errc
}
