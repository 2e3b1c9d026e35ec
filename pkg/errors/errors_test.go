package errors

import (
	"errors"
	"strings"
	"testing"
)

type capture struct {
	errs   []*FacetError
	panics []*PanicError
}

func (c *capture) HandleError(err *FacetError) { c.errs = append(c.errs, err) }
func (c *capture) HandlePanic(err *PanicError) { c.panics = append(c.panics, err) }

func TestKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:  "unknown",
		KindForeign:  "foreign",
		KindDispatch: "dispatch",
		KindConfig:   "config",
		KindPanic:    "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestReport(t *testing.T) {
	c := &capture{}
	SetHandler(c)
	defer SetHandler(nil)

	cause := errors.New("connection refused")
	Report(&FacetError{Op: "host.Construct", Kind: KindForeign, Err: cause})

	if len(c.errs) != 1 {
		t.Fatalf("captured %d errors, want 1", len(c.errs))
	}
	got := c.errs[0]
	if got.Timestamp.IsZero() {
		t.Error("Report should stamp the error")
	}
	if !errors.Is(got, cause) {
		t.Error("FacetError should unwrap to its cause")
	}
	if msg := got.Error(); !strings.Contains(msg, "host.Construct") || !strings.Contains(msg, "foreign") {
		t.Errorf("Error() = %q, want op and kind present", msg)
	}

	// Reporting nil is a no-op.
	Report(nil)
	if len(c.errs) != 1 {
		t.Error("Report(nil) should not reach the handler")
	}
}

func TestFacetError_SlotInMessage(t *testing.T) {
	err := &FacetError{
		Op:   "bridge.Attach",
		Kind: KindForeign,
		Slot: "onclick",
		Err:  errors.New("set failed"),
	}
	if msg := err.Error(); !strings.Contains(msg, "slot=onclick") {
		t.Errorf("Error() = %q, want slot named", msg)
	}
}

func TestRecover(t *testing.T) {
	c := &capture{}
	SetHandler(c)
	defer SetHandler(nil)

	func() {
		defer Recover("widget.refresh")
		panic("stale handle")
	}()

	if len(c.panics) != 1 {
		t.Fatalf("captured %d panics, want 1", len(c.panics))
	}
	got := c.panics[0]
	if got.Op != "widget.refresh" || got.Value != "stale handle" {
		t.Errorf("panic = %+v, want op and value preserved", got)
	}
	if got.StackTrace == "" {
		t.Error("recovered panic should carry a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&capture{})
	defer SetHandler(nil)

	var seen any
	func() {
		defer RecoverWithCallback("op", func(r any) { seen = r })
		panic(42)
	}()

	if seen != 42 {
		t.Errorf("callback saw %v, want 42", seen)
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&capture{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("handler after SetHandler(nil) = %T, want *LogHandler", getHandler())
	}
}
