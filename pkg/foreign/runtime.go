package foreign

// Runtime is the object/attribute/call protocol of the foreign toolkit.
// Exactly one Runtime backs a running application; it is passed explicitly to
// every widget constructor and bridge component rather than held in package
// state, so tests can substitute their own.
type Runtime interface {
	// Construct instantiates a foreign toolkit class by name.
	Construct(class string, kwargs Kwargs) (Value, error)

	// Get reads an attribute of a foreign object.
	Get(obj Value, name string) (Value, error)

	// Set writes an attribute of a foreign object.
	Set(obj Value, name string, v Value) error

	// Call invokes a method on a foreign object and returns its result,
	// which is the runtime's none for void methods.
	Call(obj Value, method string, args ...Value) (Value, error)

	// Callable wraps fn as a foreign callable value. The name is used for
	// diagnostics only and need not be unique.
	Callable(name string, fn Func) Value

	// DefineClass registers a new foreign class deriving from the toolkit's
	// application base class, with the given members (widget objects and
	// callables). Class names must be distinct per application; a collision
	// is a configuration error the runtime does not defend against.
	DefineClass(name string, members map[string]Value) (Value, error)

	// AppBase returns the foreign application base class. The synthesized
	// init member forwards to its constructor.
	AppBase() Value

	// NewServer creates the foreign server that will instantiate class on
	// each incoming session and drive its event loop.
	NewServer(class Value, cfg ServerConfig) (Server, error)

	// Scalar bridging. The As* accessors fail with ErrTypeMismatch when the
	// value does not carry the requested type.
	None() Value
	Bool(b bool) Value
	Int(i int) Value
	Float(f float64) Value
	Str(s string) Value
	AsBool(v Value) (bool, error)
	AsInt(v Value) (int, error)
	AsFloat(v Value) (float64, error)
	AsStr(v Value) (string, error)
	IsNone(v Value) bool
}

// Server is the foreign serving loop. Rendering, HTTP transport, and session
// handling all live behind it; native code only starts and stops it.
type Server interface {
	// Start binds the server to its configured address.
	Start() error

	// ServeForever blocks handling requests until Stop is called, usually
	// from within a dispatched event handler.
	ServeForever() error

	// Stop shuts the server down. Fire-and-forget: no acknowledgment from
	// in-flight sessions is awaited.
	Stop() error
}

// ServerConfig carries the server parameters the foreign runtime consumes.
type ServerConfig struct {
	// Address is the interface to bind, defaulting to localhost.
	Address string
	// Port is the TCP port to serve on.
	Port int
	// Title is the page title presented to connecting clients.
	Title string
	// ResourceDir is the directory of static assets (conventionally "res")
	// that widgets reference by relative filename.
	ResourceDir string
}
