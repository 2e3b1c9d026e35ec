package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	facerr "github.com/go-facet/facet/pkg/errors"
	"github.com/go-facet/facet/pkg/foreign"

	_ "github.com/tliron/commonlog/simple"
)

// Runtime reaches a hosted toolkit interpreter over an io.ReadWriteCloser.
// Requests are correlated by frame ID; incoming invoke frames re-enter
// native callables on their own goroutines, so a handler blocked in a
// protocol call can be re-entered by a nested event without deadlock.
type Runtime struct {
	conn  io.ReadWriteCloser
	codec foreign.MessageCodec
	log   commonlog.Logger

	outgoing chan *frame
	done     chan struct{}
	nextID   atomic.Uint64
	nextFn   atomic.Uint64

	mu        sync.Mutex
	pending   map[uint64]chan *frame
	callables map[uint64]namedFunc
	closed    bool
	doneOnce  sync.Once

	appBase   foreign.Value
	appBaseMu sync.Mutex

	group  *errgroup.Group
	cancel context.CancelFunc
}

type namedFunc struct {
	name string
	fn   foreign.Func
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithCodec overrides the frame codec (canonical CBOR by default).
func WithCodec(codec foreign.MessageCodec) Option {
	return func(r *Runtime) { r.codec = codec }
}

// WithLogger overrides the runtime's logger.
func WithLogger(log commonlog.Logger) Option {
	return func(r *Runtime) { r.log = log }
}

// New creates a Runtime over conn and starts its read and write pumps.
func New(conn io.ReadWriteCloser, opts ...Option) *Runtime {
	r := &Runtime{
		conn:      conn,
		codec:     foreign.DefaultCodec,
		log:       commonlog.GetLogger("facet.host"),
		outgoing:  make(chan *frame),
		done:      make(chan struct{}),
		pending:   make(map[uint64]chan *frame),
		callables: make(map[uint64]namedFunc),
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.group, _ = errgroup.WithContext(ctx)
	r.group.Go(func() error { return r.readPump(ctx) })
	r.group.Go(func() error { return r.writePump(ctx) })
	return r
}

// Close tears the transport down. All pending and future calls fail with
// foreign.ErrClosed. A pump failure recorded before Close is surfaced in the
// returned error.
func (r *Runtime) Close() error {
	r.failPending()
	r.cancel()
	err := r.conn.Close()
	return errors.Join(err, r.group.Wait())
}

func (r *Runtime) readPump(ctx context.Context) error {
	br := bufio.NewReader(r.conn)
	for {
		f, err := readFrame(br, r.codec)
		if err != nil {
			// Snapshot the context before failPending: the failure becomes
			// observable there, and a racing Close must not reclassify a
			// genuine wire error as an orderly shutdown.
			canceled := ctx.Err() != nil
			r.failPending()
			if canceled || err == io.EOF {
				return nil
			}
			r.log.Errorf("read pump: %s", err.Error())
			return err
		}
		if f.Op == opInvoke {
			// Callbacks run on their own goroutine: the foreign runtime may
			// deliver a nested event while a handler is blocked in a call.
			go r.dispatchInvoke(f)
			continue
		}
		r.mu.Lock()
		ch, ok := r.pending[f.ID]
		delete(r.pending, f.ID)
		r.mu.Unlock()
		if !ok {
			r.log.Warningf("orphan response for frame %d", f.ID)
			continue
		}
		ch <- f
	}
}

func (r *Runtime) writePump(ctx context.Context) error {
	bw := bufio.NewWriter(r.conn)
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-r.outgoing:
			if err := writeFrame(bw, r.codec, f); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				r.log.Errorf("write pump: %s", err.Error())
				return err
			}
		}
	}
}

// failPending releases every caller waiting on a response or blocked handing
// a frame to the write pump.
func (r *Runtime) failPending() {
	r.mu.Lock()
	r.closed = true
	for id, ch := range r.pending {
		close(ch)
		delete(r.pending, id)
	}
	r.mu.Unlock()
	r.doneOnce.Do(func() { close(r.done) })
}

// roundTrip sends f and blocks until its response arrives.
func (r *Runtime) roundTrip(f *frame) (*wireValue, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, foreign.ErrClosed
	}
	f.ID = r.nextID.Add(1)
	ch := make(chan *frame, 1)
	r.pending[f.ID] = ch
	r.mu.Unlock()

	select {
	case r.outgoing <- f:
	case <-r.done:
		r.mu.Lock()
		delete(r.pending, f.ID)
		r.mu.Unlock()
		return nil, foreign.ErrClosed
	}

	resp, ok := <-ch
	if !ok {
		return nil, foreign.ErrClosed
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("host: %s: %s", f.Op, resp.Err)
	}
	if resp.Result == nil {
		none := wireValue{Kind: kindNone}
		return &none, nil
	}
	return resp.Result, nil
}

// dispatchInvoke runs one foreign-initiated callback and replies with its
// result. Failures are reported natively and travel back as the no-value
// sentinel, never as a foreign-visible crash.
func (r *Runtime) dispatchInvoke(f *frame) {
	reply := &frame{ID: f.ID, Op: opResult}
	defer func() {
		if rec := recover(); rec != nil {
			facerr.ReportPanic(&facerr.PanicError{
				Op:         "host.dispatchInvoke",
				Value:      rec,
				StackTrace: facerr.CaptureStack(),
			})
			reply.Result = &wireValue{Kind: kindNone}
		}
		select {
		case r.outgoing <- reply:
		case <-r.done:
		}
	}()

	r.mu.Lock()
	nf, ok := r.callables[f.Target]
	r.mu.Unlock()
	if !ok {
		reply.Err = fmt.Sprintf("no callable %d", f.Target)
		return
	}

	var self foreign.Value = noneVal
	args := make([]foreign.Value, 0, len(f.Args))
	for i, wv := range f.Args {
		v, err := decodeValue(wv)
		if err != nil {
			reply.Err = err.Error()
			return
		}
		if i == 0 {
			self = v
			continue
		}
		args = append(args, v)
	}

	out, err := nf.fn(self, args)
	if err != nil {
		facerr.Report(&facerr.FacetError{
			Op:   "host.invoke " + nf.name,
			Kind: facerr.KindDispatch,
			Err:  err,
		})
		reply.Result = &wireValue{Kind: kindNone}
		return
	}
	wv, err := encodeValue(out)
	if err != nil {
		reply.Err = err.Error()
		return
	}
	reply.Result = &wv
}
