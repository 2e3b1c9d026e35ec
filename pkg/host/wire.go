// Package host implements foreign.Runtime over a byte transport to a hosted
// toolkit interpreter: every protocol verb becomes a framed request, and
// foreign callback invocations arrive as framed requests in the opposite
// direction.
package host

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-facet/facet/pkg/foreign"
)

// Wire operations. Native-to-foreign requests mirror the object protocol
// verbs; invoke travels the other way when a callable fires.
const (
	opConstruct   = "construct"
	opGet         = "get"
	opSet         = "set"
	opCall        = "call"
	opClass       = "class"
	opAppBase     = "app_base"
	opServerNew   = "server_new"
	opServerStart = "server_start"
	opServerServe = "server_serve"
	opServerStop  = "server_stop"
	opInvoke      = "invoke"
	opResult      = "result"
)

// Value kinds carried in wireValue.Kind.
const (
	kindNone  = "none"
	kindBool  = "bool"
	kindInt   = "int"
	kindFloat = "float"
	kindStr   = "str"
	kindObj   = "obj"
	kindFn    = "fn"
)

// wireValue is the frame representation of one foreign value. Objects travel
// as foreign-assigned references; callables as native-assigned references.
type wireValue struct {
	Kind  string  `json:"kind" cbor:"kind"`
	Bool  bool    `json:"bool,omitempty" cbor:"bool,omitempty"`
	Int   int64   `json:"int,omitempty" cbor:"int,omitempty"`
	Float float64 `json:"float,omitempty" cbor:"float,omitempty"`
	Str   string  `json:"str,omitempty" cbor:"str,omitempty"`
	Ref   uint64  `json:"ref,omitempty" cbor:"ref,omitempty"`
}

// frame is one protocol message in either direction. Requests carry Op plus
// op-specific fields; responses carry Op=result with Result or Err set and
// the originating ID.
type frame struct {
	ID     uint64               `json:"id" cbor:"id"`
	Op     string               `json:"op" cbor:"op"`
	Target uint64               `json:"target,omitempty" cbor:"target,omitempty"`
	Name   string               `json:"name,omitempty" cbor:"name,omitempty"`
	Args   []wireValue          `json:"args,omitempty" cbor:"args,omitempty"`
	Kwargs map[string]wireValue `json:"kwargs,omitempty" cbor:"kwargs,omitempty"`
	Result *wireValue           `json:"result,omitempty" cbor:"result,omitempty"`
	Err    string               `json:"err,omitempty" cbor:"err,omitempty"`
}

// maxFrameSize bounds a single frame to keep a corrupt length prefix from
// allocating unbounded memory.
const maxFrameSize = 16 << 20

// writeFrame encodes f with the codec and writes it length-prefixed.
func writeFrame(w *bufio.Writer, codec foreign.MessageCodec, f *frame) error {
	payload, err := codec.Encode(f)
	if err != nil {
		return fmt.Errorf("host: encode frame: %w", err)
	}
	if len(payload) > maxFrameSize {
		return fmt.Errorf("host: frame too large (%d bytes)", len(payload))
	}
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return w.Flush()
}

// readFrame reads one length-prefixed frame and decodes it with the codec.
func readFrame(r *bufio.Reader, codec foreign.MessageCodec) (*frame, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n > maxFrameSize {
		return nil, fmt.Errorf("host: frame too large (%d bytes)", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	var f frame
	if err := codec.Decode(payload, &f); err != nil {
		return nil, fmt.Errorf("host: decode frame: %w", err)
	}
	return &f, nil
}
