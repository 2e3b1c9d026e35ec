package foreign

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MessageCodec encodes and decodes protocol frames for Runtime
// implementations that reach the foreign interpreter over a byte transport.
type MessageCodec interface {
	// Encode converts a frame to bytes for transmission.
	Encode(value any) ([]byte, error)

	// Decode converts received bytes into the given frame.
	Decode(data []byte, v any) error
}

// JsonCodec implements MessageCodec using JSON encoding. JSON prioritizes
// interoperability with interpreters that lack a CBOR library.
type JsonCodec struct{}

// Encode serializes the frame to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes into v.
func (c JsonCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// CborCodec implements MessageCodec using canonical CBOR encoding, giving
// deterministic frames and a compact binary representation.
type CborCodec struct{}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("foreign: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Encode serializes the frame to canonical CBOR bytes.
func (c CborCodec) Encode(value any) ([]byte, error) {
	return cborEncMode.Marshal(value)
}

// Decode deserializes CBOR bytes into v.
func (c CborCodec) Decode(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

// DefaultCodec is the codec used by transport-backed runtimes unless
// configured otherwise.
var DefaultCodec MessageCodec = CborCodec{}
