package jsonrpc2

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ErrBothParamTypes is a usage error: the protocol allows positional
// params or named params on a request, never both.
var ErrBothParamTypes = errors.New("params may be positional or named, not both")

// NewID returns a fresh correlation ID in wire form. IDs are opaque
// strings; string IDs survive JSON round trips without number-precision
// concerns.
func NewID() (json.RawMessage, error) {
	return json.Marshal(uuid.New().String())
}

// MarshalParams renders a params field from positional or named
// arguments. Empty arguments render as no params field at all. Supplying
// both kinds is refused.
func MarshalParams(positional []interface{}, named map[string]interface{}) (json.RawMessage, error) {
	if len(positional) > 0 && len(named) > 0 {
		return nil, ErrBothParamTypes
	}
	if len(named) > 0 {
		return json.Marshal(named)
	}
	if len(positional) > 0 {
		return json.Marshal(positional)
	}
	return nil, nil
}
