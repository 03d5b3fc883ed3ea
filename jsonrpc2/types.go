package jsonrpc2

import (
	"encoding/json"
	"errors"
	"fmt"
)

const Version = "2.0"

const (
	ErrCodeParse          = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeServer         = -32000
)

// ErrInvalidResponse is returned when a reply decodes but does not conform
// to the JSONRPC 2.0 response shape: it must carry a version, an ID, and
// one of result or error.
var ErrInvalidResponse = errors.New("server returned an invalid response")

type Request struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification returns true if the request carries no ID and therefore
// expects no response.
func (req *Request) IsNotification() bool {
	return len(req.ID) == 0
}

type Response struct {
	ID      json.RawMessage `json:"id,omitempty"`
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ErrResponse    `json:"error,omitempty"`
}

// Validate checks the response against the protocol's required fields. A
// declared error object wins over structural checks, so a server-reported
// failure always surfaces as an *ErrResponse rather than
// ErrInvalidResponse.
func (resp *Response) Validate() error {
	if resp.Error != nil {
		return resp.Error
	}
	if resp.Version == "" || len(resp.ID) == 0 || len(resp.Result) == 0 {
		return ErrInvalidResponse
	}
	return nil
}

// UnmarshalResult validates the response and unmarshals its result into
// the given value. A nil result value discards the payload.
func (resp *Response) UnmarshalResult(result interface{}) error {
	if err := resp.Validate(); err != nil {
		return err
	}
	if result == nil || string(resp.Result) == "null" {
		return nil
	}
	return json.Unmarshal(resp.Result, result)
}

// ErrResponse is a declared protocol error: the code, message, and
// optional data are whatever the server reported, propagated verbatim.
type ErrResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (err *ErrResponse) Error() string {
	return fmt.Sprintf("%d: %s", err.Code, err.Message)
}

// ErrorCode returns the JSONRPC error code, to allow for code-based
// branching without a type assertion on *ErrResponse.
func (err *ErrResponse) ErrorCode() int {
	return err.Code
}
