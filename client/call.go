package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

// ErrDetachedCall is returned when a call queued on a batch is invoked
// directly; batched calls only execute through Batch.Execute.
var ErrDetachedCall = errors.New("call belongs to a batch, use Batch.Execute")

// ErrReservedName is a usage error: namespace segments that are empty or
// begin with an underscore are reserved.
type ErrReservedName struct {
	Name string
}

func (err ErrReservedName) Error() string {
	return fmt.Sprintf("reserved method name: %q", err.Name)
}

// Call accumulates one pending remote call: a dotted namespace path,
// positional or named params, and whether it is a notification. It
// renders to the wire request only when executed, so the rendered request
// reflects whatever state exists at that moment.
type Call struct {
	client   *Client
	id       json.RawMessage
	segments []string
	notify   bool
	args     []interface{}
	named    map[string]interface{}
	err      error
}

func newCall(segments []string, notify bool) *Call {
	call := &Call{notify: notify}
	if !notify {
		call.id, call.err = jsonrpc2.NewID()
	}
	return call.Path(segments...)
}

// Path appends namespace segments to the method path. Segments may
// themselves be dotted ("tree.echo"); each dotted part is checked against
// the reserved-name rule.
func (call *Call) Path(segments ...string) *Call {
	for _, segment := range segments {
		for _, part := range strings.Split(segment, ".") {
			if part == "" || strings.HasPrefix(part, "_") {
				if call.err == nil {
					call.err = ErrReservedName{Name: segment}
				}
				return call
			}
			call.segments = append(call.segments, part)
		}
	}
	return call
}

// Args appends positional params.
func (call *Call) Args(args ...interface{}) *Call {
	call.args = append(call.args, args...)
	return call
}

// NamedArgs merges named params.
func (call *Call) NamedArgs(named map[string]interface{}) *Call {
	if call.named == nil {
		call.named = make(map[string]interface{}, len(named))
	}
	for key, value := range named {
		call.named[key] = value
	}
	return call
}

// Request renders the accumulated state into a wire request. It is a pure
// transform and may be called repeatedly; the correlation ID is fixed at
// the call's creation, so repeated renders agree on it.
func (call *Call) Request() (*jsonrpc2.Request, error) {
	if call.err != nil {
		return nil, call.err
	}
	if len(call.segments) == 0 {
		return nil, ErrReservedName{Name: ""}
	}
	params, err := jsonrpc2.MarshalParams(call.args, call.named)
	if err != nil {
		return nil, err
	}
	return &jsonrpc2.Request{
		ID:      call.id,
		Version: jsonrpc2.Version,
		Method:  strings.Join(call.segments, "."),
		Params:  params,
	}, nil
}

// Invoke executes the call in its own exchange and unmarshals the result
// into the given value. For a notification it returns right after the
// write, and result is ignored.
func (call *Call) Invoke(ctx context.Context, result interface{}) error {
	if call.client == nil {
		return ErrDetachedCall
	}
	req, err := call.Request()
	if err != nil {
		return err
	}
	return call.client.invoke(ctx, req, result)
}

// Send executes the call and discards any result. Reads better than
// Invoke for notifications.
func (call *Call) Send(ctx context.Context) error {
	return call.Invoke(ctx, nil)
}
