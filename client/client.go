package client

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"strconv"

	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

// Client is bound to a single remote endpoint. It opens a fresh TCP
// connection for every exchange, so a Client is cheap and carries no
// connection state between calls.
type Client struct {
	addr   string
	config Config
}

// New returns a client for the given "host:port" address with default
// configuration.
func New(addr string) *Client {
	return NewWithConfig(addr, Config{})
}

// NewWithConfig returns a client with the given configuration. Zero-value
// fields fall back to defaults.
func NewWithConfig(addr string, config Config) *Client {
	config = config.withDefaults()
	if config.Verbose {
		SetLogger(os.Stderr)
	}
	return &Client{
		addr:   addr,
		config: config,
	}
}

// Connect is a convenience wrapper over New for a host and port pair.
func Connect(host string, port int) *Client {
	return New(net.JoinHostPort(host, strconv.Itoa(port)))
}

// Addr returns the endpoint this client is bound to.
func (c *Client) Addr() string {
	return c.addr
}

// Call starts a pending call on the given namespace path. Nothing happens
// on the wire until the call is invoked.
func (c *Client) Call(segments ...string) *Call {
	call := newCall(segments, false)
	call.client = c
	return call
}

// Notify starts a pending notification: no correlation ID, no response.
func (c *Client) Notify(segments ...string) *Call {
	call := newCall(segments, true)
	call.client = c
	return call
}

// Batch returns a session that accumulates calls for a single round trip.
func (c *Client) Batch() *Batch {
	return &Batch{client: c}
}

// Invoke is a shortcut for a single positional-args call:
// build, execute, unmarshal.
func (c *Client) Invoke(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	return c.Call(method).Args(params...).Invoke(ctx, result)
}

// invoke runs the full send/receive/parse/validate/unwrap sequence for
// one rendered request.
func (c *Client) invoke(ctx context.Context, req *jsonrpc2.Request, result interface{}) error {
	msg, err := json.Marshal(req)
	if err != nil {
		return err
	}
	raw, err := c.exchange(ctx, msg, !req.IsNotification())
	if err != nil {
		return err
	}
	if req.IsNotification() {
		return nil
	}
	resp, err := jsonrpc2.ParseResponse(raw)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	return resp.UnmarshalResult(result)
}
