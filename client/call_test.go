package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

func TestCallRequestRender(t *testing.T) {
	c := New("localhost:8001")
	call := c.Call("tree").Path("echo").Args("First!")

	req, err := call.Request()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := req.Method, "tree.echo"; got != want {
		t.Errorf("got: %q; want %q", got, want)
	}
	if got, want := string(req.Params), `["First!"]`; got != want {
		t.Errorf("got: %s; want %s", got, want)
	}
	if len(req.ID) == 0 {
		t.Error("call request must carry an ID")
	}

	// Rendering is pure: a second render agrees with the first.
	req2, err := call.Request()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(req.ID, req2.ID) {
		t.Errorf("repeated renders disagree on ID: %s != %s", req.ID, req2.ID)
	}

	// ...and reflects state added since.
	call.Args("Second!")
	req3, err := call.Request()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(req3.Params), `["First!","Second!"]`; got != want {
		t.Errorf("got: %s; want %s", got, want)
	}
}

func TestCallDottedSegment(t *testing.T) {
	c := New("localhost:8001")
	req, err := c.Call("tree.echo").Request()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := req.Method, "tree.echo"; got != want {
		t.Errorf("got: %q; want %q", got, want)
	}
}

func TestNotifyRequest(t *testing.T) {
	c := New("localhost:8001")
	req, err := c.Notify("echo").Args("Skip!").Request()
	if err != nil {
		t.Fatal(err)
	}
	if !req.IsNotification() {
		t.Errorf("notification must not carry an ID, got: %s", req.ID)
	}
}

func TestReservedNames(t *testing.T) {
	// Port 1 would refuse the connection; reserved names must fail
	// before any dial is attempted, so the error type tells the story.
	c := New("127.0.0.1:1")
	for _, name := range []string{"_notify", "tree._hidden", "", "a..b"} {
		err := c.Call(name).Invoke(context.Background(), nil)
		if _, ok := err.(ErrReservedName); !ok {
			t.Errorf("%q: got %v; want ErrReservedName", name, err)
		}
	}

	// No path at all is refused too.
	err := c.Call().Invoke(context.Background(), nil)
	if _, ok := err.(ErrReservedName); !ok {
		t.Errorf("got %v; want ErrReservedName", err)
	}
}

func TestBothParamTypes(t *testing.T) {
	c := New("127.0.0.1:1")
	err := c.Call("echo").
		Args("Testing!").
		NamedArgs(map[string]interface{}{"message": "Testing!"}).
		Invoke(context.Background(), nil)
	if err != jsonrpc2.ErrBothParamTypes {
		t.Errorf("got: %v; want ErrBothParamTypes", err)
	}
}

func TestDetachedCall(t *testing.T) {
	c := New("127.0.0.1:1")
	call := c.Batch().Call("echo").Args("Testing!")
	err := call.Invoke(context.Background(), nil)
	if err != ErrDetachedCall {
		t.Errorf("got: %v; want ErrDetachedCall", err)
	}
}
