package client

import (
	"context"
	"io"
	"net"
	"time"
)

// exchange performs one request/response round trip over a fresh TCP
// connection. When expectReply is false (a notification-only message) the
// connection is closed right after the write and no read is attempted.
//
// The response stream carries no framing: a read that fills the buffer
// means more data may follow, a short read means the server is done, and
// a read deadline ends the loop with whatever accumulated. A response
// whose length is an exact multiple of the buffer size therefore stalls
// for one deadline before the accumulated bytes are returned.
func (c *Client) exchange(ctx context.Context, msg []byte, expectReply bool) ([]byte, error) {
	history.setRequest(msg)
	logger.Printf("request: %s", msg)

	dialer := net.Dialer{Timeout: c.config.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	deadline := time.Now().Add(c.config.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if _, err := conn.Write(msg); err != nil {
		return nil, err
	}
	if !expectReply {
		history.setResponse(nil)
		return nil, nil
	}

	var response []byte
	buf := make([]byte, c.config.Buffer)
	for {
		n, err := conn.Read(buf)
		response = append(response, buf[:n]...)
		if err != nil {
			if err == io.EOF || isTimeout(err) {
				// The stream ended or went quiet; whatever accumulated
				// is the full response.
				break
			}
			return nil, err
		}
		if n < len(buf) {
			break
		}
	}

	history.setResponse(response)
	logger.Printf("response: %s", response)
	return response, nil
}

func isTimeout(err error) bool {
	netErr, ok := err.(net.Error)
	return ok && netErr.Timeout()
}
