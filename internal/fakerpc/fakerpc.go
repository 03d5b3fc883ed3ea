// Package fakerpc provides a scripted JSONRPC server over TCP for
// exercising the client: one message per connection, canned echo
// semantics, and knobs for misbehaving in useful ways.
package fakerpc

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

// Handler produces the response for one request. Returning nil drops the
// request without a reply.
type Handler func(req *jsonrpc2.Request) *jsonrpc2.Response

// Server reads a single JSON message per accepted connection, records it,
// and writes back whatever the handler produces. Notifications never
// produce replies.
type Server struct {
	// Handler overrides the default echo semantics.
	Handler Handler
	// ReverseBatch lists batch replies in reverse order, to exercise
	// correlation by ID rather than by position.
	ReverseBatch bool
	// Silent reads the request and then holds the connection open
	// without ever replying, until the server closes.
	Silent bool
	// RawReply, if set, is written verbatim instead of a well-formed
	// response.
	RawReply []byte
	// HoldOpen keeps the connection open after replying instead of
	// closing it, so the client sees no EOF.
	HoldOpen bool

	listener net.Listener
	done     chan struct{}

	mu       sync.Mutex
	requests [][]byte
}

// Listen starts a server on the given address ("127.0.0.1:0" for an
// ephemeral port).
func Listen(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: listener,
		done:     make(chan struct{}),
	}
	go s.serve()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Requests returns the raw payloads received so far.
func (s *Server) Requests() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.requests...)
}

// Close stops the listener and releases any held connections.
func (s *Server) Close() error {
	close(s.done)
	return s.listener.Close()
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(conn).Decode(&raw); err != nil {
		return
	}
	s.mu.Lock()
	s.requests = append(s.requests, append([]byte(nil), raw...))
	s.mu.Unlock()

	if s.Silent {
		<-s.done
		return
	}
	if s.RawReply != nil {
		conn.Write(s.RawReply)
		if s.HoldOpen {
			<-s.done
		}
		return
	}

	handler := s.Handler
	if handler == nil {
		handler = Echo
	}

	if isArray(raw) {
		var requests []jsonrpc2.Request
		if err := json.Unmarshal(raw, &requests); err != nil {
			return
		}
		var responses []*jsonrpc2.Response
		for i := range requests {
			if requests[i].IsNotification() {
				continue
			}
			if resp := handler(&requests[i]); resp != nil {
				responses = append(responses, resp)
			}
		}
		if len(responses) == 0 {
			return
		}
		if s.ReverseBatch {
			for i, j := 0, len(responses)-1; i < j; i, j = i+1, j-1 {
				responses[i], responses[j] = responses[j], responses[i]
			}
		}
		json.NewEncoder(conn).Encode(responses)
		return
	}

	var req jsonrpc2.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return
	}
	if req.IsNotification() {
		return
	}
	if resp := handler(&req); resp != nil {
		json.NewEncoder(conn).Encode(resp)
	}
}

// Echo is the default handler: "echo" and any dotted "*.echo" method
// return their first positional param, or the "message" named param.
// Missing params are a declared invalid-params error, any other method is
// a method-not-found error.
func Echo(req *jsonrpc2.Request) *jsonrpc2.Response {
	resp := &jsonrpc2.Response{
		ID:      req.ID,
		Version: jsonrpc2.Version,
	}
	if req.Method != "echo" && !strings.HasSuffix(req.Method, ".echo") {
		resp.Error = &jsonrpc2.ErrResponse{
			Code:    jsonrpc2.ErrCodeMethodNotFound,
			Message: fmt.Sprintf("method not found: %s", req.Method),
		}
		return resp
	}

	var positional []json.RawMessage
	if err := json.Unmarshal(req.Params, &positional); err == nil && len(positional) > 0 {
		resp.Result = positional[0]
		return resp
	}
	var named map[string]json.RawMessage
	if err := json.Unmarshal(req.Params, &named); err == nil {
		if message, ok := named["message"]; ok {
			resp.Result = message
			return resp
		}
	}
	resp.Error = &jsonrpc2.ErrResponse{
		Code:    jsonrpc2.ErrCodeInvalidParams,
		Message: "echo requires a message",
	}
	return resp
}

// isArray is mirrored from the jsonrpc2 package to avoid exporting a JSON
// sniffing helper.
func isArray(raw []byte) bool {
	for _, b := range raw {
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			continue
		}
		return b == '['
	}
	return false
}
