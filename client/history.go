package client

import "sync"

// exchangeHistory records the most recent request/response pair,
// overwritten on every exchange. It observes the latest exchange only and
// takes no part in the protocol logic.
type exchangeHistory struct {
	mu       sync.Mutex
	request  []byte
	response []byte
}

func (h *exchangeHistory) setRequest(b []byte) {
	h.mu.Lock()
	h.request = append([]byte(nil), b...)
	h.response = nil
	h.mu.Unlock()
}

func (h *exchangeHistory) setResponse(b []byte) {
	h.mu.Lock()
	h.response = append([]byte(nil), b...)
	h.mu.Unlock()
}

var history exchangeHistory

// LastExchange returns copies of the most recent request and response
// payloads, for inspection while debugging.
func LastExchange() (request []byte, response []byte) {
	history.mu.Lock()
	defer history.mu.Unlock()
	request = append([]byte(nil), history.request...)
	response = append([]byte(nil), history.response...)
	return request, response
}
