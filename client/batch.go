package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jrpctcp/jrpctcp/jsonrpc2"
)

// ErrEmptyBatch is a usage error: a batch was executed with no pending
// requests.
var ErrEmptyBatch = errors.New("batch has no pending requests")

// Batch accumulates an ordered list of pending calls and notifications
// and executes them all in one exchange. After Execute the pending list
// is cleared and the batch can accumulate a new round.
type Batch struct {
	client  *Client
	pending []*Call
}

// Call queues a pending call on the batch. Params can still be attached
// to the returned Call until the batch executes.
func (b *Batch) Call(segments ...string) *Call {
	call := newCall(segments, false)
	b.pending = append(b.pending, call)
	return call
}

// Notify queues a pending notification on the batch.
func (b *Batch) Notify(segments ...string) *Call {
	call := newCall(segments, true)
	b.pending = append(b.pending, call)
	return call
}

// Len returns the number of pending requests.
func (b *Batch) Len() int {
	return len(b.pending)
}

// Execute renders every pending request, sends them as one array in a
// single round trip, and returns the correlated results. A batch of only
// notifications performs no read and yields an empty sequence.
func (b *Batch) Execute(ctx context.Context) (*Results, error) {
	if len(b.pending) == 0 {
		return nil, ErrEmptyBatch
	}
	requests := make([]*jsonrpc2.Request, 0, len(b.pending))
	var ids []json.RawMessage
	for _, call := range b.pending {
		req, err := call.Request()
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
		if !req.IsNotification() {
			ids = append(ids, req.ID)
		}
	}
	b.pending = nil

	msg, err := json.Marshal(requests)
	if err != nil {
		return nil, err
	}
	raw, err := b.client.exchange(ctx, msg, len(ids) > 0)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &Results{}, nil
	}
	responses, err := jsonrpc2.ParseBatchResponse(raw)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		// The server sent nothing back; an empty sequence, not a failure.
		return &Results{}, nil
	}
	byID := make(map[string]*jsonrpc2.Response, len(responses))
	for i := range responses {
		byID[string(responses[i].ID)] = &responses[i]
	}
	return &Results{ids: ids, byID: byID}, nil
}

// Results is a single-pass sequence of per-call batch results, yielded in
// the order the calls were issued regardless of the order the server
// listed its responses. Notifications have no results and are skipped.
type Results struct {
	ids  []json.RawMessage
	byID map[string]*jsonrpc2.Response
	cur  *jsonrpc2.Response
	err  error
}

// Next advances to the next call's result, matching it by correlation ID
// and validating it. It returns false when the sequence is exhausted or a
// response fails validation; check Err afterwards.
func (r *Results) Next() bool {
	r.cur = nil
	if r.err != nil || len(r.ids) == 0 {
		return false
	}
	id := r.ids[0]
	r.ids = r.ids[1:]
	resp, ok := r.byID[string(id)]
	if !ok {
		r.err = fmt.Errorf("no response for request id %s", id)
		return false
	}
	if err := resp.Validate(); err != nil {
		r.err = err
		return false
	}
	r.cur = resp
	return true
}

// Decode unmarshals the current result into the given value.
func (r *Results) Decode(result interface{}) error {
	if r.err != nil {
		return r.err
	}
	if r.cur == nil {
		return errors.New("Decode called without a successful Next")
	}
	return r.cur.UnmarshalResult(result)
}

// Raw returns the current result payload without decoding it.
func (r *Results) Raw() json.RawMessage {
	if r.cur == nil {
		return nil
	}
	return r.cur.Result
}

// Err returns the first failure encountered while iterating.
func (r *Results) Err() error {
	return r.err
}
