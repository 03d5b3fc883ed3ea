package jsonrpc2

import (
	"encoding/json"
	"testing"
)

func TestParseResponseEmpty(t *testing.T) {
	resp, err := ParseResponse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp != nil {
		t.Errorf("empty text should yield no result, got: %v", resp)
	}
}

func TestParseResponseGarbage(t *testing.T) {
	_, err := ParseResponse([]byte(`{"jsonrpc": busted`))
	errResp, ok := err.(*ErrResponse)
	if !ok {
		t.Fatalf("got %T; want *ErrResponse", err)
	}
	if got, want := errResp.Code, ErrCodeParse; got != want {
		t.Errorf("got code %d; want %d", got, want)
	}
}

func TestParseResponseDeclaredError(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":"abc","error":{"code":-32602,"message":"invalid params","data":["echo"]}}`)
	_, err := ParseResponse(raw)
	errResp, ok := err.(*ErrResponse)
	if !ok {
		t.Fatalf("got %T; want *ErrResponse", err)
	}
	if errResp.Code != -32602 || errResp.Message != "invalid params" {
		t.Errorf("declared error not propagated verbatim: %v", errResp)
	}
	if got, want := string(errResp.Data), `["echo"]`; got != want {
		t.Errorf("got data %s; want %s", got, want)
	}
}

func TestParseResponseResult(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":"abc","result":"Testing!"}`)
	resp, err := ParseResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	want := &Response{
		ID:      json.RawMessage(`"abc"`),
		Version: Version,
		Result:  json.RawMessage(`"Testing!"`),
	}
	assertEqualJSON(t, resp, want, "parsed response mismatch")
}

func TestParseBatchResponse(t *testing.T) {
	raw := []byte(`[{"jsonrpc":"2.0","id":"b","result":"Last!"},{"jsonrpc":"2.0","id":"a","result":"First!"}]`)
	responses, err := ParseBatchResponse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(responses), 2; got != want {
		t.Fatalf("got %d responses; want %d", got, want)
	}
	if got, want := string(responses[0].ID), `"b"`; got != want {
		t.Errorf("got: %s; want %s", got, want)
	}
}

func TestParseBatchResponseEmpty(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("[]")} {
		responses, err := ParseBatchResponse(raw)
		if err != nil {
			t.Fatal(err)
		}
		if len(responses) != 0 {
			t.Errorf("%q should yield an empty sequence, got: %v", raw, responses)
		}
	}
}

func TestParseBatchResponseLoneError(t *testing.T) {
	// Some servers reject a whole batch with a single error object.
	raw := []byte(`{"jsonrpc":"2.0","id":null,"error":{"code":-32600,"message":"invalid request"}}`)
	_, err := ParseBatchResponse(raw)
	errResp, ok := err.(*ErrResponse)
	if !ok {
		t.Fatalf("got %T; want *ErrResponse", err)
	}
	if got, want := errResp.Code, ErrCodeInvalidRequest; got != want {
		t.Errorf("got code %d; want %d", got, want)
	}
}

func TestParseBatchResponseLoneObject(t *testing.T) {
	raw := []byte(`{"jsonrpc":"2.0","id":"a","result":"ok"}`)
	_, err := ParseBatchResponse(raw)
	if err != ErrInvalidResponse {
		t.Errorf("got: %v; want ErrInvalidResponse", err)
	}
}
