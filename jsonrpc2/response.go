package jsonrpc2

import (
	"encoding/json"
	"fmt"
)

// ParseResponse decodes the raw reply to a single call. Empty input
// yields a nil response without error, which is what a notification-only
// exchange produces. A declared error object is surfaced immediately,
// before any structural validation of the rest of the response.
func ParseResponse(raw []byte) (*Response, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrResponse{
			Code:    ErrCodeParse,
			Message: fmt.Sprintf("failed to parse response: %s", err),
		}
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return &resp, nil
}

// ParseBatchResponse decodes the raw reply to a batch. Empty input or an
// empty reply array yields an empty slice without error. A stand-alone
// error object in place of an array (how some servers reject a whole
// batch) is surfaced as that error.
func ParseBatchResponse(raw []byte) ([]Response, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if !isArray(raw) {
		// Expected an array; a lone object is either a batch-wide
		// declared error or a non-conformant reply.
		if _, err := ParseResponse(raw); err != nil {
			return nil, err
		}
		return nil, ErrInvalidResponse
	}
	var responses []Response
	if err := json.Unmarshal(raw, &responses); err != nil {
		return nil, &ErrResponse{
			Code:    ErrCodeParse,
			Message: fmt.Sprintf("failed to parse batch response: %s", err),
		}
	}
	return responses, nil
}
