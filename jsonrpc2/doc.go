/*
	Package jsonrpc2 implements the client half of JSONRPC 2.0: request
	construction and response validation.

	Request is the wire form of a call. Notifications are Requests without
	an ID, and never receive a response.

	Response is the wire form of a reply. A Response carries either a
	Result or an ErrResponse, never both. ParseResponse and
	ParseBatchResponse decode raw reply bytes, mapping undecodable text to
	an ErrResponse with the reserved parse-error code.

	This package has no opinion about transport. It operates on raw bytes
	so that callers can pair it with whatever byte stream they have.
*/
package jsonrpc2
