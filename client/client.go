package client

import (
	"context"
	"encoding/json"
)

// Response is the successful result of a create call against a backend.
type Response struct {
	// Status is the transport-level status code, when the backend has one.
	Status int

	// Data is the raw data payload of the response: the created record,
	// carrying at least its server-issued "id".
	Data json.RawMessage
}

// Client is the capability loom needs from a backend: a POST-shaped request
// method accepting an endpoint path and a request body. Implementations must
// be safe for concurrent use; batch creation issues calls in parallel.
type Client interface {
	Post(ctx context.Context, endpoint string, body any) (*Response, error)
}
