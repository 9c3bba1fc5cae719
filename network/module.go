package network

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockgen -source=module.go -destination=../internal/mock/network_module_mock.go -package=mock

// Module is the capability to send outbound requests on behalf of the
// authentication flow. Implementations must be safe for concurrent use.
type Module interface {
	// SendGetRequest issues a GET to url. A nil options value sends no extra
	// headers. Transport failures are returned as errors; HTTP statuses are
	// not.
	SendGetRequest(ctx context.Context, url string, options *RequestOptions) (*Response, error)

	// SendPostRequest issues a POST to url with options.Body as the payload.
	SendPostRequest(ctx context.Context, url string, options *RequestOptions) (*Response, error)
}

// RequestOptions carries the per-request headers and body.
type RequestOptions struct {
	Headers map[string]string
	Body    string
}

// Response is what a [Module] returns for every request that reached the
// server, whatever its status.
type Response struct {
	// Headers holds the first value of every response header, keyed by the
	// canonical header name.
	Headers map[string]string
	Body    []byte
	Status  int
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

// Err returns nil for 2xx responses and a wrapped sentinel error otherwise.
func (r *Response) Err() error {
	return mapStatusError(r.Status, r.Body)
}
