package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a single request sent by the default client.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the resty-backed [Module]. It embeds *resty.Client so the
// underlying client stays reachable for callers that need to tune it
// (proxies, TLS, retries) before handing it to the configuration.
type HTTPClient struct {
	*resty.Client
}

var _ Module = (*HTTPClient)(nil)

// NewHTTPClient returns an independent HTTPClient. A non-positive timeout
// falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{Client: resty.New().SetTimeout(timeout)}
}

// SendGetRequest implements [Module].
func (c *HTTPClient) SendGetRequest(ctx context.Context, url string, options *RequestOptions) (*Response, error) {
	resp, err := c.request(ctx, options).Get(url)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return toResponse(resp), nil
}

// SendPostRequest implements [Module].
func (c *HTTPClient) SendPostRequest(ctx context.Context, url string, options *RequestOptions) (*Response, error) {
	resp, err := c.request(ctx, options).Post(url)
	if err != nil {
		return nil, fmt.Errorf("post request: %w", err)
	}

	return toResponse(resp), nil
}

func (c *HTTPClient) request(ctx context.Context, options *RequestOptions) *resty.Request {
	req := c.R().SetContext(ctx)
	if options == nil {
		return req
	}

	if len(options.Headers) > 0 {
		req.SetHeaders(options.Headers)
	}
	if options.Body != "" {
		req.SetBody(options.Body)
	}

	return req
}

func toResponse(resp *resty.Response) *Response {
	return &Response{
		Headers: flattenHeaders(resp.Header()),
		Body:    resp.Body(),
		Status:  resp.StatusCode(),
	}
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for key, values := range h {
		if len(values) == 0 {
			continue
		}
		headers[http.CanonicalHeaderKey(key)] = values[0]
	}

	return headers
}
