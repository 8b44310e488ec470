package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPTransport sends requests over net/http. Connection reuse and TLS stay
// inside the underlying http.Client.
type HTTPTransport struct {
	Client *http.Client
}

// NewHTTPTransport returns a transport on a dedicated http.Client. Deadlines
// come per request, so the client itself carries no timeout.
func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{Client: &http.Client{}}
}

func (t *HTTPTransport) httpClient() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

// Send performs one round trip. req.Timeout bounds the attempt through the
// context, so cancellation also releases the in-flight request.
func (t *HTTPTransport) Send(ctx context.Context, req TransportRequest) (*TransportResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	for name, value := range req.Headers {
		// The Host header rides on the request itself, not the header map.
		if strings.EqualFold(name, "Host") {
			httpReq.Host = value
			continue
		}
		httpReq.Header.Set(name, value)
	}

	resp, err := t.httpClient().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}
	return &TransportResponse{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   body,
	}, nil
}

// readBody materializes the response, reversing gzip when the server honored
// our explicit accept-encoding. Setting that header by hand turns off
// net/http's transparent decompression.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("client: open gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("client: read response body: %w", err)
	}
	return body, nil
}

var _ Transport = (*HTTPTransport)(nil)

// TransportFunc adapts a function into a Transport.
type TransportFunc func(ctx context.Context, req TransportRequest) (*TransportResponse, error)

func (f TransportFunc) Send(ctx context.Context, req TransportRequest) (*TransportResponse, error) {
	return f(ctx, req)
}
