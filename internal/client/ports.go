package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neko3da4/CHRFORGE/internal/wire"
)

// Codec encodes call values and decodes response payloads. Implementations
// own the serialization format end to end.
type Codec interface {
	Encode(method string, value any, category wire.Category) ([]byte, error)
	Decode(payload []byte, category wire.Category) (wire.Record, error)
	// RenameFull rewrites every field of a decoded record to named form.
	RenameFull(rec wire.Record, square bool) wire.Record
	// RenameNamed rewrites one value as the named struct.
	RenameNamed(structName string, value any) any
}

// TransportRequest is one fully composed outbound request.
type TransportRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    []byte
	Timeout time.Duration
}

// TransportResponse is the raw result of one round trip. Body carries the
// materialized payload; a transport may hand over Stream instead and let
// Payload materialize it on first use.
type TransportResponse struct {
	Status int
	Header http.Header
	Body   []byte
	Stream io.ReadCloser
}

// HeaderValue returns the named response header, empty when absent.
func (r *TransportResponse) HeaderValue(name string) string {
	if r == nil || r.Header == nil {
		return ""
	}
	return r.Header.Get(name)
}

// Payload returns the response body, draining Stream at most once.
func (r *TransportResponse) Payload() ([]byte, error) {
	if r.Body != nil || r.Stream == nil {
		return r.Body, nil
	}
	defer r.Stream.Close()
	body, err := io.ReadAll(r.Stream)
	if err != nil {
		return nil, fmt.Errorf("client: read response stream: %w", err)
	}
	r.Body = body
	r.Stream = nil
	return r.Body, nil
}

// Transport performs one HTTP round trip. Implementations honor ctx
// cancellation and the per-request timeout.
type Transport interface {
	Send(ctx context.Context, req TransportRequest) (*TransportResponse, error)
}

// CredentialSource supplies tokens and the refresh capability.
type CredentialSource interface {
	Token() string
	RefreshToken() string
	Refresh(ctx context.Context) error
}

// Recorder observes lifecycle stage events.
type Recorder interface {
	Record(event string, fields map[string]any)
}
