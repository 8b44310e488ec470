package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHTTPTransportSend(t *testing.T) {
	var (
		gotHost   string
		gotMethod string
		gotApp    string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHost = r.Host
		gotMethod = r.Method
		gotApp = r.Header.Get("x-line-application")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set(HeaderNextAccess, "rotated")
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	resp, err := transport.Send(context.Background(), TransportRequest{
		URL:    srv.URL + "/S3",
		Method: "POST",
		Headers: map[string]string{
			"Host":               "gw.example",
			"x-line-application": "DESKTOPWIN\t9.2.0.3403\tWINDOWS\t10.0.0-NT-x64",
		},
		Body: []byte("ping"),
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotMethod != "POST" || string(gotBody) != "ping" {
		t.Fatalf("server saw %s %q", gotMethod, gotBody)
	}
	if gotHost != "gw.example" {
		t.Fatalf("server saw host %q, want the Host header value", gotHost)
	}
	if gotApp == "" {
		t.Fatal("application header not forwarded")
	}
	if resp.Status != http.StatusOK {
		t.Fatalf("status = %d", resp.Status)
	}
	if resp.HeaderValue(HeaderNextAccess) != "rotated" {
		t.Fatalf("next access header = %q", resp.HeaderValue(HeaderNextAccess))
	}
	body, err := resp.Payload()
	if err != nil || string(body) != "pong" {
		t.Fatalf("payload = %q, %v", body, err)
	}
}

func TestHTTPTransportGzipBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		gz.Write([]byte("compressed payload"))
		gz.Close()
		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	// Setting accept-encoding by hand turns off net/http's transparent
	// decompression, which is exactly how the pipeline sends it.
	resp, err := transport.Send(context.Background(), TransportRequest{
		URL:     srv.URL,
		Method:  "POST",
		Headers: map[string]string{"accept-encoding": "gzip"},
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	body, err := resp.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if string(body) != "compressed payload" {
		t.Fatalf("body = %q, want decompressed text", body)
	}
}

func TestHTTPTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	transport := NewHTTPTransport()
	_, err := transport.Send(context.Background(), TransportRequest{
		URL:     srv.URL,
		Method:  "POST",
		Timeout: 30 * time.Millisecond,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestTransportResponsePayloadDrainsOnce(t *testing.T) {
	resp := &TransportResponse{Stream: io.NopCloser(strings.NewReader("data"))}

	first, err := resp.Payload()
	if err != nil || string(first) != "data" {
		t.Fatalf("first Payload = %q, %v", first, err)
	}
	second, err := resp.Payload()
	if err != nil || string(second) != "data" {
		t.Fatalf("second Payload = %q, %v", second, err)
	}
}

func TestTransportFunc(t *testing.T) {
	var seen TransportRequest
	fn := TransportFunc(func(_ context.Context, req TransportRequest) (*TransportResponse, error) {
		seen = req
		return &TransportResponse{Status: http.StatusNoContent}, nil
	})

	resp, err := fn.Send(context.Background(), TransportRequest{URL: "http://x/S3", Method: "POST"})
	if err != nil || resp.Status != http.StatusNoContent {
		t.Fatalf("Send = %+v, %v", resp, err)
	}
	if seen.URL != "http://x/S3" {
		t.Fatalf("request not passed through: %+v", seen)
	}
}
