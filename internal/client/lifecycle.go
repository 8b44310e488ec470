package client

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/neko3da4/CHRFORGE/internal/bus"
	"github.com/neko3da4/CHRFORGE/internal/credentials"
	"github.com/neko3da4/CHRFORGE/internal/endpoint"
	"github.com/neko3da4/CHRFORGE/internal/identity"
	"github.com/neko3da4/CHRFORGE/internal/observability"
	"github.com/neko3da4/CHRFORGE/internal/wire"
)

var (
	ErrIdentityRequired  = errors.New("client: identity required")
	ErrCodecRequired     = errors.New("client: codec required")
	ErrTransportRequired = errors.New("client: transport required")
)

// DefaultTimeout bounds a call that does not set its own.
const DefaultTimeout = 30 * time.Second

const httpMethod = "POST"

// Config wires a Pipeline. Codec, Transport and Identity are required;
// everything else has defaults.
type Config struct {
	Identity    identity.Details
	Language    string
	Registry    *endpoint.Registry
	Codec       Codec
	Transport   Transport
	Credentials CredentialSource
	Bus         *bus.Bus
	Recorder    Recorder
	Timeout     time.Duration
}

// WithDefaults fills unset optional fields.
func (c Config) WithDefaults() Config {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Registry == nil {
		c.Registry = endpoint.NewDefault(nil)
	}
	return c
}

// CallOptions describes one call. Method is required; Path, Category, Parse
// and Timeout default per the pipeline configuration.
type CallOptions struct {
	Path     string
	Method   string
	Value    any
	Category wire.Category
	Parse    ParseMode
	Headers  map[string]string
	Timeout  time.Duration
}

// Pipeline drives calls through build, send, decode and classify, with at
// most one refresh retry per call.
type Pipeline struct {
	cfg Config
}

// New validates cfg and returns a ready pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Identity.Platform == "" {
		return nil, ErrIdentityRequired
	}
	if cfg.Codec == nil {
		return nil, ErrCodecRequired
	}
	if cfg.Transport == nil {
		return nil, ErrTransportRequired
	}
	return &Pipeline{cfg: cfg.WithDefaults()}, nil
}

// Identity returns the platform identity calls are sent as.
func (p *Pipeline) Identity() identity.Details {
	return p.cfg.Identity
}

// Registry returns the endpoint registry calls resolve against.
func (p *Pipeline) Registry() *endpoint.Registry {
	return p.cfg.Registry
}

// Call runs one request through the full lifecycle and returns the
// classified success payload. Every failure is a *Failure.
func (p *Pipeline) Call(ctx context.Context, opts CallOptions) (any, error) {
	res, err := p.call(ctx, opts, false)
	if err != nil {
		return nil, err
	}
	return res.Success, nil
}

func (p *Pipeline) call(ctx context.Context, opts CallOptions, retry bool) (Result, error) {
	start := time.Now()

	env, err := p.buildEnvelope(opts, retry)
	if err != nil {
		p.observe(metricPath(opts.Path), opts.Method, "configuration_error", start)
		return Result{}, err
	}

	p.record(EventWriteThrift, map[string]any{
		"call_id":     env.callID,
		"method_name": env.method,
		"category":    env.category.String(),
		"retry":       env.retry,
	})

	body, err := p.cfg.Codec.Encode(env.method, env.value, env.category)
	if err != nil {
		p.observe(env.path, env.method, "configuration_error", start)
		return Result{}, newFailure(KindConfiguration, "request build failed for %s(%s): %v", env.method, env.path, err)
	}

	p.record(EventRequest, map[string]any{
		"call_id":     env.callID,
		"method_name": env.method,
		"url":         env.url,
		"method":      httpMethod,
		"timeout_ms":  env.timeout.Milliseconds(),
		"body_bytes":  len(body),
	})

	resp, err := p.cfg.Transport.Send(ctx, TransportRequest{
		URL:     env.url,
		Method:  httpMethod,
		Headers: env.headers,
		Body:    body,
		Timeout: env.timeout,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.observe(env.path, env.method, "timeout", start)
			return Result{}, newFailure(KindTimeout, "request timeout after %dms for %s(%s)",
				env.timeout.Milliseconds(), env.method, env.path)
		}
		p.observe(env.path, env.method, "request_error", start)
		return Result{}, newFailure(KindRequest, "request failed for %s(%s): %v", env.method, env.path, err)
	}

	// A rotated token arrives out of band; announce it before anything can
	// fail downstream.
	if next := resp.HeaderValue(HeaderNextAccess); next != "" && p.cfg.Bus != nil {
		p.cfg.Bus.Emit(credentials.EventUpdated, next)
	}

	payload, err := resp.Payload()
	if err != nil {
		p.observe(env.path, env.method, "request_error", start)
		return Result{}, newFailure(KindRequest, "failed to read response body for %s(%s): %v", env.method, env.path, err)
	}

	p.record(EventResponse, map[string]any{
		"call_id":     env.callID,
		"method_name": env.method,
		"status":      resp.Status,
		"body_bytes":  len(payload),
	})

	rec, err := p.cfg.Codec.Decode(payload, env.category)
	if err != nil {
		observability.RecordDecodeFailure(env.path)
		p.observe(env.path, env.method, "request_error", start)
		return Result{}, newFailure(KindRequest, "request internal failed: invalid response buffer <%s>",
			wire.HexDump(payload, wire.DiagnosticDumpLimit))
	}

	cls := classifyRecord(p.cfg.Codec, p.cfg.Registry, env.path, env.parse, rec)
	cls.result.Method = env.method

	p.record(EventReadThrift, map[string]any{
		"call_id":     env.callID,
		"method_name": env.method,
		"has_error":   cls.hasError || cls.result.Exception != nil,
	})

	if cls.violation {
		log.Warn().
			Str("call_id", env.callID).
			Str("method_name", env.method).
			Str("path", env.path).
			Msg("client.Pipeline response carries success and exception")
	}

	failed := cls.result.Exception != nil || cls.hasError || cls.violation
	refreshable := !cls.violation &&
		cls.result.Exception.Code() == MustRefreshCode &&
		p.cfg.Credentials != nil &&
		p.cfg.Credentials.RefreshToken() != ""

	if failed && refreshable && !env.retry {
		observability.RecordRefreshRetry(env.path)
		if err := p.cfg.Credentials.Refresh(ctx); err != nil {
			p.observe(env.path, env.method, "request_error", start)
			return Result{}, newFailure(KindRequest, "token refresh failed for %s(%s): %v", env.method, env.path, err)
		}
		return p.call(ctx, opts, true)
	}

	if failed {
		p.observe(env.path, env.method, "request_error", start)
		if cls.result.Exception != nil {
			f := newFailure(KindRequest, "request internal failed, %s(%s) -> %s",
				env.method, env.path, renderPayload(cls.result.Exception.Value))
			f.Detail = cls.result.Exception
			return Result{}, f
		}
		f := newFailure(KindRequest, "request internal failed, %s(%s) -> %s",
			env.method, env.path, renderPayload(rec))
		f.Detail = rec
		return Result{}, f
	}

	p.observe(env.path, env.method, "success", start)
	return cls.result, nil
}

func (p *Pipeline) buildEnvelope(opts CallOptions, retry bool) (*envelope, error) {
	if opts.Method == "" {
		return nil, newFailure(KindConfiguration, "method name required")
	}
	path := metricPath(opts.Path)
	category := opts.Category
	if category == 0 {
		category = wire.DefaultCategory
	}
	if !category.Valid() {
		return nil, newFailure(KindConfiguration, "unknown protocol category %d for %s(%s)",
			int(category), opts.Method, path)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = p.cfg.Timeout
	}

	fullURL := p.cfg.Registry.URLFor(path, "")
	parsed, err := url.Parse(fullURL)
	if err != nil || parsed.Host == "" {
		return nil, newFailure(KindConfiguration, "invalid endpoint url %q for %s(%s)", fullURL, opts.Method, path)
	}

	var token string
	if p.cfg.Credentials != nil {
		token = p.cfg.Credentials.Token()
	}
	headers := ComposeHeaders(parsed.Host, httpMethod, p.cfg.Identity, p.cfg.Language, token)
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &envelope{
		callID:   uuid.NewString(),
		path:     path,
		method:   opts.Method,
		value:    opts.Value,
		category: category,
		parse:    opts.Parse,
		headers:  headers,
		url:      fullURL,
		host:     parsed.Host,
		timeout:  timeout,
		retry:    retry,
	}, nil
}

func (p *Pipeline) record(event string, fields map[string]any) {
	if p.cfg.Recorder == nil {
		return
	}
	p.cfg.Recorder.Record(event, fields)
}

func (p *Pipeline) observe(path, method, outcome string, start time.Time) {
	observability.RecordClientRequest(path, method, outcome, time.Since(start))
}

func metricPath(path string) string {
	if path == "" {
		return endpoint.PathNormal
	}
	return path
}
