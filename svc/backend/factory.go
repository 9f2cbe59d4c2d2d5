package backend

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/teamgate/pkg/config"
)

// buildBackendURL may be injected at build time:
//
//	go build -ldflags "-X github.com/dmitrymomot/teamgate/svc/backend.buildBackendURL=https://api.internal"
var buildBackendURL string

// defaultCandidates is the fixed endpoint resolution order: declared
// public source, declared alternate public source, build-time-injected
// source, then the process-environment fallbacks. First non-empty wins.
func defaultCandidates() []config.Candidate {
	return []config.Candidate{
		config.Env("PUBLIC_BACKEND_URL"),
		config.Env("PUBLIC_API_URL"),
		config.Static("build", buildBackendURL),
		config.Env("BACKEND_URL"),
		config.Env("API_URL"),
	}
}

// Factory constructs request-scoped backend clients. The endpoint is
// resolved at every client construction so configuration errors
// surface on the request that hits them, before any network call.
type Factory struct {
	candidates  []config.Candidate
	devFallback string
	httpClient  *http.Client
	logger      *slog.Logger
}

// FactoryOption configures the factory.
type FactoryOption func(*Factory)

// WithCandidates overrides the endpoint candidate list. Intended for
// tests; production deployments rely on the fixed default order.
func WithCandidates(candidates ...config.Candidate) FactoryOption {
	return func(f *Factory) { f.candidates = candidates }
}

// WithDevFallback enables the development-only policy: when no
// endpoint resolves the factory logs a warning and uses url instead of
// failing. Never enable this on request-serving production paths; the
// strict policy exists so calls cannot silently go to an unintended
// default.
func WithDevFallback(url string) FactoryOption {
	return func(f *Factory) { f.devFallback = url }
}

// WithHTTPClient sets the underlying HTTP client shared by constructed
// clients.
func WithHTTPClient(c *http.Client) FactoryOption {
	return func(f *Factory) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithLogger sets the logger used for the dev-fallback warning.
func WithLogger(l *slog.Logger) FactoryOption {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory returns a factory with the fixed candidate order and a
// timeout-bounded HTTP client.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		candidates: defaultCandidates(),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client constructs a client bound to the resolved endpoint. A
// non-empty token is attached so every call on the returned client
// presents it as the caller's credential; other clients are untouched.
// With no resolvable endpoint and no dev fallback it returns
// ErrEndpointNotConfigured without attempting any network activity.
func (f *Factory) Client(token string) (*Client, error) {
	endpoint, ok := config.Resolve(f.candidates...)
	if !ok {
		if f.devFallback == "" {
			return nil, ErrEndpointNotConfigured
		}
		f.logger.Warn("backend endpoint not configured, using development fallback",
			slog.String("endpoint", f.devFallback))
		endpoint = f.devFallback
	}

	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: f.httpClient,
	}, nil
}
