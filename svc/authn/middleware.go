package authn

import (
	"errors"
	"log/slog"
	"net/http"
)

type config struct {
	logger *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithLogger sets the logger used for extraction failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Middleware runs once per request before any route handler: it asks
// the identity provider for a session token from the request cookies
// and stores the result in the request context. Absence of a token is
// not an error here; the request continues unconditionally and each
// route decides whether it requires authentication. The middleware
// completing before route handlers run is what gives downstream code
// its happens-before on the token.
func Middleware(extractor TokenExtractor, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := extractor.ExtractToken(r)
			if err != nil && !errors.Is(err, ErrNoToken) {
				// Extraction failures are treated as unauthenticated,
				// never as request failures.
				cfg.logger.ErrorContext(r.Context(), "session token extraction failed", slog.Any("error", err))
				token = ""
			}

			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
		})
	}
}
