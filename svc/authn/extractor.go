package authn

import "net/http"

// TokenExtractor is the identity-provider boundary. Implementations
// own token format and validation; callers treat the returned value as
// an opaque credential. ErrNoToken signals a normal unauthenticated
// request, any other error signals a broken extraction.
type TokenExtractor interface {
	ExtractToken(r *http.Request) (string, error)
}

// ExtractorFunc adapts a function to the TokenExtractor interface.
type ExtractorFunc func(r *http.Request) (string, error)

func (f ExtractorFunc) ExtractToken(r *http.Request) (string, error) {
	return f(r)
}

// CookieExtractor reads the session token from request cookies. The
// identity provider may rotate cookie names over time, so the
// extractor checks an ordered list and returns the first non-empty
// value, opaquely.
type CookieExtractor struct {
	names []string
}

// NewCookieExtractor builds an extractor over the given cookie names,
// checked in order. With no names it checks DefaultCookieName.
func NewCookieExtractor(names ...string) *CookieExtractor {
	if len(names) == 0 {
		names = []string{DefaultCookieName}
	}
	return &CookieExtractor{names: names}
}

// DefaultCookieName is where the identity provider stores the session
// token unless configured otherwise.
const DefaultCookieName = "session_token"

func (e *CookieExtractor) ExtractToken(r *http.Request) (string, error) {
	for _, name := range e.names {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			continue
		}
		return c.Value, nil
	}
	return "", ErrNoToken
}
