package authn_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/teamgate/svc/authn"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, extractor authn.TokenExtractor, cookies ...*http.Cookie) (token string, ok bool) {
		t.Helper()

		h := authn.Middleware(extractor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok = authn.TokenFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		return token, ok
	}

	t.Run("stores extracted token in request context", func(t *testing.T) {
		t.Parallel()

		token, ok := serve(t, authn.NewCookieExtractor("sid"), &http.Cookie{Name: "sid", Value: "tok-1"})
		require.True(t, ok)
		assert.Equal(t, "tok-1", token)
	})

	t.Run("continues without token when cookies absent", func(t *testing.T) {
		t.Parallel()

		token, ok := serve(t, authn.NewCookieExtractor("sid"))
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("extraction failure is treated as unauthenticated", func(t *testing.T) {
		t.Parallel()

		failing := authn.ExtractorFunc(func(r *http.Request) (string, error) {
			return "", errors.New("identity provider unreachable")
		})

		token, ok := serve(t, failing)
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("runs before the route handler", func(t *testing.T) {
		t.Parallel()

		order := make([]string, 0, 2)
		extractor := authn.ExtractorFunc(func(r *http.Request) (string, error) {
			order = append(order, "extract")
			return "tok", nil
		})

		h := authn.Middleware(extractor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, []string{"extract", "handler"}, order)
	})
}

func TestCookieExtractor(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty cookie wins", func(t *testing.T) {
		t.Parallel()

		ex := authn.NewCookieExtractor("current", "legacy")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "legacy", Value: "old"})
		req.AddCookie(&http.Cookie{Name: "current", Value: "new"})

		token, err := ex.ExtractToken(req)
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})

	t.Run("falls back across cookie names", func(t *testing.T) {
		t.Parallel()

		ex := authn.NewCookieExtractor("current", "legacy")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "legacy", Value: "old"})

		token, err := ex.ExtractToken(req)
		require.NoError(t, err)
		assert.Equal(t, "old", token)
	})

	t.Run("absent token yields ErrNoToken", func(t *testing.T) {
		t.Parallel()

		ex := authn.NewCookieExtractor()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		token, err := ex.ExtractToken(req)
		assert.ErrorIs(t, err, authn.ErrNoToken)
		assert.Empty(t, token)
	})

	t.Run("empty cookie value is skipped", func(t *testing.T) {
		t.Parallel()

		ex := authn.NewCookieExtractor("sid")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: ""})

		_, err := ex.ExtractToken(req)
		assert.ErrorIs(t, err, authn.ErrNoToken)
	})
}

func TestNormalizeSiteURL(t *testing.T) {
	// Touches process-wide state, so no t.Parallel.
	t.Setenv("SITE_URL", "")

	authn.NormalizeSiteURL("https://app.example.com")
	assert.Equal(t, "https://app.example.com", os.Getenv("SITE_URL"))

	// Repeated calls are idempotent no-ops even with a different value.
	authn.NormalizeSiteURL("https://other.example.com")
	assert.Equal(t, "https://app.example.com", os.Getenv("SITE_URL"))
}
