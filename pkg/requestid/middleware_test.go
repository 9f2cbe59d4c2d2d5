package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/teamgate/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, inbound string) (seen string, rec *httptest.ResponseRecorder) {
		t.Helper()

		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if inbound != "" {
			req.Header.Set(requestid.Header, inbound)
		}
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return seen, rec
	}

	t.Run("generates id when header absent", func(t *testing.T) {
		t.Parallel()

		seen, rec := run(t, "")
		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses valid inbound id", func(t *testing.T) {
		t.Parallel()

		seen, rec := run(t, "edge-42_a")
		assert.Equal(t, "edge-42_a", seen)
		assert.Equal(t, "edge-42_a", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		t.Parallel()

		seen, _ := run(t, "bad id with spaces")
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("replaces oversized inbound id", func(t *testing.T) {
		t.Parallel()

		seen, _ := run(t, strings.Repeat("a", 200))
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(t.Context()))

	ctx := requestid.WithContext(t.Context(), "req-1")
	assert.Equal(t, "req-1", requestid.FromContext(ctx))

	attr, ok := requestid.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
}
