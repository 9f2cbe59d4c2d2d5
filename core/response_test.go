package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/teamgate/core"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	core.JSON(rec, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("http error maps to its status and key", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, core.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "forbidden", body.Error)
	})

	t.Run("wrapped http error is unwrapped", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, fmt.Errorf("route: %w", core.ErrUnauthorized))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown error becomes generic 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body core.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal_server_error", body.Error)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
