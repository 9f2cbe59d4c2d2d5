package backend

import "errors"

var (
	// ErrEndpointNotConfigured means no backend endpoint resolved from
	// any configured source. A configuration error, fatal for the
	// request path that hits it; never retried.
	ErrEndpointNotConfigured = errors.New("backend: endpoint not configured")

	// ErrBackendFailure wraps transport and remote failures of backend
	// calls. Routes translate it to a generic server error; the
	// underlying detail stays in server logs.
	ErrBackendFailure = errors.New("backend: request failed")
)
