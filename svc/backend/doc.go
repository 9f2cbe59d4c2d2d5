// Package backend constructs request-scoped clients for the remote
// data service teamgate proxies authenticated calls to.
//
// The factory resolves the backend endpoint over a fixed, deterministic
// candidate list (public env var, alternate public env var, a value
// injected at build time via -ldflags, then plain env fallbacks) and
// binds the caller's session token to the constructed client. Clients
// are immutable and discarded at request end; there is no pooling,
// retry, or backpressure at this layer.
//
// Missing endpoint configuration fails client construction before any
// network call. The warn-and-fallback behavior is available only
// through WithDevFallback for local development, so a deployment runs
// exactly one of the two policies.
package backend
