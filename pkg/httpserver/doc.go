// Package httpserver wraps net/http's server with sane timeouts,
// context-driven graceful shutdown, and probe handlers, so service
// entrypoints stay small.
package httpserver
