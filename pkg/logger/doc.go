// Package logger builds slog loggers with the output shape teamgate
// services expect: JSON at info level in production, text at debug
// level in development, plus context extractors that attach
// request-scoped attributes (request ID, team ID) to every record
// without explicit plumbing at each call site.
package logger
