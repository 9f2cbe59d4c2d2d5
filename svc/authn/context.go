package authn

import "context"

type tokenContextKey struct{}

// WithToken stores the session token in the request context for the
// duration of the request. Tokens are never persisted beyond that.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the session token resolved for this
// request. ok is false when the request is unauthenticated.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token, token != ""
}
