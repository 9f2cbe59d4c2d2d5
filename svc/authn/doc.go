// Package authn resolves the caller's session token once per request.
//
// The middleware asks the identity provider (via TokenExtractor) for a
// token from the request cookies and stores the result in the request
// context. The token is opaque to this layer: format and validation
// belong to the identity provider, teamgate only carries the value to
// outbound backend calls for the request's duration.
//
// An unauthenticated request is not an error. The middleware always
// continues the pipeline; routes that require authentication check
// TokenFromContext themselves and reject with an authorization error.
package authn
