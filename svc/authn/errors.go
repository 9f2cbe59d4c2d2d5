package authn

import "errors"

// ErrNoToken indicates that no session token was found in the request.
// This is a normal outcome for unauthenticated requests, not a failure.
var ErrNoToken = errors.New("authn: no session token in request")
