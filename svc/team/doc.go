// Package team resolves and switches the caller's active team context.
//
// Teams are owned by the backend service; this layer reads the
// caller's team set, validates switch targets against backend-confirmed
// membership, and invokes the backend's atomic switch operation. A
// switch either fully succeeds (the active pointer moves) or fully
// fails (the previous selection stays authoritative); there is no
// partial state.
//
// The optional cache holds server-confirmed team context keyed by a
// digest of the session token. It speeds up repeated listings within
// the TTL and is invalidated after every successful switch. Membership
// checks deliberately bypass it: authorization never trusts cached or
// client-held state.
package team
