package team

import "errors"

var (
	// ErrUnauthenticated is returned when an operation requiring a
	// session token runs without one. No backend call is made.
	ErrUnauthenticated = errors.New("team: caller is not authenticated")

	// ErrNotMember is returned when the caller tries to switch to a
	// team outside their backend-confirmed membership. The active team
	// selection is left untouched.
	ErrNotMember = errors.New("team: caller is not a member of the target team")

	// ErrInvalidTeamID is returned for an empty target identifier.
	ErrInvalidTeamID = errors.New("team: invalid team identifier")
)
