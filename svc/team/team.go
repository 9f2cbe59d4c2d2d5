package team

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is the caller's role within a team, as issued by the backend.
type Role string

const (
	RoleTeamLeader Role = "TEAM_LEADER"
	RoleTeamMember Role = "TEAM_MEMBER"
)

// Known reports whether the role belongs to the fixed set the backend
// issues. Unknown values are carried through opaquely rather than
// rejected, so a backend-side role addition does not break listings.
func (r Role) Known() bool {
	switch r {
	case RoleTeamLeader, RoleTeamMember:
		return true
	}
	return false
}

// Team is a tenant entity owned by the backend service. This layer
// only reads and references teams; it never stores them beyond the
// request-scoped cache.
type Team struct {
	ID     string `json:"identifier"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Plan   string `json:"plan"`
	Active bool   `json:"active"`
}

// DisplayName returns a usable name for the team, deriving one from
// the identifier when the backend's name field is empty.
func (t Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	name := strings.NewReplacer("-", " ", "_", " ").Replace(t.ID)
	// Casers carry transform state and cannot be shared across goroutines.
	return cases.Title(language.English).String(name)
}

// withDisplayName returns a copy with the Name field guaranteed non-empty.
func (t Team) withDisplayName() Team {
	t.Name = t.DisplayName()
	return t
}
