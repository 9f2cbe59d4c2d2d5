package teams

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/teamgate/core"
	"github.com/dmitrymomot/teamgate/svc/backend"
	"github.com/dmitrymomot/teamgate/svc/team"
)

// Missing endpoint configuration gets its own key so operators can
// tell it apart from a failing backend; both render as 500.
var errEndpointNotConfigured = core.NewHTTPError(http.StatusInternalServerError, "backend_endpoint_not_configured")

// TeamService is the slice of svc/team this router needs.
type TeamService interface {
	CurrentTeams(ctx context.Context) ([]team.Team, error)
	Switch(ctx context.Context, targetID string) (team.Team, error)
}

// Router mounts the team-context routes:
//
//	GET  /        caller's teams with the active one marked
//	POST /switch  change the caller's active team
func Router(svc TeamService, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Get("/", listTeams(svc, log))
	r.Post("/switch", switchTeam(svc, log))
	return r
}

func listTeams(svc TeamService, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := svc.CurrentTeams(r.Context())
		if err != nil {
			renderError(w, r, log, err)
			return
		}
		if teams == nil {
			// Callers with zero teams get an empty list, not null.
			teams = []team.Team{}
		}
		core.JSON(w, http.StatusOK, teams)
	}
}

func switchTeam(svc TeamService, log *slog.Logger) http.HandlerFunc {
	type request struct {
		TeamID string `json:"teamId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			core.Error(w, core.ErrBadRequest)
			return
		}

		active, err := svc.Switch(r.Context(), req.TeamID)
		if err != nil {
			renderError(w, r, log, err)
			return
		}
		core.JSON(w, http.StatusOK, active)
	}
}

// renderError is the single place service errors become HTTP
// responses. Nothing below this layer writes to the response.
func renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, team.ErrUnauthenticated):
		core.Error(w, core.ErrUnauthorized)
	case errors.Is(err, team.ErrNotMember):
		core.Error(w, core.ErrForbidden)
	case errors.Is(err, team.ErrInvalidTeamID):
		core.Error(w, core.ErrBadRequest)
	case errors.Is(err, backend.ErrEndpointNotConfigured):
		log.ErrorContext(r.Context(), "backend endpoint not configured", slog.Any("error", err))
		core.Error(w, errEndpointNotConfigured)
	default:
		log.ErrorContext(r.Context(), "team operation failed", slog.Any("error", err))
		core.Error(w, core.ErrInternalServerError)
	}
}
