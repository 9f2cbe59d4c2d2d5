package team

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/dmitrymomot/teamgate/svc/authn"
)

// Backend operations this service invokes. The listing is an
// idempotent read; the switch is a single atomic write on the
// backend's side.
const (
	opListTeams  = "teams/list"
	opSwitchTeam = "teams/switch"
)

// Querier executes named backend operations. Satisfied by
// *backend.Client.
type Querier interface {
	Query(ctx context.Context, operation string, args any, out any) error
}

// ClientFactory constructs a backend querier bound to the given
// session token.
type ClientFactory interface {
	Client(token string) (Querier, error)
}

// FactoryFunc adapts a function to the ClientFactory interface.
type FactoryFunc func(token string) (Querier, error)

func (f FactoryFunc) Client(token string) (Querier, error) {
	return f(token)
}

// Service resolves and switches the caller's team context against the
// backend. Authorization decisions are always made against
// backend-confirmed membership, never against cached or client-held
// state.
type Service struct {
	factory  ClientFactory
	cache    Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// ServiceOption configures the service.
type ServiceOption func(*Service)

// WithCache enables caching of server-confirmed team context. The
// cache is invalidated after every successful switch.
func WithCache(cache Cache, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
		}
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService returns a Service backed by the given client factory.
// Caching is off unless WithCache is supplied.
func NewService(factory ClientFactory, opts ...ServiceOption) *Service {
	s := &Service{
		factory:  factory,
		cache:    &NoOpCache{},
		cacheTTL: time.Minute,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentTeams returns the caller's teams with the active one marked.
// The caller must be authenticated; no backend call is made otherwise.
func (s *Service) CurrentTeams(ctx context.Context) ([]Team, error) {
	token, ok := authn.TokenFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	key := cacheKey(token)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	teams, err := s.listTeams(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, teams, s.cacheTTL); err != nil {
		// Cache failures degrade to uncached operation.
		s.logger.WarnContext(ctx, "failed to cache team context", slog.Any("error", err))
	}
	return teams, nil
}

// Switch changes the caller's active team to targetID. Membership is
// validated server-side against the backend before the switch; a
// caller can never activate a team they do not belong to. On any
// failure the previous active team selection remains authoritative.
func (s *Service) Switch(ctx context.Context, targetID string) (Team, error) {
	if targetID == "" {
		return Team{}, ErrInvalidTeamID
	}

	// Unauthenticated callers learn nothing about whether the target
	// team exists.
	token, ok := authn.TokenFromContext(ctx)
	if !ok {
		return Team{}, ErrUnauthenticated
	}

	teams, err := s.listTeams(ctx, token)
	if err != nil {
		return Team{}, err
	}

	member := false
	for _, t := range teams {
		if t.ID == targetID {
			member = true
			break
		}
	}
	if !member {
		return Team{}, ErrNotMember
	}

	client, err := s.factory.Client(token)
	if err != nil {
		return Team{}, err
	}

	var active Team
	args := struct {
		TeamID string `json:"teamId"`
	}{TeamID: targetID}
	if err := client.Query(ctx, opSwitchTeam, args, &active); err != nil {
		// The backend rejected or failed the switch atomically; the
		// cached context still matches the previous selection.
		return Team{}, err
	}

	if err := s.cache.Delete(ctx, cacheKey(token)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate team context cache", slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "active team switched", slog.String("team_id", active.ID))
	return active.withDisplayName(), nil
}

func (s *Service) listTeams(ctx context.Context, token string) ([]Team, error) {
	client, err := s.factory.Client(token)
	if err != nil {
		return nil, err
	}

	var teams []Team
	if err := client.Query(ctx, opListTeams, nil, &teams); err != nil {
		return nil, err
	}

	for i := range teams {
		teams[i] = teams[i].withDisplayName()
	}
	return teams, nil
}

// cacheKey digests the token so raw credentials never become cache keys.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "teamctx:" + hex.EncodeToString(sum[:])
}
