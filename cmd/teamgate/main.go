// Command teamgate serves the request-scoped authentication and
// team-context layer in front of the backend data service.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/teamgate/modules/teams"
	"github.com/dmitrymomot/teamgate/pkg/config"
	"github.com/dmitrymomot/teamgate/pkg/httpserver"
	"github.com/dmitrymomot/teamgate/pkg/logger"
	"github.com/dmitrymomot/teamgate/pkg/redis"
	"github.com/dmitrymomot/teamgate/pkg/requestid"
	"github.com/dmitrymomot/teamgate/svc/authn"
	"github.com/dmitrymomot/teamgate/svc/backend"
	"github.com/dmitrymomot/teamgate/svc/team"
)

type appConfig struct {
	Env            string        `env:"TEAMGATE_ENV" envDefault:"production"`
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8080"`
	SiteURL        string        `env:"TEAMGATE_SITE_URL"`
	SessionCookies []string      `env:"SESSION_COOKIE_NAMES" envSeparator:"," envDefault:"session_token"`
	DevBackendURL  string        `env:"DEV_BACKEND_URL" envDefault:"http://localhost:3001"`
	TeamCache      string        `env:"TEAM_CACHE" envDefault:"memory"` // memory, redis, or off
	TeamCacheTTL   time.Duration `env:"TEAM_CACHE_TTL" envDefault:"1m"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	logOpts := []logger.Option{
		logger.WithProduction("teamgate"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.Env == "development" {
		logOpts[0] = logger.WithDevelopment("teamgate")
	}
	log := logger.New(logOpts...)
	slog.SetDefault(log)

	authn.NormalizeSiteURL(cfg.SiteURL)

	factoryOpts := []backend.FactoryOption{backend.WithLogger(log)}
	if cfg.Env == "development" && cfg.DevBackendURL != "" {
		// The warn-and-fallback policy exists only here; production
		// deployments fail hard on a missing endpoint.
		factoryOpts = append(factoryOpts, backend.WithDevFallback(cfg.DevBackendURL))
	}
	factory := backend.NewFactory(factoryOpts...)

	var cache team.Cache = team.NoOpCache{}
	var checks []func(context.Context) error
	switch cfg.TeamCache {
	case "redis":
		var rcfg redis.Config
		config.MustLoad(&rcfg)
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			log.ErrorContext(ctx, "redis connection failed", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		cache = team.NewRedisCache(client)
		checks = append(checks, redis.Healthcheck(client))
	case "memory":
		cache = team.NewInMemoryCache()
	}

	svc := team.NewService(
		team.FactoryFunc(func(token string) (team.Querier, error) {
			client, err := factory.Client(token)
			if err != nil {
				return nil, err
			}
			return client, nil
		}),
		team.WithCache(cache, cfg.TeamCacheTTL),
		team.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(authn.Middleware(authn.NewCookieExtractor(cfg.SessionCookies...), authn.WithLogger(log)))
	r.Get("/health", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/teams", teams.Router(svc, log))

	srv := httpserver.New(
		httpserver.WithAddr(cfg.HTTPAddr),
		httpserver.WithLogger(log),
	)
	if err := srv.Run(ctx, r); err != nil {
		log.ErrorContext(ctx, "server exited", logger.Error(err))
		os.Exit(1)
	}
}
