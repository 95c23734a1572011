package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/tt-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
	"github.com/riskibarqy/tt-league/internal/platform/resilience"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

// Services is the usecase layer wired over the configured storage.
type Services struct {
	League     *usecase.LeagueService
	Fixture    *usecase.FixtureService
	Result     *usecase.ResultService
	Roster     *usecase.RosterService
	Directory  *usecase.DirectoryService
	ClubAdmin  *usecase.ClubAdminService
	Moderation *usecase.ModerationService
}

// NewServices opens storage and builds every service. The returned close
// function releases the database pool when one was opened.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeFn, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	loc := cfg.LeagueTimezone
	if loc == nil {
		loc = time.UTC
	}

	services := &Services{
		League:     usecase.NewLeagueService(repos.league, loc, logger),
		Fixture:    usecase.NewFixtureService(repos.league, repos.club, repos.team, repos.fixture, loc, logger),
		Result:     usecase.NewResultService(repos.league, repos.club, repos.venue, repos.player, repos.team, repos.fixture, repos.result, logger),
		Roster:     usecase.NewRosterService(repos.league, repos.club, repos.venue, repos.player, repos.team, loc, logger),
		Directory:  usecase.NewDirectoryService(repos.club, repos.venue, logger),
		ClubAdmin:  usecase.NewClubAdminService(repos.club, repos.venue, logger),
		Moderation: usecase.NewModerationService(repos.club, repos.venue, logger),
	}
	return services, closeFn, nil
}

// NewHTTPServer builds the API server. The close function must run after
// the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	services, closeFn, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout, Transport: otelhttp.NewTransport(http.DefaultTransport)},
		anubis.Config{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectURL,
			AdminKey:       cfg.AnubisAdminKey,
			AdminRole:      cfg.LeagueAdminRole,
			CacheTTL:       cfg.AnubisTokenCacheTTL,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AnubisCircuitEnabled,
				FailureThreshold: cfg.AnubisCircuitFailureCount,
				OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
			},
		},
		logger,
	)

	handler := httpapi.NewHandler(
		services.League,
		services.Fixture,
		services.Result,
		services.Roster,
		services.Directory,
		services.ClubAdmin,
		services.Moderation,
		logger,
	)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, closeFn, nil
}
