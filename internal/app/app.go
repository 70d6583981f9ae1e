package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-portal/external/apifootball"
	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-portal/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-portal/internal/platform/cache"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

// NewHTTPServer wires the API-Football client, bundled competition data and
// HTTP handlers. The returned close func releases the cache backend.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	responseCache, closeCache, err := newResponseCache(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	clock := clockwork.NewRealClock()
	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.FootballAPIBaseURL,
		Host:       cfg.FootballAPIHost,
		APIKey:     cfg.FootballAPIKey,
		Timeout:    cfg.FootballAPITimeout,
		Revalidate: cfg.FootballAPIRevalidate,
		Cache:      responseCache,
		Logger:     logger.Named("apifootball"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballAPICircuitEnabled,
			FailureThreshold: cfg.FootballAPICircuitFailureCount,
			OpenTimeout:      cfg.FootballAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballAPICircuitHalfOpenMaxReq,
		},
		Clock: clock,
	})
	if cfg.FootballAPIKey == "" {
		logger.Warn("FOOTBALL_API_KEY is empty, upstream calls will be rejected")
	}

	histories, err := memory.SeedCompetitions()
	if err != nil {
		_ = closeCache()
		return nil, nil, fmt.Errorf("load competition histories: %w", err)
	}
	competitionRepo := memory.NewCompetitionRepository(histories)

	handler := httpapi.NewHandler(httpapi.HandlerServices{
		Leagues:      usecase.NewLeagueService(client),
		Teams:        usecase.NewTeamService(client, cfg.FootballCurrentSeason),
		Standings:    usecase.NewLeagueStandingService(client, cfg.FootballCurrentSeason),
		Fixtures:     usecase.NewFixtureService(client),
		Competitions: usecase.NewCompetitionService(competitionRepo),
		Overview: usecase.NewLeagueOverviewService(
			client,
			client,
			competitionRepo,
			cfg.FootballCurrentSeason,
			logger,
		),
		Warmup: usecase.NewWarmupService(client, cfg.FootballCurrentSeason, cfg.WarmupMaxWorkers, logger.Named("warmup")),
	}, logger)

	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeCache, nil
}

func newResponseCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (apifootball.ResponseCache, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		logger.Info("upstream response cache disabled")
		return nil, noClose, nil
	case config.CacheBackendRedis:
		redisCache, err := cache.NewRedisResponseCache(ctx, cfg.RedisURL, logger.Named("cache"))
		if err != nil {
			return nil, nil, fmt.Errorf("init redis cache: %w", err)
		}
		logger.Info("upstream response cache enabled", "backend", config.CacheBackendRedis)
		return redisCache, redisCache.Close, nil
	default:
		memoryCache := cache.NewMemoryResponseCache(clockwork.NewRealClock())
		logger.Info("upstream response cache enabled", "backend", config.CacheBackendMemory)
		return memoryCache, memoryCache.Close, nil
	}
}
