package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_API_BASE_URL", "")
	t.Setenv("FOOTBALL_API_HOST", "")
	t.Setenv("FOOTBALL_API_KEY", "")
	t.Setenv("FOOTBALL_API_REVALIDATE", "")
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "")
	t.Setenv("FOOTBALL_CURRENT_SEASON", "")
	t.Setenv("CACHE_BACKEND", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballAPIBaseURL != "https://api-football-v1.p.rapidapi.com/v3" {
		t.Fatalf("unexpected base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPIHost != "api-football-v1.p.rapidapi.com" {
		t.Fatalf("unexpected host: %q", cfg.FootballAPIHost)
	}
	if cfg.FootballAPIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.FootballAPIKey)
	}
	if cfg.FootballAPIRevalidate != time.Hour {
		t.Fatalf("unexpected revalidate: %s", cfg.FootballAPIRevalidate)
	}
	if cfg.FootballAPICircuitEnabled {
		t.Fatalf("expected circuit breaker disabled by default")
	}
	if cfg.FootballCurrentSeason != 2025 {
		t.Fatalf("unexpected current season: %d", cfg.FootballCurrentSeason)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Fatalf("unexpected cache backend: %q", cfg.CacheBackend)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.ServiceName != "football-portal-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_MissingAPIKeyIsNotAnError(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_API_KEY", "")

	if _, err := Load(); err != nil {
		t.Fatalf("missing api key must only fail upstream, got %v", err)
	}
}

func TestLoad_FootballAPIParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_API_BASE_URL", " http://localhost:9090/v3/ ")
	t.Setenv("FOOTBALL_API_KEY", " secret ")
	t.Setenv("FOOTBALL_API_TIMEOUT", "5s")
	t.Setenv("FOOTBALL_API_REVALIDATE", "10m")
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "true")
	t.Setenv("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("FOOTBALL_CURRENT_SEASON", "2024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballAPIBaseURL != "http://localhost:9090/v3" {
		t.Fatalf("unexpected base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPIKey != "secret" {
		t.Fatalf("unexpected api key")
	}
	if cfg.FootballAPITimeout != 5*time.Second || cfg.FootballAPIRevalidate != 10*time.Minute {
		t.Fatalf("unexpected durations: timeout=%s revalidate=%s", cfg.FootballAPITimeout, cfg.FootballAPIRevalidate)
	}
	if !cfg.FootballAPICircuitEnabled || cfg.FootballAPICircuitFailureCount != 3 {
		t.Fatalf("unexpected circuit config: enabled=%v failures=%d", cfg.FootballAPICircuitEnabled, cfg.FootballAPICircuitFailureCount)
	}
	if cfg.FootballCurrentSeason != 2024 {
		t.Fatalf("unexpected current season: %d", cfg.FootballCurrentSeason)
	}
}

func TestLoad_FootballAPIValidation(t *testing.T) {
	cases := map[string][2]string{
		"zero timeout":          {"FOOTBALL_API_TIMEOUT", "0s"},
		"sub-second revalidate": {"FOOTBALL_API_REVALIDATE", "500ms"},
		"bad failure count":     {"FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "0"},
		"bad season":            {"FOOTBALL_CURRENT_SEASON", "25"},
		"bad workers":           {"WARMUP_MAX_WORKERS", "64"},
		"unknown cache":         {"CACHE_BACKEND", "memcached"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(kv[0], kv[1])

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestLoad_RedisBackendRequiresURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CACHE_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when CACHE_BACKEND=redis without REDIS_URL")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheBackend != CacheBackendRedis {
		t.Fatalf("unexpected cache backend: %q", cfg.CacheBackend)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "football-portal-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-portal-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}
