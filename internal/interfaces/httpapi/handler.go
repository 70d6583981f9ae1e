package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

type Handler struct {
	leagueService      *usecase.LeagueService
	teamService        *usecase.TeamService
	standingService    *usecase.LeagueStandingService
	fixtureService     *usecase.FixtureService
	competitionService *usecase.CompetitionService
	overviewService    *usecase.LeagueOverviewService
	warmupService      *usecase.WarmupService
	logger             *logging.Logger
	validator          *validator.Validate
}

type HandlerServices struct {
	Leagues      *usecase.LeagueService
	Teams        *usecase.TeamService
	Standings    *usecase.LeagueStandingService
	Fixtures     *usecase.FixtureService
	Competitions *usecase.CompetitionService
	Overview     *usecase.LeagueOverviewService
	Warmup       *usecase.WarmupService
}

func NewHandler(services HandlerServices, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:      services.Leagues,
		teamService:        services.Teams,
		standingService:    services.Standings,
		fixtureService:     services.Fixtures,
		competitionService: services.Competitions,
		overviewService:    services.Overview,
		warmupService:      services.Warmup,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// parseOptionalInt returns 0 for an absent query parameter.
func parseOptionalInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return v, nil
}
