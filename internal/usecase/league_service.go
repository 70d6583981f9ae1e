package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/league"
	"go.opentelemetry.io/otel/attribute"
)

type LeagueService struct {
	leagues league.Provider
}

func NewLeagueService(leagues league.Provider) *LeagueService {
	return &LeagueService{leagues: leagues}
}

// ListLeagues forwards optional country and season filters. Zero values are omitted.
func (s *LeagueService) ListLeagues(ctx context.Context, country string, season int) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	if season < 0 {
		return nil, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}

	items, err := s.leagues.ListLeagues(ctx, strings.TrimSpace(country), season)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("list leagues", err)
	}

	return items, nil
}

// ListSeasons returns the season years of a league, newest first.
func (s *LeagueService) ListSeasons(ctx context.Context, leagueID int64) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSeasons")
	defer span.End()
	span.SetAttributes(attribute.Int64("league.id", leagueID))

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	seasons, err := s.leagues.ListLeagueSeasons(ctx, leagueID)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("list league seasons", err)
	}

	return seasons, nil
}

func (s *LeagueService) Continents() []league.Continent {
	return league.Continents()
}
