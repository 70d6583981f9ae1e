package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
)

type LeagueStandingService struct {
	standings     leaguestanding.Provider
	currentSeason int
}

func NewLeagueStandingService(standings leaguestanding.Provider, currentSeason int) *LeagueStandingService {
	return &LeagueStandingService{
		standings:     standings,
		currentSeason: currentSeason,
	}
}

func (s *LeagueStandingService) ListByLeague(ctx context.Context, leagueID int64, season int) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.ListByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	season, err := resolveSeason(season, s.currentSeason)
	if err != nil {
		return nil, err
	}

	items, err := s.standings.GetStandings(ctx, leagueID, season)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("get standings", err)
	}

	return items, nil
}
