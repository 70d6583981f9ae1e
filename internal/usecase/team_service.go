package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-portal/internal/domain/team"
)

type TeamService struct {
	teams         team.Provider
	currentSeason int
}

func NewTeamService(teams team.Provider, currentSeason int) *TeamService {
	return &TeamService{
		teams:         teams,
		currentSeason: currentSeason,
	}
}

// ListByLeague lists the teams of a league season. A zero season means the current one.
func (s *TeamService) ListByLeague(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByLeague")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	season, err := resolveSeason(season, s.currentSeason)
	if err != nil {
		return nil, err
	}

	items, err := s.teams.ListTeams(ctx, leagueID, season)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("list teams", err)
	}

	return items, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.teams.GetTeamByID(ctx, teamID)
	if err != nil {
		span.RecordError(err)
		return team.Team{}, providerError("get team", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func resolveSeason(season, current int) (int, error) {
	if season < 0 {
		return 0, fmt.Errorf("%w: season must not be negative", ErrInvalidInput)
	}
	if season == 0 {
		return current, nil
	}
	return season, nil
}
