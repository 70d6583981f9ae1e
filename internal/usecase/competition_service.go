package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

type CompetitionService struct {
	repo competition.Repository
}

func NewCompetitionService(repo competition.Repository) *CompetitionService {
	return &CompetitionService{repo: repo}
}

func (s *CompetitionService) List(ctx context.Context) ([]competition.History, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID int64) (competition.History, error) {
	if competitionID <= 0 {
		return competition.History{}, fmt.Errorf("%w: competition id must be positive", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.History{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.History{}, fmt.Errorf("%w: competition=%d", ErrNotFound, competitionID)
	}

	return item, nil
}

// Titles ranks the finalists of a competition by titles won.
func (s *CompetitionService) Titles(ctx context.Context, competitionID int64) ([]competition.TeamTitles, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Titles")
	defer span.End()

	item, err := s.Get(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	return competition.CalculateTitles(item.Editions), nil
}
