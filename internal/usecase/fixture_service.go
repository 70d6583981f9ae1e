package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/fixture"
)

type FixtureService struct {
	fixtures fixture.Provider
}

func NewFixtureService(fixtures fixture.Provider) *FixtureService {
	return &FixtureService{fixtures: fixtures}
}

func (s *FixtureService) List(ctx context.Context, filter fixture.Filter) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	filter, err := normalizeFixtureFilter(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.fixtures.ListFixtures(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("list fixtures", err)
	}

	return items, nil
}

func (s *FixtureService) ListLive(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListLive")
	defer span.End()

	items, err := s.fixtures.ListLiveFixtures(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("list live fixtures", err)
	}

	return items, nil
}

func normalizeFixtureFilter(filter fixture.Filter) (fixture.Filter, error) {
	filter.Date = strings.TrimSpace(filter.Date)
	filter.From = strings.TrimSpace(filter.From)
	filter.To = strings.TrimSpace(filter.To)

	if filter.Status != "" {
		filter.Status = fixture.NormalizeStatus(filter.Status)
		if !fixture.IsFilterStatus(filter.Status) {
			return fixture.Filter{}, fmt.Errorf("%w: unsupported fixture status %q", ErrInvalidInput, filter.Status)
		}
	}
	if filter.League < 0 || filter.Team < 0 || filter.Season < 0 {
		return fixture.Filter{}, fmt.Errorf("%w: ids and season must not be negative", ErrInvalidInput)
	}
	if filter.Last < 0 || filter.Next < 0 {
		return fixture.Filter{}, fmt.Errorf("%w: last and next must not be negative", ErrInvalidInput)
	}
	if filter.Last > 0 && filter.Next > 0 {
		return fixture.Filter{}, fmt.Errorf("%w: last and next cannot be combined", ErrInvalidInput)
	}
	if (filter.From == "") != (filter.To == "") {
		return fixture.Filter{}, fmt.Errorf("%w: from and to must be provided together", ErrInvalidInput)
	}

	return filter, nil
}
