package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-portal/internal/domain/league"
	leaguemock "github.com/riskibarqy/football-portal/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

type upstreamStatusError struct{ code int }

func (e upstreamStatusError) Error() string { return "API Error: 500 Internal Server Error" }

func TestLeagueService_ListLeagues_TrimsCountryUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := leaguemock.NewProvider(t)
	service := NewLeagueService(provider)

	provider.
		On("ListLeagues", mock.Anything, "England", 2025).
		Return([]league.League{{ID: 39, Name: "Premier League"}}, nil).
		Once()

	got, err := service.ListLeagues(ctx, "  England ", 2025)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != 1 || got[0].ID != 39 {
		t.Fatalf("unexpected leagues: %+v", got)
	}
}

func TestLeagueService_ListLeagues_RejectsNegativeSeason(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(leaguemock.NewProvider(t))

	_, err := service.ListLeagues(context.Background(), "", -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeagueService_ListSeasons_WrapsProviderErrorUsingMockery(t *testing.T) {
	t.Parallel()

	provider := leaguemock.NewProvider(t)
	service := NewLeagueService(provider)
	upstream := upstreamStatusError{code: 500}

	provider.
		On("ListLeagueSeasons", mock.Anything, int64(39)).
		Return(nil, upstream).
		Once()

	_, err := service.ListSeasons(context.Background(), 39)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	var statusErr upstreamStatusError
	if !errors.As(err, &statusErr) || statusErr.code != 500 {
		t.Fatalf("expected original error in chain, got %v", err)
	}
}

func TestLeagueService_ListSeasons_RejectsInvalidLeague(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(leaguemock.NewProvider(t))

	_, err := service.ListSeasons(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProviderError_KeepsCancellation(t *testing.T) {
	t.Parallel()

	err := providerError("list", context.Canceled)
	if errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("cancellation must not be reported as dependency failure: %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}
