package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	competitionmock "github.com/riskibarqy/football-portal/internal/mocks/domain/competition"
	leaguemock "github.com/riskibarqy/football-portal/internal/mocks/domain/league"
	leaguestandingmock "github.com/riskibarqy/football-portal/internal/mocks/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestLeagueOverviewService_Get_ClubCompetitionUsingMockery(t *testing.T) {
	t.Parallel()

	leagues := leaguemock.NewProvider(t)
	standings := leaguestandingmock.NewProvider(t)
	competitions := competitionmock.NewRepository(t)
	service := NewLeagueOverviewService(leagues, standings, competitions, 2025, logging.NewNop())

	leagues.
		On("ListLeagueSeasons", mock.Anything, league.ChampionsLeague).
		Return([]int{2025, 2024}, nil).
		Once()
	standings.
		On("GetStandings", mock.Anything, league.ChampionsLeague, 2025).
		Return([]leaguestanding.Standing{{Rank: 1}}, nil).
		Once()
	competitions.
		On("GetByID", mock.Anything, league.ChampionsLeague).
		Return(competition.History{
			ID:       2,
			Type:     competition.TypeClubs,
			Editions: []competition.Edition{{Winner: "Real Madrid", RunnerUp: "Liverpool"}},
		}, true, nil).
		Once()

	got, err := service.Get(context.Background(), league.ChampionsLeague)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}

	if got.Name != "UEFA Champions League" || !got.InCatalog || got.National {
		t.Fatalf("unexpected league identity: name=%q in_catalog=%t national=%t", got.Name, got.InCatalog, got.National)
	}
	if got.SeasonLabel != "2025/26" {
		t.Fatalf("unexpected season label: got=%q", got.SeasonLabel)
	}
	if !reflect.DeepEqual(got.Seasons, []int{2025, 2024}) {
		t.Fatalf("unexpected seasons: got=%v", got.Seasons)
	}
	if len(got.Standings) != 1 {
		t.Fatalf("unexpected standings count: got=%d want=1", len(got.Standings))
	}
	if got.History == nil {
		t.Fatalf("expected competition history")
	}
	if len(got.Titles) != 2 || got.Titles[0].Name != "Real Madrid" {
		t.Fatalf("unexpected titles: got=%+v", got.Titles)
	}
	if got.Error != "" {
		t.Fatalf("unexpected error message: got=%q", got.Error)
	}
}

func TestLeagueOverviewService_Get_NationalSkipsStandingsUsingMockery(t *testing.T) {
	t.Parallel()

	leagues := leaguemock.NewProvider(t)
	standings := leaguestandingmock.NewProvider(t)
	competitions := competitionmock.NewRepository(t)
	service := NewLeagueOverviewService(leagues, standings, competitions, 2026, logging.NewNop())

	leagues.
		On("ListLeagueSeasons", mock.Anything, league.WorldCup).
		Return([]int{2026, 2022}, nil).
		Once()
	competitions.
		On("GetByID", mock.Anything, league.WorldCup).
		Return(competition.History{ID: 1, Type: competition.TypeNational}, true, nil).
		Once()

	got, err := service.Get(context.Background(), league.WorldCup)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}

	if !got.National {
		t.Fatalf("expected world cup to be national")
	}
	if got.SeasonLabel != "2026" {
		t.Fatalf("unexpected season label: got=%q", got.SeasonLabel)
	}
	if len(got.Standings) != 0 {
		t.Fatalf("expected no standings for a national tournament, got=%d", len(got.Standings))
	}
	standings.AssertNotCalled(t, "GetStandings", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeagueOverviewService_Get_ReportsUpstreamErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagues := leaguemock.NewProvider(t)
	standings := leaguestandingmock.NewProvider(t)
	competitions := competitionmock.NewRepository(t)
	service := NewLeagueOverviewService(leagues, standings, competitions, 2025, logging.NewNop())

	leagues.
		On("ListLeagueSeasons", mock.Anything, league.PremierLeague).
		Return(nil, errors.New("API Error: 403 Forbidden")).
		Once()
	standings.
		On("GetStandings", mock.Anything, league.PremierLeague, 2025).
		Return(nil, errors.New("API Error: 403 Forbidden")).
		Once()
	competitions.
		On("GetByID", mock.Anything, league.PremierLeague).
		Return(competition.History{}, false, nil).
		Once()

	got, err := service.Get(context.Background(), league.PremierLeague)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}

	if got.Error != "API Error: 403 Forbidden" {
		t.Fatalf("unexpected error message: got=%q", got.Error)
	}
	if len(got.Seasons) != 0 || len(got.Standings) != 0 {
		t.Fatalf("expected empty seasons and standings, got seasons=%v standings=%d", got.Seasons, len(got.Standings))
	}
	if got.History != nil || got.Titles != nil {
		t.Fatalf("expected no history or titles, got history=%v titles=%v", got.History, got.Titles)
	}
}

func TestLeagueOverviewService_Get_UnknownLeagueFallsBackToGenericName(t *testing.T) {
	t.Parallel()

	leagues := leaguemock.NewProvider(t)
	standings := leaguestandingmock.NewProvider(t)
	competitions := competitionmock.NewRepository(t)
	service := NewLeagueOverviewService(leagues, standings, competitions, 2025, nil)

	leagues.On("ListLeagueSeasons", mock.Anything, int64(4242)).Return([]int{}, nil).Once()
	standings.On("GetStandings", mock.Anything, int64(4242), 2025).Return([]leaguestanding.Standing{}, nil).Once()
	competitions.On("GetByID", mock.Anything, int64(4242)).Return(competition.History{}, false, nil).Once()

	got, err := service.Get(context.Background(), 4242)
	if err != nil {
		t.Fatalf("get overview: %v", err)
	}
	if got.Name != "League 4242" || got.InCatalog {
		t.Fatalf("unexpected fallback identity: name=%q in_catalog=%t", got.Name, got.InCatalog)
	}
}
