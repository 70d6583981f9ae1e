package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// LeagueOverview is everything the league detail page shows. Error carries
// the first upstream failure; the rest of the overview is still usable.
type LeagueOverview struct {
	LeagueID    int64
	Name        string
	Entry       league.CatalogEntry
	InCatalog   bool
	National    bool
	Season      int
	SeasonLabel string
	Seasons     []int
	Standings   []leaguestanding.Standing
	History     *competition.History
	Titles      []competition.TeamTitles
	Error       string
}

type LeagueOverviewService struct {
	leagues       league.Provider
	standings     leaguestanding.Provider
	competitions  competition.Repository
	currentSeason int
	logger        *logging.Logger
}

func NewLeagueOverviewService(
	leagues league.Provider,
	standings leaguestanding.Provider,
	competitions competition.Repository,
	currentSeason int,
	logger *logging.Logger,
) *LeagueOverviewService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueOverviewService{
		leagues:       leagues,
		standings:     standings,
		competitions:  competitions,
		currentSeason: currentSeason,
		logger:        logger,
	}
}

// Get fetches seasons and, for club competitions, current standings in
// parallel. Upstream failures are reported through LeagueOverview.Error.
func (s *LeagueOverviewService) Get(ctx context.Context, leagueID int64) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueOverviewService.Get")
	defer span.End()

	if leagueID <= 0 {
		return LeagueOverview{}, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}

	entry, inCatalog := league.FindEntry(leagueID)
	out := LeagueOverview{
		LeagueID:    leagueID,
		Name:        league.DisplayName(leagueID),
		Entry:       entry,
		InCatalog:   inCatalog,
		National:    entry.IsNational(),
		Season:      s.currentSeason,
		SeasonLabel: league.SeasonLabel(s.currentSeason, entry.IsNational()),
		Seasons:     []int{},
		Standings:   []leaguestanding.Standing{},
	}

	var (
		seasons      []int
		standings    []leaguestanding.Standing
		seasonsErr   error
		standingsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		seasons, seasonsErr = s.leagues.ListLeagueSeasons(ctx, leagueID)
	})
	if !out.National {
		wg.Go(func() {
			standings, standingsErr = s.standings.GetStandings(ctx, leagueID, s.currentSeason)
		})
	}
	wg.Wait()

	if seasonsErr == nil && seasons != nil {
		out.Seasons = seasons
	}
	if standingsErr == nil && standings != nil {
		out.Standings = standings
	}
	for _, err := range []error{seasonsErr, standingsErr} {
		if err == nil {
			continue
		}
		span.RecordError(err)
		s.logger.WarnContext(ctx, "league overview upstream call failed", "league_id", leagueID, "error", err)
		if out.Error == "" {
			out.Error = err.Error()
		}
	}

	history, exists, err := s.competitions.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueOverview{}, fmt.Errorf("get competition history: %w", err)
	}
	if exists {
		out.History = &history
		out.Titles = competition.CalculateTitles(history.Editions)
	}

	return out, nil
}
