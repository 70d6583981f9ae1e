package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

const (
	defaultWarmupWorkers = 4
	maxWarmupWorkers     = 16

	warmupStatusSuccess = "success"
	warmupStatusFailed  = "failed"
)

type WarmupInput struct {
	LeagueIDs  []int64
	Season     int
	MaxWorkers int
}

type WarmupLeagueResult struct {
	LeagueID   int64
	Status     string
	Standings  int
	Message    string
	DurationMs int64
}

type WarmupResult struct {
	Season       int
	WorkerCount  int
	SuccessCount int
	FailedCount  int
	Leagues      []WarmupLeagueResult
}

// WarmupService pre-fetches standings so the response cache is hot. Each
// league gets a single attempt.
type WarmupService struct {
	standings      leaguestanding.Provider
	currentSeason  int
	defaultWorkers int
	logger         *logging.Logger
}

func NewWarmupService(standings leaguestanding.Provider, currentSeason, defaultWorkers int, logger *logging.Logger) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultWorkers <= 0 {
		defaultWorkers = defaultWarmupWorkers
	}
	return &WarmupService{
		standings:      standings,
		currentSeason:  currentSeason,
		defaultWorkers: defaultWorkers,
		logger:         logger,
	}
}

func (s *WarmupService) Run(ctx context.Context, input WarmupInput) (WarmupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmupService.Run")
	defer span.End()

	season, err := resolveSeason(input.Season, s.currentSeason)
	if err != nil {
		return WarmupResult{}, err
	}
	leagueIDs, err := normalizeWarmupLeagueIDs(input.LeagueIDs)
	if err != nil {
		return WarmupResult{}, err
	}

	workerCount := normalizeWarmupWorkerCount(input.MaxWorkers, s.defaultWorkers, len(leagueIDs))
	result := WarmupResult{
		Season:      season,
		WorkerCount: workerCount,
		Leagues:     make([]WarmupLeagueResult, 0, len(leagueIDs)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmupLeagueResult, len(leagueIDs))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, leagueID := range leagueIDs {
		leagueID := leagueID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmupLeagueResult{LeagueID: leagueID, Status: warmupStatusSuccess}
			items, err := s.standings.GetStandings(ctx, leagueID, season)
			if err != nil {
				row.Status = warmupStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "warmup standings failed", "league_id", leagueID, "season", season, "error", err)
			} else {
				row.Standings = len(items)
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return WarmupResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Leagues = append(result.Leagues, row)
	}
	sort.SliceStable(result.Leagues, func(i, j int) bool {
		return result.Leagues[i].LeagueID < result.Leagues[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "warmup finished",
		"season", season,
		"leagues", len(leagueIDs),
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}

// normalizeWarmupLeagueIDs defaults to every club competition in the catalog.
func normalizeWarmupLeagueIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return league.ClubLeagueIDs(), nil
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func normalizeWarmupWorkerCount(requested, fallback, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = fallback
	}
	if workers > maxWarmupWorkers {
		workers = maxWarmupWorkers
	}
	if tasks > 0 && workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
