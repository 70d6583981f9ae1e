package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

// CompetitionRepository serves bundled competition histories. Returned
// histories are copies; the stored data is never mutated.
type CompetitionRepository struct {
	mu     sync.RWMutex
	items  map[int64]competition.History
	orders []int64
}

func NewCompetitionRepository(histories []competition.History) *CompetitionRepository {
	items := make(map[int64]competition.History, len(histories))
	orders := make([]int64, 0, len(histories))

	for _, h := range histories {
		if _, exists := items[h.ID]; !exists {
			orders = append(orders, h.ID)
		}
		items[h.ID] = cloneHistory(h)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i] < orders[j] })

	return &CompetitionRepository{
		items:  items,
		orders: orders,
	}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.History, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.History, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, cloneHistory(r.items[id]))
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID int64) (competition.History, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.items[competitionID]
	if !ok {
		return competition.History{}, false, nil
	}

	return cloneHistory(h), true, nil
}

func cloneHistory(h competition.History) competition.History {
	h.Editions = append([]competition.Edition(nil), h.Editions...)
	return h
}
