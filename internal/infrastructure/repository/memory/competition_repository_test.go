package memory

import (
	"context"
	"reflect"
	"testing"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

func TestSeedCompetitions_LoadsBundledDatasets(t *testing.T) {
	t.Parallel()

	histories, err := SeedCompetitions()
	if err != nil {
		t.Fatalf("seed competitions: %v", err)
	}

	ids := make([]int64, 0, len(histories))
	for _, h := range histories {
		ids = append(ids, h.ID)
		if len(h.Editions) == 0 {
			t.Fatalf("competition id=%d has no editions", h.ID)
		}
	}
	want := []int64{1, 2, 3, 4, 6, 7, 9, 13, 22}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("unexpected competition ids: got=%v want=%v", ids, want)
	}
}

func TestSeedCompetitions_DecodesYearShapes(t *testing.T) {
	t.Parallel()

	histories, err := SeedCompetitions()
	if err != nil {
		t.Fatalf("seed competitions: %v", err)
	}
	repo := NewCompetitionRepository(histories)

	worldCup, ok, err := repo.GetByID(context.Background(), 1)
	if err != nil || !ok {
		t.Fatalf("get world cup: ok=%t err=%v", ok, err)
	}
	if worldCup.Type != competition.TypeNational {
		t.Fatalf("unexpected world cup type: got=%s", worldCup.Type)
	}
	first := worldCup.Editions[0]
	if first.Year.Number != 1930 || first.Year.IsSeason() {
		t.Fatalf("unexpected first world cup year: %+v", first.Year)
	}
	if first.Winner != "Uruguay" {
		t.Fatalf("unexpected first world cup winner: got=%q", first.Winner)
	}

	ucl, ok, err := repo.GetByID(context.Background(), 2)
	if err != nil || !ok {
		t.Fatalf("get champions league: ok=%t err=%v", ok, err)
	}
	if ucl.Type != competition.TypeClubs {
		t.Fatalf("unexpected champions league type: got=%s", ucl.Type)
	}
	if got := ucl.Editions[0].Year; got.Season != "1955-56" || got.Number != 1955 {
		t.Fatalf("unexpected first champions league year: %+v", got)
	}
}

func TestCompetitionRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewCompetitionRepository([]competition.History{
		{ID: 9, Name: "Copa", Type: competition.TypeNational, Editions: []competition.Edition{{Winner: "A", RunnerUp: "B"}}},
		{ID: 1, Name: "World", Type: competition.TypeNational},
	})

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 {
		t.Fatalf("expected 2 competitions ordered by id, got=%+v", list)
	}

	list[1].Editions[0].Winner = "mutated"
	again, ok, err := repo.GetByID(context.Background(), 9)
	if err != nil || !ok {
		t.Fatalf("get copa: ok=%t err=%v", ok, err)
	}
	if again.Editions[0].Winner != "A" {
		t.Fatalf("repository was mutated through a returned copy: got=%q", again.Editions[0].Winner)
	}

	if _, ok, err = repo.GetByID(context.Background(), 404); err != nil || ok {
		t.Fatalf("expected missing competition: ok=%t err=%v", ok, err)
	}
}

func TestDecodeCompetition_RejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing id":       `{"name":"X","type":"clubs","editions":[]}`,
		"unknown type":     `{"id":5,"name":"X","type":"mixed","editions":[]}`,
		"missing finalist": `{"id":5,"name":"X","type":"clubs","editions":[{"year":2000,"winner":"A"}]}`,
		"bad year":         `{"id":5,"name":"X","type":"clubs","editions":[{"year":true,"winner":"A","runnerUp":"B"}]}`,
	}
	for name, raw := range cases {
		if _, err := decodeCompetition([]byte(raw)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
