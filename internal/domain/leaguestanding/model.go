package leaguestanding

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/team"
)

// Standing is a single table row of a league.
type Standing struct {
	Rank        int
	Team        team.Ref
	Points      int
	GoalsDiff   int
	Group       string
	Form        string
	Status      string
	Description string
	All         Record
	Home        Record
	Away        Record
	Update      time.Time
}

type Record struct {
	Played int
	Win    int
	Draw   int
	Lose   int
	Goals  Goals
}

type Goals struct {
	For     int
	Against int
}
