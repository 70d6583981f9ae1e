package fixture

import (
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/team"
)

// Short status codes accepted as fixture filters.
const (
	StatusNotStarted = "NS"
	StatusLive       = "LIVE"
	StatusFinished   = "FT"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
)

// Short status codes the provider reports while a match is being played.
var liveStatuses = map[string]struct{}{
	"1H":   {},
	"HT":   {},
	"2H":   {},
	"ET":   {},
	"BT":   {},
	"P":    {},
	"SUSP": {},
	"INT":  {},
	"LIVE": {},
}

func NormalizeStatus(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}

func IsLiveStatus(v string) bool {
	_, ok := liveStatuses[NormalizeStatus(v)]
	return ok
}

func IsFilterStatus(v string) bool {
	switch NormalizeStatus(v) {
	case StatusNotStarted, StatusLive, StatusFinished, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Fixture is one scheduled or played match.
type Fixture struct {
	ID        int64
	Referee   string
	Timezone  string
	Date      time.Time
	Timestamp int64
	Venue     Venue
	Status    Status
	League    LeagueRef
	Home      Side
	Away      Side
	Goals     Score
	Score     ScoreBreakdown
}

type Venue struct {
	ID   int64
	Name string
	City string
}

type Status struct {
	Long    string
	Short   string
	Elapsed *int
}

func (s Status) IsLive() bool {
	return IsLiveStatus(s.Short)
}

type LeagueRef struct {
	ID      int64
	Name    string
	Country string
	Logo    string
	Flag    string
	Season  int
	Round   string
}

// Side is a participating team. Winner stays nil until a result is known.
type Side struct {
	Team   team.Ref
	Winner *bool
}

// Score holds nullable goal counts; nil means not yet played.
type Score struct {
	Home *int
	Away *int
}

type ScoreBreakdown struct {
	Halftime  Score
	Fulltime  Score
	Extratime Score
	Penalty   Score
}

// Filter narrows a fixtures query. Zero values are omitted from the request.
type Filter struct {
	League int64
	Season int
	Team   int64
	Date   string
	From   string
	To     string
	Status string
	Last   int
	Next   int
}

func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
