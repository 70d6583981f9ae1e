package league

import "sort"

const (
	TypeLeague = "League"
	TypeCup    = "Cup"
)

// League is one competition as reported by the upstream football API.
type League struct {
	ID      int64
	Name    string
	Type    string
	Logo    string
	Country Country
	Seasons []Season
}

type Country struct {
	Name string
	Code string
	Flag string
}

// Season describes one edition of a league. Start and End are YYYY-MM-DD.
type Season struct {
	Year    int
	Start   string
	End     string
	Current bool
}

// CurrentSeason returns the first season flagged as current.
func (l League) CurrentSeason() (Season, bool) {
	for _, s := range l.Seasons {
		if s.Current {
			return s, true
		}
	}
	return Season{}, false
}

// SeasonYears lists the season years, newest first.
func (l League) SeasonYears() []int {
	years := make([]int, 0, len(l.Seasons))
	for _, s := range l.Seasons {
		years = append(years, s.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
