package league

import (
	"fmt"
	"strconv"
)

// Upstream ids of the leagues the portal features.
const (
	WorldCup                int64 = 1
	ChampionsLeague         int64 = 2
	EuropaLeague            int64 = 3
	Euro                    int64 = 4
	AfricaCup               int64 = 6
	AsiaCup                 int64 = 7
	CopaAmerica             int64 = 9
	CopaSudamericana        int64 = 11
	CAFChampionsLeague      int64 = 12
	CopaLibertadores        int64 = 13
	CONCACAFChampionsLeague int64 = 16
	AFCChampionsLeague      int64 = 17
	CONCACAFGoldCup         int64 = 22
	PremierLeague           int64 = 39
	Ligue1                  int64 = 61
	BrasilSerieA            int64 = 71
	Bundesliga              int64 = 78
	ArgentinaPrimera        int64 = 128
	SerieA                  int64 = 135
	LaLiga                  int64 = 140
	MLS                     int64 = 253
	LigaMX                  int64 = 262
	SaudiProLeague          int64 = 307
	EuropaConferenceLeague  int64 = 848
)

type CompetitionType string

const (
	CompetitionClubs    CompetitionType = "clubs"
	CompetitionNational CompetitionType = "national"
)

// CatalogEntry is a featured league as shown in navigation.
type CatalogEntry struct {
	ID      int64
	Name    string
	Country string
	Emoji   string
	Type    CompetitionType
}

func (e CatalogEntry) IsNational() bool {
	return e.Type == CompetitionNational
}

type Continent struct {
	Key     string
	Name    string
	Emoji   string
	Leagues []CatalogEntry
}

var continents = []Continent{
	{
		Key:   "europe",
		Name:  "Europe",
		Emoji: "🌍",
		Leagues: []CatalogEntry{
			{ID: PremierLeague, Name: "Premier League", Country: "England", Emoji: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Type: CompetitionClubs},
			{ID: LaLiga, Name: "La Liga", Country: "Spain", Emoji: "🇪🇸", Type: CompetitionClubs},
			{ID: SerieA, Name: "Serie A", Country: "Italy", Emoji: "🇮🇹", Type: CompetitionClubs},
			{ID: Bundesliga, Name: "Bundesliga", Country: "Germany", Emoji: "🇩🇪", Type: CompetitionClubs},
			{ID: Ligue1, Name: "Ligue 1", Country: "France", Emoji: "🇫🇷", Type: CompetitionClubs},
			{ID: ChampionsLeague, Name: "Champions League", Country: "UEFA", Emoji: "🏆", Type: CompetitionClubs},
			{ID: EuropaLeague, Name: "Europa League", Country: "UEFA", Emoji: "🏆", Type: CompetitionClubs},
			{ID: EuropaConferenceLeague, Name: "Conference League", Country: "UEFA", Emoji: "🏆", Type: CompetitionClubs},
		},
	},
	{
		Key:   "south-america",
		Name:  "South America",
		Emoji: "🌎",
		Leagues: []CatalogEntry{
			{ID: ArgentinaPrimera, Name: "Liga Profesional", Country: "Argentina", Emoji: "🇦🇷", Type: CompetitionClubs},
			{ID: BrasilSerieA, Name: "Brasileirão", Country: "Brazil", Emoji: "🇧🇷", Type: CompetitionClubs},
			{ID: CopaLibertadores, Name: "Copa Libertadores", Country: "CONMEBOL", Emoji: "🏆", Type: CompetitionClubs},
			{ID: CopaSudamericana, Name: "Copa Sudamericana", Country: "CONMEBOL", Emoji: "🏆", Type: CompetitionClubs},
		},
	},
	{
		Key:   "north-america",
		Name:  "North & Central America",
		Emoji: "🌎",
		Leagues: []CatalogEntry{
			{ID: MLS, Name: "MLS", Country: "USA", Emoji: "🇺🇸", Type: CompetitionClubs},
			{ID: LigaMX, Name: "Liga MX", Country: "Mexico", Emoji: "🇲🇽", Type: CompetitionClubs},
			{ID: CONCACAFChampionsLeague, Name: "CONCACAF Champions Cup", Country: "CONCACAF", Emoji: "🏆", Type: CompetitionClubs},
		},
	},
	{
		Key:   "asia",
		Name:  "Asia",
		Emoji: "🌏",
		Leagues: []CatalogEntry{
			{ID: SaudiProLeague, Name: "Saudi Pro League", Country: "Saudi Arabia", Emoji: "🇸🇦", Type: CompetitionClubs},
			{ID: AFCChampionsLeague, Name: "AFC Champions League", Country: "AFC", Emoji: "🏆", Type: CompetitionClubs},
		},
	},
	{
		Key:   "africa",
		Name:  "Africa",
		Emoji: "🌍",
		Leagues: []CatalogEntry{
			{ID: CAFChampionsLeague, Name: "CAF Champions League", Country: "CAF", Emoji: "🏆", Type: CompetitionClubs},
		},
	},
	{
		Key:   "international",
		Name:  "International",
		Emoji: "🌐",
		Leagues: []CatalogEntry{
			{ID: WorldCup, Name: "World Cup", Country: "FIFA", Emoji: "🏆", Type: CompetitionNational},
			{ID: Euro, Name: "Euro", Country: "UEFA", Emoji: "🏆", Type: CompetitionNational},
			{ID: CopaAmerica, Name: "Copa América", Country: "CONMEBOL", Emoji: "🏆", Type: CompetitionNational},
			{ID: AfricaCup, Name: "Africa Cup of Nations", Country: "CAF", Emoji: "🏆", Type: CompetitionNational},
			{ID: AsiaCup, Name: "AFC Asian Cup", Country: "AFC", Emoji: "🏆", Type: CompetitionNational},
			{ID: CONCACAFGoldCup, Name: "CONCACAF Gold Cup", Country: "CONCACAF", Emoji: "🏆", Type: CompetitionNational},
		},
	},
}

var displayNames = map[int64]string{
	PremierLeague:           "Premier League",
	LaLiga:                  "La Liga",
	SerieA:                  "Serie A",
	Bundesliga:              "Bundesliga",
	Ligue1:                  "Ligue 1",
	ChampionsLeague:         "UEFA Champions League",
	EuropaLeague:            "UEFA Europa League",
	EuropaConferenceLeague:  "UEFA Europa Conference League",
	MLS:                     "MLS",
	LigaMX:                  "Liga MX",
	ArgentinaPrimera:        "Liga Profesional Argentina",
	BrasilSerieA:            "Brasileirão Série A",
	SaudiProLeague:          "Saudi Pro League",
	CopaLibertadores:        "Copa Libertadores",
	CopaSudamericana:        "Copa Sudamericana",
	AFCChampionsLeague:      "AFC Champions League",
	CAFChampionsLeague:      "CAF Champions League",
	CONCACAFChampionsLeague: "CONCACAF Champions Cup",
	WorldCup:                "FIFA World Cup",
	Euro:                    "UEFA European Championship",
	CopaAmerica:             "Copa América",
	AfricaCup:               "Africa Cup of Nations",
	AsiaCup:                 "AFC Asian Cup",
	CONCACAFGoldCup:         "CONCACAF Gold Cup",
}

// Continents returns a copy of the catalog in display order.
func Continents() []Continent {
	out := make([]Continent, 0, len(continents))
	for _, c := range continents {
		c.Leagues = append([]CatalogEntry(nil), c.Leagues...)
		out = append(out, c)
	}
	return out
}

func ContinentByKey(key string) (Continent, bool) {
	for _, c := range continents {
		if c.Key == key {
			c.Leagues = append([]CatalogEntry(nil), c.Leagues...)
			return c, true
		}
	}
	return Continent{}, false
}

func FindEntry(leagueID int64) (CatalogEntry, bool) {
	for _, c := range continents {
		for _, entry := range c.Leagues {
			if entry.ID == leagueID {
				return entry, true
			}
		}
	}
	return CatalogEntry{}, false
}

// ClubLeagueIDs lists every club competition in catalog order.
func ClubLeagueIDs() []int64 {
	out := make([]int64, 0, 24)
	for _, c := range continents {
		for _, entry := range c.Leagues {
			if entry.Type == CompetitionClubs {
				out = append(out, entry.ID)
			}
		}
	}
	return out
}

func DisplayName(leagueID int64) string {
	if name, ok := displayNames[leagueID]; ok {
		return name
	}
	return fmt.Sprintf("League %d", leagueID)
}

// SeasonLabel renders 2025 for national-team tournaments and 2025/26 otherwise.
func SeasonLabel(year int, national bool) string {
	if national {
		return strconv.Itoa(year)
	}
	next := strconv.Itoa(year + 1)
	return fmt.Sprintf("%d/%s", year, next[len(next)-2:])
}
