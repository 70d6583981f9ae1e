package httpapi

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/fixture"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/usecase"
)

type continentDTO struct {
	Key     string            `json:"key"`
	Name    string            `json:"name"`
	Emoji   string            `json:"emoji"`
	Leagues []catalogEntryDTO `json:"leagues"`
}

type catalogEntryDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Emoji   string `json:"emoji"`
	Type    string `json:"type"`
}

type leagueDTO struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Logo    string      `json:"logo"`
	Country countryDTO  `json:"country"`
	Seasons []seasonDTO `json:"seasons"`
}

type countryDTO struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type seasonDTO struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type teamDTO struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Country  string   `json:"country"`
	Founded  int      `json:"founded"`
	National bool     `json:"national"`
	Logo     string   `json:"logo"`
	Venue    venueDTO `json:"venue"`
}

type venueDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
	Surface  string `json:"surface"`
	Image    string `json:"image"`
}

type teamRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type standingDTO struct {
	Rank        int        `json:"rank"`
	Team        teamRefDTO `json:"team"`
	Points      int        `json:"points"`
	GoalsDiff   int        `json:"goalsDiff"`
	Group       string     `json:"group"`
	Form        string     `json:"form"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	All         recordDTO  `json:"all"`
	Home        recordDTO  `json:"home"`
	Away        recordDTO  `json:"away"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

type recordDTO struct {
	Played       int `json:"played"`
	Win          int `json:"win"`
	Draw         int `json:"draw"`
	Lose         int `json:"lose"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

type fixtureDTO struct {
	ID        int64             `json:"id"`
	Referee   string            `json:"referee"`
	Timezone  string            `json:"timezone"`
	Date      string            `json:"date"`
	Timestamp int64             `json:"timestamp"`
	Venue     fixtureVenueDTO   `json:"venue"`
	Status    fixtureStatusDTO  `json:"status"`
	League    fixtureLeagueDTO  `json:"league"`
	Home      fixtureSideDTO    `json:"home"`
	Away      fixtureSideDTO    `json:"away"`
	Goals     scoreDTO          `json:"goals"`
	Score     scoreBreakdownDTO `json:"score"`
}

type fixtureVenueDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type fixtureStatusDTO struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
	Live    bool   `json:"live"`
}

type fixtureLeagueDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type fixtureSideDTO struct {
	Team   teamRefDTO `json:"team"`
	Winner *bool      `json:"winner"`
}

type scoreDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type scoreBreakdownDTO struct {
	Halftime  scoreDTO `json:"halftime"`
	Fulltime  scoreDTO `json:"fulltime"`
	Extratime scoreDTO `json:"extratime"`
	Penalty   scoreDTO `json:"penalty"`
}

type competitionDTO struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Editions []editionDTO `json:"editions"`
}

type editionDTO struct {
	Year         any    `json:"year"`
	Winner       string `json:"winner"`
	WinnerLogo   string `json:"winnerLogo,omitempty"`
	RunnerUp     string `json:"runnerUp"`
	RunnerUpLogo string `json:"runnerUpLogo,omitempty"`
	Host         string `json:"host,omitempty"`
	FinalScore   string `json:"finalScore,omitempty"`
}

type teamTitlesDTO struct {
	Name      string `json:"name"`
	Titles    int    `json:"titles"`
	RunnerUps int    `json:"runnerUps"`
	Total     int    `json:"total"`
}

type leagueOverviewDTO struct {
	LeagueID    int64            `json:"leagueId"`
	Name        string           `json:"name"`
	Catalog     *catalogEntryDTO `json:"catalog,omitempty"`
	National    bool             `json:"national"`
	Season      int              `json:"season"`
	SeasonLabel string           `json:"seasonLabel"`
	Seasons     []int            `json:"seasons"`
	Standings   []standingDTO    `json:"standings"`
	History     *competitionDTO  `json:"history,omitempty"`
	Titles      []teamTitlesDTO  `json:"titles,omitempty"`
	Error       string           `json:"error,omitempty"`
}

type warmupLeagueResultDTO struct {
	LeagueID   int64  `json:"leagueId"`
	Status     string `json:"status"`
	Standings  int    `json:"standings"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type warmupResultDTO struct {
	Season       int                     `json:"season"`
	WorkerCount  int                     `json:"workerCount"`
	SuccessCount int                     `json:"successCount"`
	FailedCount  int                     `json:"failedCount"`
	Leagues      []warmupLeagueResultDTO `json:"leagues"`
}

func continentsToDTO(items []league.Continent) []continentDTO {
	out := make([]continentDTO, 0, len(items))
	for _, c := range items {
		entries := make([]catalogEntryDTO, 0, len(c.Leagues))
		for _, e := range c.Leagues {
			entries = append(entries, catalogEntryToDTO(e))
		}
		out = append(out, continentDTO{
			Key:     c.Key,
			Name:    c.Name,
			Emoji:   c.Emoji,
			Leagues: entries,
		})
	}
	return out
}

func catalogEntryToDTO(e league.CatalogEntry) catalogEntryDTO {
	return catalogEntryDTO{
		ID:      e.ID,
		Name:    e.Name,
		Country: e.Country,
		Emoji:   e.Emoji,
		Type:    string(e.Type),
	}
}

func leaguesToDTO(items []league.League) []leagueDTO {
	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		seasons := make([]seasonDTO, 0, len(item.Seasons))
		for _, s := range item.Seasons {
			seasons = append(seasons, seasonDTO{Year: s.Year, Start: s.Start, End: s.End, Current: s.Current})
		}
		out = append(out, leagueDTO{
			ID:   item.ID,
			Name: item.Name,
			Type: item.Type,
			Logo: item.Logo,
			Country: countryDTO{
				Name: item.Country.Name,
				Code: item.Country.Code,
				Flag: item.Country.Flag,
			},
			Seasons: seasons,
		})
	}
	return out
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:       item.ID,
		Name:     item.Name,
		Code:     item.Code,
		Country:  item.Country,
		Founded:  item.Founded,
		National: item.National,
		Logo:     item.Logo,
		Venue: venueDTO{
			ID:       item.Venue.ID,
			Name:     item.Venue.Name,
			Address:  item.Venue.Address,
			City:     item.Venue.City,
			Capacity: item.Venue.Capacity,
			Surface:  item.Venue.Surface,
			Image:    item.Venue.Image,
		},
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func teamRefToDTO(ref team.Ref) teamRefDTO {
	return teamRefDTO{ID: ref.ID, Name: ref.Name, Logo: ref.Logo}
}

func standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		updatedAt := ""
		if !item.Update.IsZero() {
			updatedAt = item.Update.UTC().Format(time.RFC3339)
		}
		out = append(out, standingDTO{
			Rank:        item.Rank,
			Team:        teamRefToDTO(item.Team),
			Points:      item.Points,
			GoalsDiff:   item.GoalsDiff,
			Group:       item.Group,
			Form:        item.Form,
			Status:      item.Status,
			Description: item.Description,
			All:         recordToDTO(item.All),
			Home:        recordToDTO(item.Home),
			Away:        recordToDTO(item.Away),
			UpdatedAt:   updatedAt,
		})
	}
	return out
}

func recordToDTO(r leaguestanding.Record) recordDTO {
	return recordDTO{
		Played:       r.Played,
		Win:          r.Win,
		Draw:         r.Draw,
		Lose:         r.Lose,
		GoalsFor:     r.Goals.For,
		GoalsAgainst: r.Goals.Against,
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		date := ""
		if !item.Date.IsZero() {
			date = item.Date.UTC().Format(time.RFC3339)
		}
		out = append(out, fixtureDTO{
			ID:        item.ID,
			Referee:   item.Referee,
			Timezone:  item.Timezone,
			Date:      date,
			Timestamp: item.Timestamp,
			Venue: fixtureVenueDTO{
				ID:   item.Venue.ID,
				Name: item.Venue.Name,
				City: item.Venue.City,
			},
			Status: fixtureStatusDTO{
				Long:    item.Status.Long,
				Short:   item.Status.Short,
				Elapsed: item.Status.Elapsed,
				Live:    item.Status.IsLive(),
			},
			League: fixtureLeagueDTO{
				ID:      item.League.ID,
				Name:    item.League.Name,
				Country: item.League.Country,
				Logo:    item.League.Logo,
				Flag:    item.League.Flag,
				Season:  item.League.Season,
				Round:   item.League.Round,
			},
			Home:  fixtureSideDTO{Team: teamRefToDTO(item.Home.Team), Winner: item.Home.Winner},
			Away:  fixtureSideDTO{Team: teamRefToDTO(item.Away.Team), Winner: item.Away.Winner},
			Goals: scoreToDTO(item.Goals),
			Score: scoreBreakdownDTO{
				Halftime:  scoreToDTO(item.Score.Halftime),
				Fulltime:  scoreToDTO(item.Score.Fulltime),
				Extratime: scoreToDTO(item.Score.Extratime),
				Penalty:   scoreToDTO(item.Score.Penalty),
			},
		})
	}
	return out
}

func scoreToDTO(s fixture.Score) scoreDTO {
	return scoreDTO{Home: s.Home, Away: s.Away}
}

func competitionToDTO(item competition.History) competitionDTO {
	editions := make([]editionDTO, 0, len(item.Editions))
	for _, e := range item.Editions {
		var year any = e.Year.Number
		if e.Year.IsSeason() {
			year = e.Year.Season
		}
		editions = append(editions, editionDTO{
			Year:         year,
			Winner:       e.Winner,
			WinnerLogo:   e.WinnerLogo,
			RunnerUp:     e.RunnerUp,
			RunnerUpLogo: e.RunnerUpLogo,
			Host:         e.Host,
			FinalScore:   e.FinalScore,
		})
	}
	return competitionDTO{
		ID:       item.ID,
		Name:     item.Name,
		Type:     string(item.Type),
		Editions: editions,
	}
}

func competitionsToDTO(items []competition.History) []competitionDTO {
	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}
	return out
}

func titlesToDTO(items []competition.TeamTitles) []teamTitlesDTO {
	out := make([]teamTitlesDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamTitlesDTO{
			Name:      item.Name,
			Titles:    item.Titles,
			RunnerUps: item.RunnerUps,
			Total:     item.Total,
		})
	}
	return out
}

func overviewToDTO(item usecase.LeagueOverview) leagueOverviewDTO {
	out := leagueOverviewDTO{
		LeagueID:    item.LeagueID,
		Name:        item.Name,
		National:    item.National,
		Season:      item.Season,
		SeasonLabel: item.SeasonLabel,
		Seasons:     item.Seasons,
		Standings:   standingsToDTO(item.Standings),
		Error:       item.Error,
	}
	if out.Seasons == nil {
		out.Seasons = []int{}
	}
	if item.InCatalog {
		entry := catalogEntryToDTO(item.Entry)
		out.Catalog = &entry
	}
	if item.History != nil {
		history := competitionToDTO(*item.History)
		out.History = &history
		out.Titles = titlesToDTO(item.Titles)
	}
	return out
}

func warmupResultToDTO(result usecase.WarmupResult) warmupResultDTO {
	leagues := make([]warmupLeagueResultDTO, 0, len(result.Leagues))
	for _, item := range result.Leagues {
		leagues = append(leagues, warmupLeagueResultDTO{
			LeagueID:   item.LeagueID,
			Status:     item.Status,
			Standings:  item.Standings,
			Message:    item.Message,
			DurationMs: item.DurationMs,
		})
	}
	return warmupResultDTO{
		Season:       result.Season,
		WorkerCount:  result.WorkerCount,
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
		Leagues:      leagues,
	}
}
