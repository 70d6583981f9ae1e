package apifootball

import (
	"sort"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/fixture"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/domain/team"
)

func mapLeague(item leagueItem) league.League {
	seasons := make([]league.Season, 0, len(item.Seasons))
	for _, s := range item.Seasons {
		seasons = append(seasons, league.Season{
			Year:    s.Year,
			Start:   s.Start,
			End:     s.End,
			Current: s.Current,
		})
	}
	return league.League{
		ID:   item.League.ID,
		Name: item.League.Name,
		Type: item.League.Type,
		Logo: item.League.Logo,
		Country: league.Country{
			Name: item.Country.Name,
			Code: item.Country.Code,
			Flag: item.Country.Flag,
		},
		Seasons: seasons,
	}
}

func mapTeam(item teamItem) team.Team {
	return team.Team{
		ID:       item.Team.ID,
		Name:     item.Team.Name,
		Code:     item.Team.Code,
		Country:  item.Team.Country,
		Founded:  item.Team.Founded,
		National: item.Team.National,
		Logo:     item.Team.Logo,
		Venue: team.Venue{
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

func mapTeamRef(ref teamRef) team.Ref {
	return team.Ref{ID: ref.ID, Name: ref.Name, Logo: ref.Logo}
}

// firstStandingsGroup returns the first group of the first league entry.
// Other groups, such as split conferences, are dropped.
func firstStandingsGroup(items []standingsItem) []standingItem {
	if len(items) == 0 {
		return nil
	}
	groups := items[0].League.Standings
	if len(groups) == 0 {
		return nil
	}
	return groups[0]
}

func mapStanding(item standingItem) leaguestanding.Standing {
	return leaguestanding.Standing{
		Rank:        item.Rank,
		Team:        mapTeamRef(item.Team),
		Points:      item.Points,
		GoalsDiff:   item.GoalsDiff,
		Group:       item.Group,
		Form:        item.Form,
		Status:      item.Status,
		Description: item.Description,
		All:         mapRecord(item.All),
		Home:        mapRecord(item.Home),
		Away:        mapRecord(item.Away),
		Update:      parseProviderTime(item.Update),
	}
}

func mapRecord(item recordItem) leaguestanding.Record {
	return leaguestanding.Record{
		Played: item.Played,
		Win:    item.Win,
		Draw:   item.Draw,
		Lose:   item.Lose,
		Goals: leaguestanding.Goals{
			For:     item.Goals.For,
			Against: item.Goals.Against,
		},
	}
}

func mapFixture(item fixtureItem) fixture.Fixture {
	return fixture.Fixture{
		ID:        item.Fixture.ID,
		Referee:   item.Fixture.Referee,
		Timezone:  item.Fixture.Timezone,
		Date:      parseProviderTime(item.Fixture.Date),
		Timestamp: item.Fixture.Timestamp,
		Venue: fixture.Venue{
			ID:   item.Fixture.Venue.ID,
			Name: item.Fixture.Venue.Name,
			City: item.Fixture.Venue.City,
		},
		Status: fixture.Status{
			Long:    item.Fixture.Status.Long,
			Short:   item.Fixture.Status.Short,
			Elapsed: item.Fixture.Status.Elapsed,
		},
		League: fixture.LeagueRef{
			ID:      item.League.ID,
			Name:    item.League.Name,
			Country: item.League.Country,
			Logo:    item.League.Logo,
			Flag:    item.League.Flag,
			Season:  item.League.Season,
			Round:   item.League.Round,
		},
		Home:  mapSide(item.Teams.Home),
		Away:  mapSide(item.Teams.Away),
		Goals: mapScore(item.Goals),
		Score: fixture.ScoreBreakdown{
			Halftime:  mapScore(item.Score.Halftime),
			Fulltime:  mapScore(item.Score.Fulltime),
			Extratime: mapScore(item.Score.Extratime),
			Penalty:   mapScore(item.Score.Penalty),
		},
	}
}

func mapSide(item sideItem) fixture.Side {
	return fixture.Side{
		Team:   team.Ref{ID: item.ID, Name: item.Name, Logo: item.Logo},
		Winner: item.Winner,
	}
}

func mapScore(item scoreItem) fixture.Score {
	return fixture.Score{Home: item.Home, Away: item.Away}
}

func seasonYearsDescending(items []seasonItem) []int {
	years := make([]int, 0, len(items))
	for _, s := range items {
		years = append(years, s.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// parseProviderTime returns the zero time for empty or malformed values.
func parseProviderTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
