package competition

import "sort"

// TeamTitles is one row of a titles ranking.
type TeamTitles struct {
	Name      string
	Titles    int
	RunnerUps int
	Total     int
}

// CalculateTitles tallies winners and runners-up by display name and ranks
// them by titles, then runner-up finishes. Remaining ties keep first-seen order.
func CalculateTitles(editions []Edition) []TeamTitles {
	if len(editions) == 0 {
		return []TeamTitles{}
	}

	index := make(map[string]int, len(editions))
	rows := make([]TeamTitles, 0, len(editions))
	row := func(name string) *TeamTitles {
		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, TeamTitles{Name: name})
		}
		return &rows[i]
	}

	for _, edition := range editions {
		row(edition.Winner).Titles++
		row(edition.RunnerUp).RunnerUps++
	}

	for i := range rows {
		rows[i].Total = rows[i].Titles + rows[i].RunnerUps
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Titles != rows[j].Titles {
			return rows[i].Titles > rows[j].Titles
		}
		return rows[i].RunnerUps > rows[j].RunnerUps
	})
	return rows
}
