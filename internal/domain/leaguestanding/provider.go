package leaguestanding

import "context"

type Provider interface {
	GetStandings(ctx context.Context, leagueID int64, season int) ([]Standing, error)
}
