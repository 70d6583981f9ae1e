package league

import "context"

type Provider interface {
	ListLeagues(ctx context.Context, country string, season int) ([]League, error)
	ListLeagueSeasons(ctx context.Context, leagueID int64) ([]int, error)
}
