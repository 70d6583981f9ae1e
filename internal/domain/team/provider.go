package team

import "context"

type Provider interface {
	ListTeams(ctx context.Context, leagueID int64, season int) ([]Team, error)
	GetTeamByID(ctx context.Context, teamID int64) (Team, bool, error)
}
