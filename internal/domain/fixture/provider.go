package fixture

import "context"

type Provider interface {
	ListFixtures(ctx context.Context, filter Filter) ([]Fixture, error)
	ListLiveFixtures(ctx context.Context) ([]Fixture, error)
}
