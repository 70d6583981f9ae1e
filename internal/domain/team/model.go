package team

// Team is a club or national side known to the upstream provider.
type Team struct {
	ID       int64
	Name     string
	Code     string
	Country  string
	Founded  int
	National bool
	Logo     string
	Venue    Venue
}

type Venue struct {
	ID       int64
	Name     string
	Address  string
	City     string
	Capacity int
	Surface  string
	Image    string
}

// Ref is the compact team reference embedded in standings and fixtures.
type Ref struct {
	ID   int64
	Name string
	Logo string
}
