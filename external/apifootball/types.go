package apifootball

// envelope is the common wrapper of every API-Football v3 response.
type envelope[T any] struct {
	Get        string `json:"get"`
	Parameters any    `json:"parameters"`
	Errors     any    `json:"errors"`
	Results    int    `json:"results"`
	Paging     paging `json:"paging"`
	Response   []T    `json:"response"`
}

type paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Flag string `json:"flag"`
	} `json:"country"`
	Seasons []seasonItem `json:"seasons"`
}

type seasonItem struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type teamItem struct {
	Team struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Code     string `json:"code"`
		Country  string `json:"country"`
		Founded  int    `json:"founded"`
		National bool   `json:"national"`
		Logo     string `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		Capacity int    `json:"capacity"`
		Surface  string `json:"surface"`
		Image    string `json:"image"`
	} `json:"venue"`
}

type teamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type standingsItem struct {
	League struct {
		ID        int64            `json:"id"`
		Name      string           `json:"name"`
		Country   string           `json:"country"`
		Logo      string           `json:"logo"`
		Flag      string           `json:"flag"`
		Season    int              `json:"season"`
		Standings [][]standingItem `json:"standings"`
	} `json:"league"`
}

type standingItem struct {
	Rank        int        `json:"rank"`
	Team        teamRef    `json:"team"`
	Points      int        `json:"points"`
	GoalsDiff   int        `json:"goalsDiff"`
	Group       string     `json:"group"`
	Form        string     `json:"form"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	All         recordItem `json:"all"`
	Home        recordItem `json:"home"`
	Away        recordItem `json:"away"`
	Update      string     `json:"update"`
}

type recordItem struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Country string `json:"country"`
		Logo    string `json:"logo"`
		Flag    string `json:"flag"`
		Season  int    `json:"season"`
		Round   string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home sideItem `json:"home"`
		Away sideItem `json:"away"`
	} `json:"teams"`
	Goals scoreItem `json:"goals"`
	Score struct {
		Halftime  scoreItem `json:"halftime"`
		Fulltime  scoreItem `json:"fulltime"`
		Extratime scoreItem `json:"extratime"`
		Penalty   scoreItem `json:"penalty"`
	} `json:"score"`
}

type sideItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type scoreItem struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
