package apifootball

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-portal/internal/domain/fixture"
	"github.com/riskibarqy/football-portal/internal/domain/league"
	"github.com/riskibarqy/football-portal/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
	"github.com/riskibarqy/football-portal/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL    = "https://api-football-v1.p.rapidapi.com/v3"
	DefaultHost       = "api-football-v1.p.rapidapi.com"
	DefaultRevalidate = time.Hour
	DefaultTimeout    = 20 * time.Second

	headerHost = "x-rapidapi-host"
	headerKey  = "x-rapidapi-key"

	maxBodyBytes = 8 << 20
)

// ResponseCache stores successful response bodies by request URL.
// Implementations must not cache errors returned by load.
type ResponseCache interface {
	Fetch(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Host           string
	APIKey         string
	Timeout        time.Duration
	Revalidate     time.Duration
	Cache          ResponseCache
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client reads football data from API-Football over RapidAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	revalidate time.Duration
	cache      ResponseCache
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = DefaultHost
	}
	revalidate := cfg.Revalidate
	if revalidate <= 0 {
		revalidate = DefaultRevalidate
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     cfg.APIKey,
		revalidate: revalidate,
		cache:      cfg.Cache,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker, cfg.Clock),
	}
}

// ListLeagues lists leagues, optionally narrowed by country name and season.
func (c *Client) ListLeagues(ctx context.Context, country string, season int) ([]league.League, error) {
	query := map[string]string{}
	if country != "" {
		query["country"] = country
	}
	if season > 0 {
		query["season"] = strconv.Itoa(season)
	}

	var env envelope[leagueItem]
	if err := c.doJSON(ctx, "/leagues", query, &env); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, mapLeague(item))
	}
	return out, nil
}

// ListLeagueSeasons returns the season years of a league, newest first.
func (c *Client) ListLeagueSeasons(ctx context.Context, leagueID int64) ([]int, error) {
	query := map[string]string{"id": strconv.FormatInt(leagueID, 10)}

	var env envelope[leagueItem]
	if err := c.doJSON(ctx, "/leagues", query, &env); err != nil {
		return nil, fmt.Errorf("list league seasons league_id=%d: %w", leagueID, err)
	}
	if len(env.Response) == 0 {
		return []int{}, nil
	}
	return seasonYearsDescending(env.Response[0].Seasons), nil
}

func (c *Client) ListTeams(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}

	var env envelope[teamItem]
	if err := c.doJSON(ctx, "/teams", query, &env); err != nil {
		return nil, fmt.Errorf("list teams league_id=%d season=%d: %w", leagueID, season, err)
	}

	out := make([]team.Team, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, mapTeam(item))
	}
	return out, nil
}

// GetTeamByID returns the first matching team. The bool is false when the
// provider returned no entries.
func (c *Client) GetTeamByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query := map[string]string{"id": strconv.FormatInt(teamID, 10)}

	var env envelope[teamItem]
	if err := c.doJSON(ctx, "/teams", query, &env); err != nil {
		return team.Team{}, false, fmt.Errorf("get team team_id=%d: %w", teamID, err)
	}
	if len(env.Response) == 0 {
		return team.Team{}, false, nil
	}
	return mapTeam(env.Response[0]), true, nil
}

// GetStandings returns the first group of the league table.
func (c *Client) GetStandings(ctx context.Context, leagueID int64, season int) ([]leaguestanding.Standing, error) {
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(season),
	}

	var env envelope[standingsItem]
	if err := c.doJSON(ctx, "/standings", query, &env); err != nil {
		return nil, fmt.Errorf("get standings league_id=%d season=%d: %w", leagueID, season, err)
	}

	group := firstStandingsGroup(env.Response)
	out := make([]leaguestanding.Standing, 0, len(group))
	for _, item := range group {
		out = append(out, mapStanding(item))
	}
	return out, nil
}

func (c *Client) ListFixtures(ctx context.Context, filter fixture.Filter) ([]fixture.Fixture, error) {
	fixtures, err := c.fetchFixtures(ctx, fixtureQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return fixtures, nil
}

func (c *Client) ListLiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	fixtures, err := c.fetchFixtures(ctx, map[string]string{"live": "all"})
	if err != nil {
		return nil, fmt.Errorf("list live fixtures: %w", err)
	}
	return fixtures, nil
}

func (c *Client) fetchFixtures(ctx context.Context, query map[string]string) ([]fixture.Fixture, error) {
	var env envelope[fixtureItem]
	if err := c.doJSON(ctx, "/fixtures", query, &env); err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(env.Response))
	for _, item := range env.Response {
		out = append(out, mapFixture(item))
	}
	return out, nil
}

// fixtureQuery forwards only the filters that are set.
func fixtureQuery(filter fixture.Filter) map[string]string {
	query := make(map[string]string, 4)
	if filter.League > 0 {
		query["league"] = strconv.FormatInt(filter.League, 10)
	}
	if filter.Season > 0 {
		query["season"] = strconv.Itoa(filter.Season)
	}
	if filter.Team > 0 {
		query["team"] = strconv.FormatInt(filter.Team, 10)
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.From != "" {
		query["from"] = filter.From
	}
	if filter.To != "" {
		query["to"] = filter.To
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Last > 0 {
		query["last"] = strconv.Itoa(filter.Last)
	}
	if filter.Next > 0 {
		query["next"] = strconv.Itoa(filter.Next)
	}
	return query
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	fullURL := c.buildURL(path, query)

	var (
		raw []byte
		err error
	)
	if c.cache != nil {
		raw, err = c.cache.Fetch(ctx, fullURL, c.revalidate, func(ctx context.Context) ([]byte, error) {
			return c.execute(ctx, fullURL)
		})
	} else {
		raw, err = c.execute(ctx, fullURL)
	}
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode provider payload path=%s", path)
	}
	return nil
}

func (c *Client) buildURL(path string, query map[string]string) string {
	fullURL := c.baseURL + path
	if len(query) == 0 {
		return fullURL
	}
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	return fullURL + "?" + values.Encode()
}

// execute issues one GET. There is no retry.
func (c *Client) execute(ctx context.Context, fullURL string) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
		return nil, fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, resilience.ErrCircuitOpen)
	}

	raw, err := c.send(ctx, fullURL)
	c.breaker.Record(isCircuitFailure(err))
	if err != nil {
		c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(headerHost, c.host)
	req.Header.Set(headerKey, c.apiKey)
	req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(int(c.revalidate/time.Second)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, newAPIError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err, "read response body")
	}
	return raw, nil
}

// transportError keeps the cause in the chain. Cancellation and deadlines are
// left unmarked so callers can tell them apart from an unavailable upstream.
func transportError(err error, op string) error {
	wrapped := crerr.Wrap(err, op)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return wrapped
	}
	return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, wrapped)
}
