package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/providers"
)

const (
	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultTimeout = 12 * time.Second
	eventLimit     = "500"
	userAgent      = "sports-ticker/0.1"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string

	// GroupsFor returns the "groups" query value for a league, empty to
	// omit the parameter. Nil defaults to each league's default group.
	GroupsFor func(domain.League) string
}

// Client fetches league scoreboards and maps events to GameRecords.
type Client struct {
	baseURL    string
	httpClient httpDoer
	loc        *time.Location
	groupsFor  func(domain.League) string
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	groupsFor := cfg.GroupsFor
	if groupsFor == nil {
		groupsFor = func(lg domain.League) string { return lg.DefaultGroup }
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: client,
		loc:        providers.ResolveTimezone(cfg.Timezone),
		groupsFor:  groupsFor,
	}
}

// FetchScoreboard retrieves one league's scoreboard for a YYYYMMDD date.
func (c *Client) FetchScoreboard(ctx context.Context, league domain.League, date string, tz string) (domain.LeagueGames, error) {
	loc := c.loc
	if tz != "" {
		if override := providers.ResolveTimezone(tz); override != nil {
			loc = override
		}
	}

	req, err := c.buildRequest(ctx, league, date, loc)
	if err != nil {
		return domain.LeagueGames{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.LeagueGames{}, fmt.Errorf("espn: fetch %s scoreboard: %w", league.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return domain.LeagueGames{}, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.LeagueGames{}, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.LeagueGames{}, fmt.Errorf("espn: decode %s scoreboard: %w", league.Key, err)
	}

	return mapScoreboard(payload, league, loc), nil
}

func (c *Client) buildRequest(ctx context.Context, league domain.League, date string, loc *time.Location) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s/%s/scoreboard", c.baseURL, league.SportPath, league.LeaguePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", date)
	q.Set("limit", eventLimit)
	if loc != nil {
		q.Set("tz", loc.String())
	}
	if groups := c.groupsFor(league); groups != "" {
		q.Set("groups", groups)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
