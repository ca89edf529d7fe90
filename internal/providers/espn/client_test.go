package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/providers"
)

func mustLeague(t *testing.T, key string) domain.League {
	t.Helper()
	league, ok := domain.LeagueByKey(key)
	if !ok {
		t.Fatalf("unknown league %q", key)
	}
	return league
}

const scoreboardBody = `{
  "leagues": [{"logos": [{"href": "https://cdn/league.png"}]}],
  "events": [
    {
      "id": "401",
      "date": "2025-11-08T18:00Z",
      "status": {"period": 0, "displayClock": "0:00", "type": {"state": "pre"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "away", "score": "", "curatedRank": {"current": 3},
           "team": {"abbreviation": "UGA", "conferenceId": "8"}},
          {"homeAway": "home", "score": "",
           "team": {"abbreviation": "BAMA", "conference": {"id": "8", "shortName": "SEC"}}}
        ],
        "odds": [{"details": "BAMA -3.5", "spread": -3.5}]
      }]
    },
    {
      "id": "402",
      "date": "2025-11-08T23:30:00Z",
      "status": {"period": 2, "displayClock": "4:12", "type": {"state": "in"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "away", "score": "14", "team": {"abbreviation": "CCC"}},
          {"homeAway": "home", "score": "10", "team": {"abbreviation": "DDD"}}
        ]
      }]
    },
    {
      "id": "403",
      "date": "not-a-time",
      "status": {"type": {"state": "pre"}},
      "competitions": [{
        "competitors": [
          {"homeAway": "away", "team": {"abbreviation": "XXX"}},
          {"homeAway": "home", "team": {"abbreviation": "YYY"}}
        ]
      }]
    }
  ]
}`

func TestFetchScoreboardMapsEvents(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"path":   r.URL.Path,
			"dates":  r.URL.Query().Get("dates"),
			"limit":  r.URL.Query().Get("limit"),
			"groups": r.URL.Query().Get("groups"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardBody))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timezone: "UTC"})
	result, err := client.FetchScoreboard(context.Background(), mustLeague(t, "ncaaf"), "20251108", "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotQuery["path"] != "/football/college-football/scoreboard" {
		t.Fatalf("unexpected path %q", gotQuery["path"])
	}
	if gotQuery["dates"] != "20251108" {
		t.Fatalf("unexpected dates param %q", gotQuery["dates"])
	}
	if gotQuery["limit"] != "500" {
		t.Fatalf("unexpected limit param %q", gotQuery["limit"])
	}
	if gotQuery["groups"] != "80" {
		t.Fatalf("unexpected groups param %q", gotQuery["groups"])
	}

	if result.LogoURL != "https://cdn/league.png" {
		t.Fatalf("unexpected league logo %q", result.LogoURL)
	}
	// The malformed third event is dropped.
	if len(result.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(result.Games))
	}

	upcoming := result.Games[0]
	if upcoming.State != domain.StateUpcoming {
		t.Fatalf("unexpected state %q", upcoming.State)
	}
	if upcoming.Away.Abbr != "UGA" || upcoming.Away.Rank != 3 {
		t.Fatalf("unexpected away side %+v", upcoming.Away)
	}
	if upcoming.Away.ConferenceID != 8 {
		t.Fatalf("expected away conference id from conferenceId field, got %d", upcoming.Away.ConferenceID)
	}
	if upcoming.Home.ConferenceID != 8 || upcoming.Home.ConferenceName != "SEC" {
		t.Fatalf("unexpected home conference %+v", upcoming.Home)
	}
	if !upcoming.Spread.Known || upcoming.Spread.Favored != "BAMA" || upcoming.Spread.Line != -3.5 {
		t.Fatalf("unexpected spread %+v", upcoming.Spread)
	}
	if want := time.Date(2025, 11, 8, 18, 0, 0, 0, time.UTC); !upcoming.Start.Equal(want) {
		t.Fatalf("unexpected start %v", upcoming.Start)
	}

	live := result.Games[1]
	if live.State != domain.StateLive {
		t.Fatalf("unexpected state %q", live.State)
	}
	if live.AwayScore != 14 || live.HomeScore != 10 {
		t.Fatalf("unexpected scores %d-%d", live.AwayScore, live.HomeScore)
	}
	if live.Period != 2 || live.Clock != "4:12" {
		t.Fatalf("unexpected progress %d %q", live.Period, live.Clock)
	}
}

func TestFetchScoreboardSoccerMinute(t *testing.T) {
	body := `{"events": [{
      "id": "500",
      "date": "2025-11-08T20:00:00Z",
      "status": {"period": 2, "displayClock": "90'+4'", "type": {"state": "in"}},
      "competitions": [{"competitors": [
        {"homeAway": "away", "score": "1", "team": {"abbreviation": "ATL"}},
        {"homeAway": "home", "score": "1", "team": {"abbreviation": "MIA"}}
      ]}]
    }]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result, err := client.FetchScoreboard(context.Background(), mustLeague(t, "mls"), "20251108", "")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	game := result.Games[0]
	if game.Minute != "90'+4'" {
		t.Fatalf("expected minute carried verbatim, got %q", game.Minute)
	}
	if game.Clock != "" {
		t.Fatalf("soccer games must not set Clock, got %q", game.Clock)
	}
}

func TestFetchScoreboardRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchScoreboard(context.Background(), mustLeague(t, "nba"), "20251108", "")
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected retry-after %v", rl.RetryAfter)
	}
}

func TestFetchScoreboardUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.FetchScoreboard(context.Background(), mustLeague(t, "nba"), "20251108", ""); err == nil {
		t.Fatal("expected error for 502")
	}
}

func TestFetchScoreboardGroupsOverride(t *testing.T) {
	var groups string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groups = r.URL.Query().Get("groups")
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:   srv.URL,
		GroupsFor: func(domain.League) string { return "8" },
	})
	if _, err := client.FetchScoreboard(context.Background(), mustLeague(t, "ncaaf"), "20251108", ""); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if groups != "8" {
		t.Fatalf("expected groups override, got %q", groups)
	}
}
