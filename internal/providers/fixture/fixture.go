package fixture

import (
	"context"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/timeutil"
)

// Provider returns a static scoreboard useful for local runs and tests: one
// league with an upcoming game, a live game, and a final.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchScoreboard returns a deterministic set of example games for any
// league, anchored to the requested date.
func (p *Provider) FetchScoreboard(ctx context.Context, league domain.League, date string, tz string) (domain.LeagueGames, error) {
	_ = ctx
	_ = tz

	anchor := p.now().Truncate(time.Hour)
	if date != "" {
		if parsed, err := time.Parse(timeutil.ScoreboardDateLayout, date); err == nil {
			anchor = parsed.Add(18 * time.Hour)
		}
	}

	games := []domain.GameRecord{
		{
			ID:        "fixture-" + league.Key + "-1",
			LeagueKey: league.Key,
			State:     domain.StateUpcoming,
			Start:     anchor.Add(2 * time.Hour),
			Away:      domain.TeamSide{Abbr: "AAA", Rank: 3},
			Home:      domain.TeamSide{Abbr: "BBB"},
			Spread:    domain.Spread{Favored: "AAA", Line: -3.5, Known: true},
		},
		{
			ID:        "fixture-" + league.Key + "-2",
			LeagueKey: league.Key,
			State:     domain.StateLive,
			Start:     anchor.Add(-time.Hour),
			Away:      domain.TeamSide{Abbr: "CCC"},
			Home:      domain.TeamSide{Abbr: "DDD"},
			AwayScore: 14,
			HomeScore: 10,
			Period:    2,
			Clock:     "4:12",
		},
		{
			ID:        "fixture-" + league.Key + "-3",
			LeagueKey: league.Key,
			State:     domain.StateFinal,
			Start:     anchor.Add(-5 * time.Hour),
			Away:      domain.TeamSide{Abbr: "EEE"},
			Home:      domain.TeamSide{Abbr: "FFF"},
			AwayScore: 27,
			HomeScore: 24,
		},
	}

	return domain.LeagueGames{Games: games}, nil
}
