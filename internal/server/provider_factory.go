package server

import (
	"log/slog"
	"strconv"

	"github.com/ledmatrix/sportsticker/internal/config"
	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/providers"
	"github.com/ledmatrix/sportsticker/internal/providers/espn"
	"github.com/ledmatrix/sportsticker/internal/providers/fixture"
)

// buildProvider selects the scoreboard provider from configuration and wraps
// it with retries. Unknown provider names fall back to espn.
func buildProvider(cfg config.Config, opts config.Options, logger *slog.Logger) providers.ScoreboardProvider {
	var inner providers.ScoreboardProvider
	switch cfg.Provider {
	case "fixture":
		inner = fixture.New()
	default:
		inner = espn.NewClient(espn.Config{
			Timezone:  cfg.Timezone,
			GroupsFor: groupsFor(opts),
		})
	}
	return providers.NewRetryingProvider(inner, logger, 0, 0)
}

// groupsFor narrows the NCAA feed query to a single conference group when
// exactly one conference is selected and nothing else widens the filter.
// Every other shape keeps the league's default group so the client-side
// filter sees the full slate.
func groupsFor(opts config.Options) func(domain.League) string {
	return func(league domain.League) string {
		if !league.NCAA {
			return ""
		}
		cfg := opts.FilterConfig(league.Kind)
		if len(cfg.Teams) > 0 || cfg.Top25Only || cfg.CombineTop25WithConference {
			return league.DefaultGroup
		}
		if len(cfg.Conferences) != 1 {
			return league.DefaultGroup
		}
		ids := domain.ConferenceIDs(league.Kind, cfg.Conferences)
		if len(ids) != 1 {
			return league.DefaultGroup
		}
		for id := range ids {
			return strconv.Itoa(id)
		}
		return league.DefaultGroup
	}
}
