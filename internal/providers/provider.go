package providers

import (
	"context"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// ScoreboardProvider fetches one league's scoreboard for a date.
// The date is a YYYYMMDD token in the provider's configured timezone; tz, if
// non-empty, overrides that timezone for this call. Implementations return
// normalized records and skip malformed events rather than failing the
// whole league.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, league domain.League, date string, tz string) (domain.LeagueGames, error)
}
