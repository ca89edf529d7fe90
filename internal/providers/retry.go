package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/logging"
)

const (
	defaultRetryAttempts  = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a ScoreboardProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       ScoreboardProvider
	logger      *slog.Logger
	maxAttempts uint64
	initial     time.Duration
}

// NewRetryingProvider wraps the given provider with exponential-backoff
// retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner ScoreboardProvider, logger *slog.Logger, maxAttempts int, initial time.Duration) ScoreboardProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: uint64(maxAttempts),
		initial:     initial,
	}
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context, league domain.League, date string, tz string) (domain.LeagueGames, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial

	var result domain.LeagueGames
	operation := func() error {
		games, err := r.inner.FetchScoreboard(ctx, league, date, tz)
		if err != nil {
			return err
		}
		result = games
		return nil
	}
	notify := func(err error, delay time.Duration) {
		logging.Warn(r.logger, "scoreboard fetch retry",
			logging.FieldLeague, league.Key,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
	}

	wrapped := backoff.WithContext(backoff.WithMaxRetries(policy, r.maxAttempts-1), ctx)
	if err := backoff.RetryNotify(operation, wrapped, notify); err != nil {
		logging.Warn(r.logger, "scoreboard fetch failed",
			logging.FieldLeague, league.Key,
			"attempts", r.maxAttempts,
			"error", err,
		)
		return domain.LeagueGames{}, err
	}
	return result, nil
}
