package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/logging"
	"github.com/ledmatrix/sportsticker/internal/metrics"
	"github.com/ledmatrix/sportsticker/internal/providers"
	"github.com/ledmatrix/sportsticker/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// Sink receives completed snapshots. Publishing must be atomic: the ticker
// only ever sees whole snapshots.
type Sink interface {
	Publish(domain.Snapshot)
}

// Poller fetches every enabled league's scoreboard on an interval and
// publishes one immutable snapshot per cycle.
type Poller struct {
	provider providers.ScoreboardProvider
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	loc      *time.Location
	enabled  func(leagueKey string) bool
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. enabled may be nil to refresh
// every league in the table; loc nil means UTC.
func New(provider providers.ScoreboardProvider, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, loc *time.Location, enabled func(string) bool) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if loc == nil {
		loc = time.UTC
	}
	if enabled == nil {
		enabled = func(string) bool { return true }
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		loc:      loc,
		enabled:  enabled,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm the ticker on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	today := start.In(p.loc)
	dateToken := timeutil.FormatScoreboardDate(today)

	snap := domain.Snapshot{
		Date:      timeutil.FormatDate(today),
		FetchedAt: start,
		Leagues:   make(map[string]domain.LeagueGames),
	}

	attempted, failed := 0, 0
	var lastErr error
	for _, league := range domain.Leagues {
		if !p.enabled(league.Key) {
			continue
		}
		attempted++

		fetchStart := p.now()
		result, err := p.provider.FetchScoreboard(ctx, league, dateToken, "")
		p.metrics.RecordFetch(league.Key, p.now().Sub(fetchStart), err)
		if err != nil {
			if rl, ok := providers.AsRateLimitError(err); ok {
				p.metrics.RecordRateLimit(league.Key, rl.RetryAfter)
			}
			logging.Error(p.logger, "scoreboard fetch failed", err, logging.FieldLeague, league.Key)
			failed++
			lastErr = err
			continue
		}

		result.Games = filterToDate(result.Games, today, p.loc)
		snap.Leagues[league.Key] = result
	}

	cycleErr := lastErr
	if failed < attempted {
		cycleErr = nil
	}
	p.metrics.RecordRefreshCycle(p.now().Sub(start), snap.GameCount(), cycleErr)

	if attempted > 0 && failed == attempted {
		// Keep the previous snapshot on a total failure so the ticker does
		// not blank out on a transient outage.
		p.recordFailure(lastErr, start)
		return
	}

	if p.sink != nil {
		p.sink.Publish(snap)
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "scoreboards refreshed",
		logging.FieldDate, snap.Date,
		logging.FieldCount, snap.GameCount(),
		logging.FieldDurationMS, p.now().Sub(start).Milliseconds(),
	)
}

// filterToDate drops games not on today's calendar date in loc. Records
// whose start time failed to convert never got this far; normalization
// already excluded them (fail closed).
func filterToDate(games []domain.GameRecord, today time.Time, loc *time.Location) []domain.GameRecord {
	kept := games[:0:0]
	for _, g := range games {
		if timeutil.SameDate(g.Start, today, loc) {
			kept = append(kept, g)
		}
	}
	return kept
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
