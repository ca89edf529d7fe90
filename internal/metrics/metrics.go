package metrics

import (
	"sync"
	"time"
)

type leagueStats struct {
	fetches         int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastFetchTime   time.Duration
}

// Recorder captures lightweight, in-memory metrics about fetches, rebuilds,
// and frames, mirroring everything into OpenTelemetry instruments when
// telemetry is enabled. A nil Recorder is a no-op.
type Recorder struct {
	mu     sync.Mutex
	leagues map[string]*leagueStats

	refreshCycles int
	refreshErrors int
	rebuilds      int
	stripWidth    int
	frames        int

	otel *otelInstruments
}

// NewRecorder returns a recorder with no telemetry backend.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		leagues: make(map[string]*leagueStats),
		otel:    otel,
	}
}

// RecordFetch counts one league scoreboard fetch.
func (r *Recorder) RecordFetch(league string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureLeague(league)
	stats.fetches++
	stats.lastFetchTime = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(league, duration, err)
	}
}

// RecordRateLimit tracks a rate-limited fetch and the advertised Retry-After.
func (r *Recorder) RecordRateLimit(league string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureLeague(league)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(league, retryAfter)
	}
}

// RecordRefreshCycle counts one full poller cycle across all leagues.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, games int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	if err != nil {
		r.refreshErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshCycle(duration, games, err)
	}
}

// RecordRebuild counts one strip recomposition and its resulting width.
func (r *Recorder) RecordRebuild(stripWidth, blocks int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.rebuilds++
	r.stripWidth = stripWidth
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRebuild(stripWidth, blocks, duration)
	}
}

// RecordFrame counts one rendered viewport frame.
func (r *Recorder) RecordFrame() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.frames++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFrame()
	}
}

// Stats is a point-in-time copy of the recorder's counters.
type Stats struct {
	RefreshCycles int
	RefreshErrors int
	Rebuilds      int
	StripWidth    int
	Frames        int
}

// Snapshot returns a copy of the global counters.
func (r *Recorder) Snapshot() Stats {
	if r == nil {
		return Stats{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		RefreshCycles: r.refreshCycles,
		RefreshErrors: r.refreshErrors,
		Rebuilds:      r.rebuilds,
		StripWidth:    r.stripWidth,
		Frames:        r.frames,
	}
}

// LeagueFetches returns the total fetches recorded for a league.
func (r *Recorder) LeagueFetches(league string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLeague(league).fetches
}

// LeagueErrors returns the failed fetches recorded for a league.
func (r *Recorder) LeagueErrors(league string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLeague(league).errors
}

// RateLimitHits returns the rate-limit events seen for a league.
func (r *Recorder) RateLimitHits(league string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureLeague(league).rateLimitHits
}

func (r *Recorder) ensureLeague(league string) *leagueStats {
	stats, ok := r.leagues[league]
	if !ok {
		stats = &leagueStats{}
		r.leagues[league] = stats
	}
	return stats
}
