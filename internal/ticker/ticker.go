package ticker

import (
	"context"
	"image"
	"image/draw"
	"log/slog"
	"sync"
	"time"

	"github.com/ledmatrix/sportsticker/internal/config"
	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/filter"
	"github.com/ledmatrix/sportsticker/internal/logging"
	"github.com/ledmatrix/sportsticker/internal/metrics"
	"github.com/ledmatrix/sportsticker/internal/render"
	"github.com/ledmatrix/sportsticker/internal/store"
)

// ContentType identifies the ticker to hosts that multiplex several board
// contents; this one always carries multiple leagues.
const ContentType = "multi"

// Source provides the latest published snapshot and a monotonically
// increasing version for change detection.
type Source interface {
	Current() (domain.Snapshot, uint64, bool)
	Version() uint64
}

var _ Source = (*store.SnapshotStore)(nil)

// Ticker owns the presentation loop: it rebuilds the pixel strip when a new
// snapshot lands and advances the scroll offset once per tick. All mutable
// state lives behind one mutex; Frame and Tick may be called from different
// goroutines.
type Ticker struct {
	opts     config.Options
	renderer *render.Renderer
	source   Source
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu           sync.Mutex
	strip        *render.Strip
	scroll       ScrollState
	blocks       []*render.Block
	builtVersion uint64
	built        bool
	snapshotDate string
	leagueCounts map[string]map[string]int
	lastRebuild  time.Time

	segIndex int
	segTicks int
	segStrip *render.Strip
}

// New constructs a Ticker. The first Tick performs the initial build once the
// source has published a snapshot.
func New(opts config.Options, renderer *render.Renderer, source Source, logger *slog.Logger, recorder *metrics.Recorder) *Ticker {
	return &Ticker{
		opts:     opts,
		renderer: renderer,
		source:   source,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Tick advances the ticker by one step. When the source has published a new
// snapshot since the last build, the strip is rebuilt first and the scroll
// offset restarts at zero; the new content then begins scrolling in from the
// right edge on subsequent ticks.
func (t *Ticker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if version := t.source.Version(); !t.built || version != t.builtVersion {
		t.rebuildLocked()
	}

	if t.strip == nil {
		return
	}

	if t.opts.DisplayMode == config.ModeFixedSegment {
		t.advanceSegmentLocked()
		return
	}
	t.scroll.Advance()
}

// Frame renders the current viewport. Callers own the returned image.
func (t *Ticker) Frame() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.RecordFrame()
	if t.strip == nil {
		return t.renderer.EmptyFrame()
	}
	if t.opts.DisplayMode == config.ModeFixedSegment {
		return t.renderer.Viewport(t.segmentStripLocked(), 0)
	}
	return t.renderer.Viewport(t.strip, t.scroll.Offset)
}

// Render draws the current viewport into dst, which hosts size to the
// display geometry.
func (t *Ticker) Render(dst *image.RGBA) {
	frame := t.Frame()
	draw.Draw(dst, dst.Bounds(), frame, image.Point{}, draw.Src)
}

// ApplyOptions swaps the presentation options and the renderer built from
// them, then rebuilds from the current snapshot so the change shows on the
// next frame.
func (t *Ticker) ApplyOptions(opts config.Options, renderer *render.Renderer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opts = opts
	t.renderer = renderer
	t.built = false
	t.rebuildLocked()
}

// StripImage returns the full composed strip, or nil before the first build
// or when no snapshot produced content.
func (t *Ticker) StripImage() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.strip == nil {
		return nil
	}
	return t.strip.Image
}

// ContentType reports what kind of content this ticker carries.
func (t *Ticker) ContentType() string { return ContentType }

// DisplayMode reports the active presentation mode.
func (t *Ticker) DisplayMode() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.DisplayMode
}

// IsCycleComplete always reports false: the scroll loops continuously and
// has no natural end for a host to rotate on.
func (t *Ticker) IsCycleComplete() bool { return false }

// SupportsDynamicDuration reports false: display time is not a function of
// content length.
func (t *Ticker) SupportsDynamicDuration() bool { return false }

// Info summarizes the ticker's current presentation state for diagnostics.
type Info struct {
	ContentType  string                    `json:"content_type"`
	DisplayMode  string                    `json:"display_mode"`
	SnapshotDate string                    `json:"snapshot_date,omitempty"`
	Built        bool                      `json:"built"`
	StripWidth   int                       `json:"strip_width_px"`
	LoopWidth    int                       `json:"loop_width_px"`
	Offset       int                       `json:"offset_px"`
	Blocks       int                       `json:"blocks"`
	Leagues      map[string]map[string]int `json:"leagues,omitempty"`
	LastRebuild  time.Time                 `json:"last_rebuild,omitempty"`
}

// Describe returns the current Info.
func (t *Ticker) Describe() Info {
	t.mu.Lock()
	defer t.mu.Unlock()

	info := Info{
		ContentType:  ContentType,
		DisplayMode:  t.opts.DisplayMode,
		SnapshotDate: t.snapshotDate,
		Built:        t.built,
		Offset:       t.scroll.Offset,
		LoopWidth:    t.scroll.LoopWidth(),
		Leagues:      t.leagueCounts,
		LastRebuild:  t.lastRebuild,
	}
	if t.strip != nil {
		info.StripWidth = t.strip.Width
		info.Blocks = t.strip.BlockCount
	}
	return info
}

// Run ticks until the context is cancelled. Frame delay comes from options.
func (t *Ticker) Run(ctx context.Context) {
	delay := time.Duration(t.opts.FrameDelayMS) * time.Millisecond
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// rebuildLocked rebuilds blocks and the strip from the source's current
// snapshot. Caller holds t.mu.
func (t *Ticker) rebuildLocked() {
	snap, version, ok := t.source.Current()
	if !ok {
		return
	}

	start := t.now()
	counts := make(map[string]map[string]int)

	var blocks []*render.Block
	for _, league := range t.orderedLeagues() {
		data := snap.Leagues[league.Key]
		games := data.Games
		if league.NCAA {
			games = t.applyFilter(games, league)
		}

		sections := BuildSections(games, t.opts.MaxGamesPerSection)
		counts[league.Key] = sections.Counts()

		block := t.renderer.BuildBlock(league, sections.Live, sections.Upcoming, sections.Final, data.LogoURL)
		if block != nil {
			blocks = append(blocks, block)
		}
	}

	if len(blocks) == 0 {
		t.strip = nil
		t.blocks = nil
		t.scroll = ScrollState{}
	} else {
		t.strip = t.renderer.Compose(blocks)
		t.blocks = blocks
		t.scroll = NewScrollState(t.strip.Width, t.renderer.DisplayWidth(), t.opts.ScrollSpeedPx)
	}

	t.segIndex = 0
	t.segTicks = 0
	t.segStrip = nil
	t.builtVersion = version
	t.built = true
	t.snapshotDate = snap.Date
	t.leagueCounts = counts
	t.lastRebuild = t.now()

	elapsed := t.lastRebuild.Sub(start)
	width := 0
	if t.strip != nil {
		width = t.strip.Width
	}
	t.metrics.RecordRebuild(width, len(blocks), elapsed)
	logging.Info(t.logger, "strip rebuilt",
		logging.FieldDate, snap.Date,
		logging.FieldWidth, width,
		logging.FieldCount, len(blocks),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

// orderedLeagues resolves the configured order: explicitly ordered enabled
// leagues first, then any remaining enabled leagues in table order. Unknown
// keys in the configured order are skipped.
func (t *Ticker) orderedLeagues() []domain.League {
	seen := make(map[string]bool, len(domain.Leagues))
	var ordered []domain.League

	for _, key := range t.opts.LeagueOrder {
		if seen[key] || !t.opts.Enabled(key) {
			continue
		}
		league, ok := domain.LeagueByKey(key)
		if !ok {
			continue
		}
		seen[key] = true
		ordered = append(ordered, league)
	}
	for _, league := range domain.Leagues {
		if seen[league.Key] || !t.opts.Enabled(league.Key) {
			continue
		}
		seen[league.Key] = true
		ordered = append(ordered, league)
	}
	return ordered
}

func (t *Ticker) applyFilter(games []domain.GameRecord, league domain.League) []domain.GameRecord {
	cfg := t.opts.FilterConfig(league.Kind)
	kept := games[:0:0]
	for _, g := range games {
		if filter.Include(g, league, cfg) {
			kept = append(kept, g)
		}
	}
	return kept
}

// advanceSegmentLocked rotates through blocks, dwelling FixedSegTicks ticks
// on each. Caller holds t.mu.
func (t *Ticker) advanceSegmentLocked() {
	if len(t.blocks) == 0 {
		return
	}
	t.segTicks++
	if t.segTicks >= t.opts.FixedSegTicks {
		t.segTicks = 0
		t.segIndex = (t.segIndex + 1) % len(t.blocks)
		t.segStrip = nil
	}
}

// segmentStripLocked composes just the current block for fixed segment mode,
// caching it until the segment rotates. Caller holds t.mu.
func (t *Ticker) segmentStripLocked() *render.Strip {
	if len(t.blocks) == 0 {
		return t.strip
	}
	if t.segStrip == nil {
		t.segStrip = t.renderer.Compose([]*render.Block{t.blocks[t.segIndex]})
	}
	return t.segStrip
}
