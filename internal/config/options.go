package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// Display modes supported by the ticker presentation.
const (
	ModeScroll       = "scroll"
	ModeFixedSegment = "fixed_segment"
)

// Options is the web-UI-shaped configuration consumed by the ticker
// pipeline. Zero values are replaced by defaults in Normalize, so a partial
// options file only overrides what it names.
type Options struct {
	LeagueOrder      []string        `json:"leagueOrder"`
	LeagueEnabled    map[string]bool `json:"leagueEnabled"`
	ShowNoGamesToday *bool           `json:"showNoGamesToday"`

	MaxGamesPerSection int  `json:"maxGamesPerSection"`
	ShowSectionLabels  *bool `json:"showSectionLabels"`

	NcaaTop25Only                   bool     `json:"ncaaTop25Only"`
	NcaaIncludeTop25WithConferences bool     `json:"ncaaIncludeTop25WithConferences"`
	NcaafConferences                []string `json:"ncaafConferences"`
	NcaamConferences                []string `json:"ncaamConferences"`
	NcaafTeams                      []string `json:"ncaafTeams"`
	NcaamTeams                      []string `json:"ncaamTeams"`

	FontSize int    `json:"fontSize"`
	FontPath string `json:"fontPath"`

	TextColor     RGB `json:"textColor"`
	HeaderColor   RGB `json:"headerColor"`
	LiveColor     RGB `json:"liveColor"`
	UpcomingColor RGB `json:"upcomingColor"`
	SpreadColor   RGB `json:"spreadColor"`
	FinalColor    RGB `json:"finalColor"`

	SegmentSpacingPx int     `json:"segmentSpacingPx"`
	SectionSpacingPx int     `json:"sectionSpacingPx"`
	CardPaddingPx    int     `json:"cardPaddingPx"`
	LogoGapPx        int     `json:"logoGapPx"`
	HeaderLogoSizePx int     `json:"headerLogoSizePx"`
	LeagueLogoScale  float64 `json:"leagueLogoScale"`

	CustomLeagueLogos map[string]string `json:"customLeagueLogos"`

	ScrollSpeedPx  int    `json:"scrollSpeedPx"`
	FrameDelayMS   int    `json:"frameDelayMs"`
	DisplayMode    string `json:"displayMode"`
	FixedSegTicks  int    `json:"fixedSegmentTicks"`
}

// DefaultOptions returns the options the ticker runs with when no file is
// configured. Defaults mirror a 128x32 panel.
func DefaultOptions() Options {
	opts := Options{}
	opts.Normalize()
	return opts
}

// LoadOptions reads an options JSON file and applies defaults and bounds.
// An empty path yields defaults.
func LoadOptions(path string) (Options, error) {
	if path == "" {
		return DefaultOptions(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}

	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options file: %w", err)
	}
	opts.Normalize()
	return opts, nil
}

// Normalize fills defaults and clamps values into their valid ranges.
func (o *Options) Normalize() {
	if o.ShowNoGamesToday == nil {
		o.ShowNoGamesToday = boolPtr(true)
	}
	if o.ShowSectionLabels == nil {
		o.ShowSectionLabels = boolPtr(true)
	}
	if o.MaxGamesPerSection < 1 {
		o.MaxGamesPerSection = 8
	}
	if o.FontSize < 5 {
		o.FontSize = 8
	}
	if o.TextColor.IsZero() {
		o.TextColor = RGB{255, 255, 255}
	}
	if o.HeaderColor.IsZero() {
		o.HeaderColor = RGB{255, 255, 255}
	}
	if o.LiveColor.IsZero() {
		o.LiveColor = RGB{0, 255, 120}
	}
	if o.UpcomingColor.IsZero() {
		o.UpcomingColor = RGB{255, 215, 0}
	}
	if o.SpreadColor.IsZero() {
		o.SpreadColor = RGB{120, 200, 255}
	}
	if o.FinalColor.IsZero() {
		o.FinalColor = RGB{180, 180, 180}
	}
	if o.SegmentSpacingPx <= 0 {
		o.SegmentSpacingPx = 12
	}
	if o.SectionSpacingPx <= 0 {
		o.SectionSpacingPx = 20
	}
	if o.CardPaddingPx <= 0 {
		o.CardPaddingPx = 4
	}
	if o.LogoGapPx <= 0 {
		o.LogoGapPx = 3
	}
	if o.HeaderLogoSizePx < 10 {
		o.HeaderLogoSizePx = 16
	}
	if o.LeagueLogoScale <= 0 {
		o.LeagueLogoScale = 1.0
	}
	if o.ScrollSpeedPx < 1 {
		o.ScrollSpeedPx = 1
	}
	if o.FrameDelayMS < 4 {
		o.FrameDelayMS = 20
	}
	if o.DisplayMode != ModeFixedSegment {
		o.DisplayMode = ModeScroll
	}
	if o.FixedSegTicks < 1 {
		o.FixedSegTicks = 150
	}
}

// Enabled reports whether a league participates in the ticker. Leagues not
// named in the toggle map are enabled.
func (o Options) Enabled(leagueKey string) bool {
	if o.LeagueEnabled == nil {
		return true
	}
	enabled, ok := o.LeagueEnabled[leagueKey]
	if !ok {
		return true
	}
	return enabled
}

// NoGamesPlaceholder reports whether empty leagues render a placeholder
// block instead of being omitted.
func (o Options) NoGamesPlaceholder() bool {
	return o.ShowNoGamesToday == nil || *o.ShowNoGamesToday
}

// SectionLabels reports whether LIVE/UPCOMING/FINAL labels are rendered.
func (o Options) SectionLabels() bool {
	return o.ShowSectionLabels == nil || *o.ShowSectionLabels
}

// FilterConfig assembles the NCAA filter inputs for the given kind.
func (o Options) FilterConfig(kind domain.NCAAKind) domain.FilterConfig {
	cfg := domain.FilterConfig{
		Top25Only:                  o.NcaaTop25Only,
		CombineTop25WithConference: o.NcaaIncludeTop25WithConferences,
	}
	switch kind {
	case domain.NCAAFootball:
		cfg.Teams = o.NcaafTeams
		cfg.Conferences = o.NcaafConferences
	case domain.NCAABasketball:
		cfg.Teams = o.NcaamTeams
		cfg.Conferences = o.NcaamConferences
	}
	return cfg
}

func boolPtr(v bool) *bool { return &v }
