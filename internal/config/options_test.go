package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.NoGamesPlaceholder() {
		t.Fatal("placeholder should default on")
	}
	if !opts.SectionLabels() {
		t.Fatal("section labels should default on")
	}
	if opts.MaxGamesPerSection != 8 {
		t.Fatalf("unexpected max games %d", opts.MaxGamesPerSection)
	}
	if opts.FontSize != 8 {
		t.Fatalf("unexpected font size %d", opts.FontSize)
	}
	if opts.DisplayMode != ModeScroll {
		t.Fatalf("unexpected display mode %q", opts.DisplayMode)
	}
	if opts.ScrollSpeedPx < 1 {
		t.Fatalf("scroll speed must be at least 1, got %d", opts.ScrollSpeedPx)
	}
}

func TestLoadOptionsPartialFile(t *testing.T) {
	raw := `{
	  "leagueOrder": ["nba", "nfl"],
	  "leagueEnabled": {"mlb": false},
	  "showNoGamesToday": false,
	  "maxGamesPerSection": 3,
	  "fontSize": 10,
	  "textColor": [255, 0, 0],
	  "headerColor": "0,255,0",
	  "ncaafTeams": ["UGA"],
	  "displayMode": "fixed_segment"
	}`
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("load options: %v", err)
	}

	if opts.NoGamesPlaceholder() {
		t.Fatal("expected placeholder disabled")
	}
	if opts.Enabled("mlb") {
		t.Fatal("expected mlb disabled")
	}
	if !opts.Enabled("nhl") {
		t.Fatal("leagues absent from the toggle map stay enabled")
	}
	if opts.MaxGamesPerSection != 3 {
		t.Fatalf("unexpected max games %d", opts.MaxGamesPerSection)
	}
	if opts.TextColor != (RGB{255, 0, 0}) {
		t.Fatalf("unexpected text color %v", opts.TextColor)
	}
	if opts.HeaderColor != (RGB{0, 255, 0}) {
		t.Fatalf("unexpected header color %v", opts.HeaderColor)
	}
	if opts.DisplayMode != ModeFixedSegment {
		t.Fatalf("unexpected display mode %q", opts.DisplayMode)
	}
	// Unnamed fields still get defaults.
	if opts.SegmentSpacingPx != 12 {
		t.Fatalf("unexpected segment spacing %d", opts.SegmentSpacingPx)
	}
	if !opts.SectionLabels() {
		t.Fatal("section labels default on when unnamed")
	}
}

func TestLoadOptionsEmptyPathYieldsDefaults(t *testing.T) {
	opts, err := LoadOptions("")
	if err != nil {
		t.Fatalf("load options: %v", err)
	}
	if opts.MaxGamesPerSection != 8 {
		t.Fatalf("expected defaults, got %+v", opts)
	}
}

func TestLoadOptionsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write options: %v", err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	opts := Options{
		FontSize:           2,
		MaxGamesPerSection: -1,
		HeaderLogoSizePx:   4,
		ScrollSpeedPx:      -3,
		FrameDelayMS:       1,
		DisplayMode:        "bogus",
		FixedSegTicks:      0,
	}
	opts.Normalize()

	if opts.FontSize != 8 {
		t.Fatalf("unexpected font size %d", opts.FontSize)
	}
	if opts.MaxGamesPerSection != 8 {
		t.Fatalf("unexpected max games %d", opts.MaxGamesPerSection)
	}
	if opts.HeaderLogoSizePx != 16 {
		t.Fatalf("unexpected header logo size %d", opts.HeaderLogoSizePx)
	}
	if opts.ScrollSpeedPx != 1 {
		t.Fatalf("unexpected scroll speed %d", opts.ScrollSpeedPx)
	}
	if opts.FrameDelayMS != 20 {
		t.Fatalf("unexpected frame delay %d", opts.FrameDelayMS)
	}
	if opts.DisplayMode != ModeScroll {
		t.Fatalf("unexpected display mode %q", opts.DisplayMode)
	}
	if opts.FixedSegTicks != 150 {
		t.Fatalf("unexpected segment ticks %d", opts.FixedSegTicks)
	}
}

func TestFilterConfigPerKind(t *testing.T) {
	opts := DefaultOptions()
	opts.NcaafTeams = []string{"UGA"}
	opts.NcaafConferences = []string{"SEC"}
	opts.NcaamTeams = []string{"DUKE"}
	opts.NcaaTop25Only = true

	football := opts.FilterConfig(domain.NCAAFootball)
	if len(football.Teams) != 1 || football.Teams[0] != "UGA" {
		t.Fatalf("unexpected football teams %v", football.Teams)
	}
	if len(football.Conferences) != 1 {
		t.Fatalf("unexpected football conferences %v", football.Conferences)
	}
	if !football.Top25Only {
		t.Fatal("top25 flag must carry through")
	}

	basketball := opts.FilterConfig(domain.NCAABasketball)
	if len(basketball.Teams) != 1 || basketball.Teams[0] != "DUKE" {
		t.Fatalf("unexpected basketball teams %v", basketball.Teams)
	}
	if len(basketball.Conferences) != 0 {
		t.Fatalf("basketball must not inherit football conferences, got %v", basketball.Conferences)
	}
}
