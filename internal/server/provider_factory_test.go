package server

import (
	"testing"

	"github.com/ledmatrix/sportsticker/internal/config"
	"github.com/ledmatrix/sportsticker/internal/domain"
)

func mustLeague(t *testing.T, key string) domain.League {
	t.Helper()
	league, ok := domain.LeagueByKey(key)
	if !ok {
		t.Fatalf("unknown league %q", key)
	}
	return league
}

func TestGroupsForNonNCAA(t *testing.T) {
	fn := groupsFor(config.DefaultOptions())
	if got := fn(mustLeague(t, "nba")); got != "" {
		t.Fatalf("expected empty groups for nba, got %q", got)
	}
}

func TestGroupsForDefaultGroup(t *testing.T) {
	fn := groupsFor(config.DefaultOptions())
	if got := fn(mustLeague(t, "ncaaf")); got != "80" {
		t.Fatalf("expected default football group, got %q", got)
	}
	if got := fn(mustLeague(t, "ncaam")); got != "50" {
		t.Fatalf("expected default basketball group, got %q", got)
	}
}

func TestGroupsForSingleConferenceNarrows(t *testing.T) {
	opts := config.DefaultOptions()
	opts.NcaafConferences = []string{"SEC"}
	fn := groupsFor(opts)

	got := fn(mustLeague(t, "ncaaf"))
	if got == "80" || got == "" {
		t.Fatalf("expected narrowed conference group, got %q", got)
	}
}

func TestGroupsForWideningShapesKeepDefault(t *testing.T) {
	league := mustLeague(t, "ncaaf")

	opts := config.DefaultOptions()
	opts.NcaafConferences = []string{"SEC"}
	opts.NcaaIncludeTop25WithConferences = true
	if got := groupsFor(opts)(league); got != "80" {
		t.Fatalf("top25 combine must keep default group, got %q", got)
	}

	opts = config.DefaultOptions()
	opts.NcaafConferences = []string{"SEC", "Big Ten"}
	if got := groupsFor(opts)(league); got != "80" {
		t.Fatalf("multiple conferences must keep default group, got %q", got)
	}

	opts = config.DefaultOptions()
	opts.NcaafConferences = []string{"SEC"}
	opts.NcaafTeams = []string{"UGA"}
	if got := groupsFor(opts)(league); got != "80" {
		t.Fatalf("team filter must keep default group, got %q", got)
	}
}

func TestBuildProviderFixture(t *testing.T) {
	cfg := config.Config{Provider: "fixture"}
	if provider := buildProvider(cfg, config.DefaultOptions(), nil); provider == nil {
		t.Fatal("expected provider")
	}
}
