package format

import (
	"testing"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

func league(key string) domain.League {
	lg, ok := domain.LeagueByKey(key)
	if !ok {
		panic("unknown league " + key)
	}
	return lg
}

func TestCardUpcoming(t *testing.T) {
	start := time.Date(2025, 11, 8, 19, 30, 0, 0, time.UTC)
	g := domain.GameRecord{
		State:  domain.StateUpcoming,
		Start:  start,
		Away:   domain.TeamSide{Abbr: "UGA", Rank: 3},
		Home:   domain.TeamSide{Abbr: "BAMA"},
		Spread: domain.Spread{Favored: "BAMA", Line: -3.5, Known: true},
	}

	card := Card(g, league("ncaaf"))
	if card.AwayName != "#3 UGA" {
		t.Fatalf("expected rank prefix on upcoming card, got %q", card.AwayName)
	}
	if card.HomeName != "BAMA" {
		t.Fatalf("unranked team must not carry a prefix, got %q", card.HomeName)
	}
	if card.InfoTop != "7:30P" {
		t.Fatalf("expected compact time, got %q", card.InfoTop)
	}
	if card.InfoBottom != "BAMA -3.5" {
		t.Fatalf("expected compact spread, got %q", card.InfoBottom)
	}
}

func TestCardLiveDropsRankPrefix(t *testing.T) {
	g := domain.GameRecord{
		State:     domain.StateLive,
		Away:      domain.TeamSide{Abbr: "UGA", Rank: 3},
		Home:      domain.TeamSide{Abbr: "BAMA", Rank: 1},
		AwayScore: 14,
		HomeScore: 7,
		Period:    2,
		Clock:     "4:12",
	}

	card := Card(g, league("ncaaf"))
	if card.AwayName != "UGA" || card.HomeName != "BAMA" {
		t.Fatalf("live cards must not carry rank prefixes: %q / %q", card.AwayName, card.HomeName)
	}
	if card.InfoTop != "14 2ND" {
		t.Fatalf("unexpected live top line %q", card.InfoTop)
	}
	if card.InfoBottom != " 7 4:12" {
		t.Fatalf("score column must be fixed width, got %q", card.InfoBottom)
	}
}

func TestCardFinal(t *testing.T) {
	g := domain.GameRecord{
		State:     domain.StateFinal,
		Away:      domain.TeamSide{Abbr: "KC"},
		Home:      domain.TeamSide{Abbr: "BUF"},
		AwayScore: 27,
		HomeScore: 24,
	}

	card := Card(g, league("nfl"))
	if card.InfoTop != "27 FINAL" {
		t.Fatalf("expected FINAL label on top line, got %q", card.InfoTop)
	}
	if card.InfoBottom != "24" {
		t.Fatalf("final bottom line is the bare score, got %q", card.InfoBottom)
	}
}

func TestCompactTime(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         string
	}{
		{19, 30, "7:30P"},
		{12, 0, "12:00P"},
		{0, 5, "12:05A"},
		{9, 15, "9:15A"},
	}
	for _, tc := range cases {
		at := time.Date(2025, 11, 8, tc.hour, tc.minute, 0, 0, time.UTC)
		if got := CompactTime(at); got != tc.want {
			t.Fatalf("CompactTime(%02d:%02d) = %q, want %q", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestBodyFontSize(t *testing.T) {
	if got := BodyFontSize(8); got != 6 {
		t.Fatalf("BodyFontSize(8) = %d, want 6", got)
	}
	if got := BodyFontSize(5); got != 4 {
		t.Fatalf("BodyFontSize(5) = %d, want floor of 4", got)
	}
}
