package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-11-08")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if FormatDate(parsed) != "2025-11-08" {
		t.Fatalf("round trip failed: %q", FormatDate(parsed))
	}
	if FormatScoreboardDate(parsed) != "20251108" {
		t.Fatalf("unexpected scoreboard date %q", FormatScoreboardDate(parsed))
	}
	if _, err := ParseDate("11/08/2025"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestSameDate(t *testing.T) {
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2025-11-09 02:00 UTC is still 2025-11-08 in the eastern US.
	a := time.Date(2025, 11, 9, 2, 0, 0, 0, time.UTC)
	b := time.Date(2025, 11, 8, 12, 0, 0, 0, eastern)

	if !SameDate(a, b, eastern) {
		t.Fatal("expected same eastern date")
	}
	if SameDate(a, b, time.UTC) {
		t.Fatal("expected different UTC dates")
	}
	if !SameDate(a, a, nil) {
		t.Fatal("nil location defaults to UTC")
	}
}
