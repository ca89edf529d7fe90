package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ScoreboardDateLayout is the compact date token used by scoreboard feeds.
const ScoreboardDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatScoreboardDate formats a time as YYYYMMDD in its current location.
func FormatScoreboardDate(t time.Time) string {
	return t.Format(ScoreboardDateLayout)
}

// SameDate reports whether two times fall on the same calendar day in loc.
func SameDate(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
