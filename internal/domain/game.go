package domain

import "time"

// State is the lifecycle state of a game as reported by the feed. It is set
// at normalization and never mutated downstream.
type State string

const (
	StateUpcoming State = "upcoming"
	StateLive     State = "live"
	StateFinal    State = "final"
)

// TeamSide holds the per-team half of a matchup.
type TeamSide struct {
	Abbr           string
	Rank           int // 0 means unranked
	LogoURL        string
	ConferenceID   int // 0 means unknown
	ConferenceName string
}

// Top25 reports whether the team carries a current top-25 ranking.
func (t TeamSide) Top25() bool {
	return t.Rank >= 1 && t.Rank <= 25
}

// Spread is the betting line for a matchup, signed relative to the favored
// team. Known is false when the feed supplied no usable odds.
type Spread struct {
	Favored string
	Line    float64
	Pick    bool
	Known   bool
}

// GameRecord is the normalized shape every league's raw games map into.
// Scores are meaningful only when State != StateUpcoming. Period/Clock carry
// in-game progress for period sports; Minute carries the display minute for
// soccer feeds (including stoppage forms like "90'+4'").
type GameRecord struct {
	ID        string
	LeagueKey string
	State     State
	Start     time.Time

	Away TeamSide
	Home TeamSide

	AwayScore int
	HomeScore int

	Period int
	Clock  string
	Minute string

	Spread Spread
}

// FilterConfig holds the NCAA inclusion controls for one NCAA kind. At most
// one tier is active per the filter precedence; the lists are not combined
// beyond the documented top-25 OR case.
type FilterConfig struct {
	Teams                      []string
	Conferences                []string
	Top25Only                  bool
	CombineTop25WithConference bool
}
