package domain

import "time"

// LeagueGames is one league's slice of a snapshot.
type LeagueGames struct {
	Games   []GameRecord
	LogoURL string
}

// Snapshot is one complete, immutable view of the day's games across all
// fetched leagues. A rebuild always consumes a whole snapshot; leagues are
// never mixed across snapshots.
type Snapshot struct {
	Date      string
	FetchedAt time.Time
	Leagues   map[string]LeagueGames
}

// GameCount returns the total number of games across all leagues.
func (s Snapshot) GameCount() int {
	total := 0
	for _, lg := range s.Leagues {
		total += len(lg.Games)
	}
	return total
}

// LiveCount returns the number of live games across all leagues.
func (s Snapshot) LiveCount() int {
	total := 0
	for _, lg := range s.Leagues {
		for _, g := range lg.Games {
			if g.State == StateLive {
				total++
			}
		}
	}
	return total
}
