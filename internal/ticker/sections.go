package ticker

import (
	"sort"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// Sections holds one league's games bucketed by state, each bucket sorted
// and truncated. Render order is fixed: live, upcoming, final.
type Sections struct {
	Live     []domain.GameRecord
	Upcoming []domain.GameRecord
	Final    []domain.GameRecord
}

// BuildSections buckets games by state, sorts live and upcoming ascending by
// start time, final descending, and truncates each bucket to maxGames. Sorts
// are stable so feed order survives start-time ties.
func BuildSections(games []domain.GameRecord, maxGames int) Sections {
	if maxGames < 1 {
		maxGames = 1
	}

	var s Sections
	for _, g := range games {
		switch g.State {
		case domain.StateLive:
			s.Live = append(s.Live, g)
		case domain.StateUpcoming:
			s.Upcoming = append(s.Upcoming, g)
		case domain.StateFinal:
			s.Final = append(s.Final, g)
		}
	}

	sort.SliceStable(s.Live, func(i, j int) bool { return s.Live[i].Start.Before(s.Live[j].Start) })
	sort.SliceStable(s.Upcoming, func(i, j int) bool { return s.Upcoming[i].Start.Before(s.Upcoming[j].Start) })
	sort.SliceStable(s.Final, func(i, j int) bool { return s.Final[i].Start.After(s.Final[j].Start) })

	s.Live = truncate(s.Live, maxGames)
	s.Upcoming = truncate(s.Upcoming, maxGames)
	s.Final = truncate(s.Final, maxGames)
	return s
}

// Empty reports whether no games survived bucketing.
func (s Sections) Empty() bool {
	return len(s.Live) == 0 && len(s.Upcoming) == 0 && len(s.Final) == 0
}

// Counts returns the per-section sizes keyed by section name.
func (s Sections) Counts() map[string]int {
	return map[string]int{
		"live":     len(s.Live),
		"upcoming": len(s.Upcoming),
		"final":    len(s.Final),
	}
}

func truncate(games []domain.GameRecord, max int) []domain.GameRecord {
	if len(games) > max {
		return games[:max]
	}
	return games
}
