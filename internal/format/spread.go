package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

var spreadLinePattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)

// FormatSpread renders the compact spread cell for an upcoming card:
// "BAMA -3.5", "PK" for a pick'em, or "N/A" when the feed supplied nothing.
func FormatSpread(s domain.Spread) string {
	if !s.Known {
		return "N/A"
	}
	if s.Pick {
		return "PK"
	}
	line := fmt.Sprintf("%+.1f", s.Line)
	if s.Favored == "" {
		return line
	}
	return fmt.Sprintf("%s %s", s.Favored, line)
}

// ParseSpreadDetails turns a feed odds string like "MIA -1.5" or
// "Georgia -6.5" into a Spread, resolving the favored side to one of the
// matchup's abbreviations. Unparseable input yields an unknown spread.
func ParseSpreadDetails(details, awayAbbr, homeAbbr string) domain.Spread {
	text := strings.TrimSpace(details)
	if text == "" {
		return domain.Spread{}
	}

	upper := strings.ToUpper(text)
	if upper == "N/A" || upper == "NONE" {
		return domain.Spread{}
	}
	if upper == "PK" || upper == "EVEN" || strings.Contains(upper, "PICK") {
		return domain.Spread{Pick: true, Known: true}
	}

	loc := spreadLinePattern.FindStringIndex(text)
	if loc == nil {
		return domain.Spread{}
	}

	line, err := strconv.ParseFloat(text[loc[0]:loc[1]], 64)
	if err != nil {
		return domain.Spread{}
	}
	favored := matchFavored(strings.TrimSpace(text[:loc[0]]), awayAbbr, homeAbbr)
	return domain.Spread{Favored: favored, Line: line, Known: true}
}

// matchFavored maps the favored-team text preceding the line to one of the
// matchup abbreviations. Exact containment wins; otherwise a fuzzy match
// handles feeds that spell out the team name.
func matchFavored(text, awayAbbr, homeAbbr string) string {
	if text == "" {
		return ""
	}
	upper := strings.ToUpper(text)
	away := strings.ToUpper(awayAbbr)
	home := strings.ToUpper(homeAbbr)

	if away != "" && strings.Contains(upper, away) {
		return away
	}
	if home != "" && strings.Contains(upper, home) {
		return home
	}

	awayRank := fuzzy.RankMatchNormalizedFold(away, text)
	homeRank := fuzzy.RankMatchNormalizedFold(home, text)
	switch {
	case awayRank >= 0 && (homeRank < 0 || awayRank <= homeRank):
		return away
	case homeRank >= 0:
		return home
	}
	return ""
}
