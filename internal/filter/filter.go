// Package filter implements the NCAA inclusion predicate. Non-NCAA leagues
// bypass it entirely.
package filter

import (
	"strings"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// Include decides whether a game survives the league's NCAA filters. The
// tiers are evaluated in precedence order and the first active tier wins:
//
//  1. team allow-list: either team's abbreviation matches, all else ignored
//  2. conference allow-list: either team's conference matches by id or by
//     case-insensitive name; with top25-only plus the combine flag this
//     widens to conference OR top-25
//  3. top25-only: either team ranked
//  4. no active filter: include
//
// Conference entries that match nothing are not errors; they just never
// match. Include is pure.
func Include(game domain.GameRecord, league domain.League, cfg domain.FilterConfig) bool {
	if !league.NCAA {
		return true
	}

	if teams := normalizeTeams(cfg.Teams); len(teams) > 0 {
		_, away := teams[strings.ToUpper(game.Away.Abbr)]
		_, home := teams[strings.ToUpper(game.Home.Abbr)]
		return away || home
	}

	if len(cfg.Conferences) > 0 {
		match := conferenceMatch(game, league.Kind, cfg.Conferences)
		if cfg.Top25Only && cfg.CombineTop25WithConference {
			return match || game.Away.Top25() || game.Home.Top25()
		}
		return match
	}

	if cfg.Top25Only {
		return game.Away.Top25() || game.Home.Top25()
	}

	return true
}

func conferenceMatch(game domain.GameRecord, kind domain.NCAAKind, selected []string) bool {
	ids := domain.ConferenceIDs(kind, selected)

	names := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		if normalized := domain.NormalizeConferenceName(name); normalized != "" {
			names[normalized] = struct{}{}
		}
	}

	for _, side := range []domain.TeamSide{game.Away, game.Home} {
		if side.ConferenceID != 0 {
			if _, ok := ids[side.ConferenceID]; ok {
				return true
			}
		}
		if side.ConferenceName != "" {
			if _, ok := names[domain.NormalizeConferenceName(side.ConferenceName)]; ok {
				return true
			}
		}
	}
	return false
}

func normalizeTeams(teams []string) map[string]struct{} {
	out := make(map[string]struct{}, len(teams))
	for _, team := range teams {
		cleaned := strings.ToUpper(strings.TrimSpace(team))
		if cleaned != "" {
			out[cleaned] = struct{}{}
		}
	}
	return out
}
