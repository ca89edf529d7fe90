package espn

import (
	"strconv"
	"strings"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/format"
)

// Event timestamps come in a few RFC3339 shapes, some without seconds.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z07:00",
}

func mapScoreboard(payload scoreboardResponse, league domain.League, loc *time.Location) domain.LeagueGames {
	out := domain.LeagueGames{}
	if len(payload.Leagues) > 0 && len(payload.Leagues[0].Logos) > 0 {
		out.LogoURL = payload.Leagues[0].Logos[0].Href
	}

	for _, event := range payload.Events {
		if game, ok := mapEvent(event, league, loc); ok {
			out.Games = append(out.Games, game)
		}
	}
	return out
}

// mapEvent normalizes one scoreboard event. A malformed event (missing
// competitors, unparseable time, missing score on a started game) is
// dropped; the rest of the league still renders.
func mapEvent(event eventPayload, league domain.League, loc *time.Location) (domain.GameRecord, bool) {
	if len(event.Competitions) == 0 {
		return domain.GameRecord{}, false
	}
	competition := event.Competitions[0]
	if len(competition.Competitors) < 2 {
		return domain.GameRecord{}, false
	}

	away, awayOK := findCompetitor(competition.Competitors, "away")
	home, homeOK := findCompetitor(competition.Competitors, "home")
	if !awayOK || !homeOK {
		return domain.GameRecord{}, false
	}

	start, ok := parseEventTime(event.Date)
	if !ok {
		return domain.GameRecord{}, false
	}
	if loc != nil {
		start = start.In(loc)
	}

	state := mapState(event.Status.Type.State)

	game := domain.GameRecord{
		ID:        event.ID,
		LeagueKey: league.Key,
		State:     state,
		Start:     start,
		Away:      mapTeamSide(away),
		Home:      mapTeamSide(home),
		Period:    event.Status.Period,
	}

	if state != domain.StateUpcoming {
		awayScore, awayErr := strconv.Atoi(strings.TrimSpace(away.Score))
		homeScore, homeErr := strconv.Atoi(strings.TrimSpace(home.Score))
		if awayErr != nil || homeErr != nil {
			return domain.GameRecord{}, false
		}
		game.AwayScore = awayScore
		game.HomeScore = homeScore
	}

	clock := strings.TrimSpace(event.Status.DisplayClock)
	if clock == "0:00" || clock == "00:00" {
		clock = ""
	}
	if league.Family == domain.SportSoccer {
		game.Minute = clock
	} else {
		game.Clock = clock
	}

	if len(competition.Odds) > 0 {
		game.Spread = format.ParseSpreadDetails(competition.Odds[0].Details, game.Away.Abbr, game.Home.Abbr)
		if !game.Spread.Known && competition.Odds[0].Spread != nil {
			game.Spread = domain.Spread{Line: *competition.Odds[0].Spread, Known: true}
		}
	}

	return game, true
}

func mapState(state string) domain.State {
	switch strings.ToLower(state) {
	case "in":
		return domain.StateLive
	case "post":
		return domain.StateFinal
	default:
		return domain.StateUpcoming
	}
}

func mapTeamSide(comp competitorPayload) domain.TeamSide {
	team := comp.Team
	side := domain.TeamSide{
		Abbr:           teamAbbreviation(team),
		ConferenceName: conferenceName(team),
		ConferenceID:   conferenceID(team),
	}

	if rank := comp.CuratedRank.Current; rank > 0 {
		side.Rank = rank
	}

	if len(team.Logos) > 0 && team.Logos[0].Href != "" {
		side.LogoURL = team.Logos[0].Href
	} else {
		side.LogoURL = team.Logo
	}
	return side
}

func teamAbbreviation(team teamPayload) string {
	for _, candidate := range []string{team.Abbreviation, team.ShortDisplayName, team.DisplayName, team.Name} {
		if candidate != "" {
			return strings.ToUpper(candidate)
		}
	}
	return "TEAM"
}

func conferenceID(team teamPayload) int {
	if id, err := strconv.Atoi(team.ConferenceID); err == nil && id > 0 {
		return id
	}
	if team.Conference != nil {
		if id, err := strconv.Atoi(team.Conference.ID); err == nil && id > 0 {
			return id
		}
	}
	return 0
}

func conferenceName(team teamPayload) string {
	if team.Conference == nil {
		return ""
	}
	for _, candidate := range []string{team.Conference.ShortName, team.Conference.Abbreviation, team.Conference.Name} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func findCompetitor(competitors []competitorPayload, side string) (competitorPayload, bool) {
	for _, comp := range competitors {
		if strings.EqualFold(comp.HomeAway, side) {
			return comp, true
		}
	}
	return competitorPayload{}, false
}

func parseEventTime(value string) (time.Time, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
