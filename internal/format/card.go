// Package format produces the text content of ticker cards. Everything here
// is pure; pixel layout lives in the render package.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// CardText is the four text cells of one game card: the away/home name stack
// and the two-line info stack beside it.
type CardText struct {
	AwayName   string
	HomeName   string
	InfoTop    string
	InfoBottom string
}

// Card formats one game for display. The rank prefix appears only on
// upcoming games; live and final cards show bare abbreviations so the score
// column stays tight.
func Card(game domain.GameRecord, league domain.League) CardText {
	card := CardText{
		AwayName: game.Away.Abbr,
		HomeName: game.Home.Abbr,
	}

	switch game.State {
	case domain.StateUpcoming:
		card.AwayName = decorateTeam(game.Away)
		card.HomeName = decorateTeam(game.Home)
		card.InfoTop = CompactTime(game.Start)
		card.InfoBottom = FormatSpread(game.Spread)
	case domain.StateLive:
		card.InfoTop = scoreLine(game.AwayScore, PeriodToken(game, league))
		card.InfoBottom = scoreLine(game.HomeScore, clockToken(game, league))
	case domain.StateFinal:
		card.InfoTop = scoreLine(game.AwayScore, "FINAL")
		card.InfoBottom = scoreLine(game.HomeScore, "")
	}
	return card
}

// BodyFontSize derives the compact card body size from the configured font
// size, floored so tiny configs stay legible.
func BodyFontSize(configured int) int {
	size := configured - 2
	if size < 4 {
		size = 4
	}
	return size
}

// CompactTime renders a local start time in the ticker's short clock form,
// e.g. "7:30P".
func CompactTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "A"
	if t.Hour() >= 12 {
		meridiem = "P"
	}
	return fmt.Sprintf("%d:%02d%s", hour, t.Minute(), meridiem)
}

// scoreLine joins a score and a trailing token with a fixed two-character
// score column, so one- and two-digit scores do not shift the token.
func scoreLine(score int, token string) string {
	return strings.TrimRight(fmt.Sprintf("%2d %s", score, token), " ")
}

func decorateTeam(side domain.TeamSide) string {
	if side.Top25() {
		return fmt.Sprintf("#%d %s", side.Rank, side.Abbr)
	}
	return side.Abbr
}
