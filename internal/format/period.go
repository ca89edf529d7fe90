package format

import (
	"fmt"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// PeriodToken renders the in-game progress token for a live card's top line.
// Soccer minute strings pass through verbatim; stoppage and extra time are
// already encoded in the minute itself ("90'+4'", "105'"). Period sports
// render the ordinal label, except past regulation where overtime-remapping
// families render "OT".
func PeriodToken(game domain.GameRecord, league domain.League) string {
	if league.Family == domain.SportSoccer {
		return game.Minute
	}
	if game.Period <= 0 {
		return ""
	}
	if league.Family.RemapsOvertime() && game.Period > league.Regulation {
		return "OT"
	}
	return Ordinal(game.Period)
}

// clockToken renders the bottom-line token for a live card. Soccer cards
// carry the minute on the top line only.
func clockToken(game domain.GameRecord, league domain.League) string {
	if league.Family == domain.SportSoccer {
		return ""
	}
	return game.Clock
}

// Ordinal renders 1 -> "1ST", 2 -> "2ND", 11 -> "11TH", etc.
func Ordinal(value int) string {
	suffix := "TH"
	if value%100 < 10 || value%100 > 20 {
		switch value % 10 {
		case 1:
			suffix = "ST"
		case 2:
			suffix = "ND"
		case 3:
			suffix = "RD"
		}
	}
	return fmt.Sprintf("%d%s", value, suffix)
}
