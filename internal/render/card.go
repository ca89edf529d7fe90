package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ledmatrix/sportsticker/internal/domain"
	"github.com/ledmatrix/sportsticker/internal/format"
)

// renderCard draws one game card: the two team logos around an "@", the
// name stack, and the state-dependent info stack.
func (r *Renderer) renderCard(game domain.GameRecord, league domain.League) *image.RGBA {
	padding := r.opts.CardPaddingPx
	gap := r.opts.LogoGapPx
	columnGap := gap + 1
	if columnGap < 2 {
		columnGap = 2
	}
	body := r.fonts.Body

	// Team logos fill most of the panel height.
	logoSize := (r.height * 82) / 100
	if logoSize < 18 {
		logoSize = 18
	}
	if logoSize > r.height-2 {
		logoSize = r.height - 2
	}

	card := format.Card(game, league)

	namesWidth := maxInt(textWidth(body, card.AwayName), textWidth(body, card.HomeName))
	infoWidth := maxInt(textWidth(body, card.InfoTop), textWidth(body, card.InfoBottom))
	atWidth := textWidth(body, "@")
	logoCluster := logoSize + gap + atWidth + gap + logoSize

	width := padding*2 + logoCluster + columnGap + namesWidth + columnGap + infoWidth
	seg := newSegment(width, r.height)

	logoY := r.centerY(logoSize)
	awayX := padding
	atX := awayX + logoSize + gap
	homeX := atX + atWidth + gap

	r.drawTeamLogo(seg, game.Away, awayX, logoY, logoSize)
	r.drawTeamLogo(seg, game.Home, homeX, logoY, logoSize)

	headerColor := r.opts.HeaderColor.Color()
	drawText(seg, body, atX, r.centerY(lineHeight(body)), "@", headerColor)

	lineH := lineHeight(body)
	lineGap := lineH / 4
	if lineGap < 1 {
		lineGap = 1
	}
	line1Y := r.centerY(lineH*2 + lineGap)
	line2Y := line1Y + lineH + lineGap

	namesX := padding + logoCluster + columnGap
	infoX := namesX + namesWidth + columnGap

	textColor := r.opts.TextColor.Color()
	topColor, bottomColor := r.infoColors(game.State)

	drawText(seg, body, namesX, line1Y, fitText(body, card.AwayName, namesWidth), textColor)
	drawText(seg, body, namesX, line2Y, fitText(body, card.HomeName, namesWidth), textColor)
	drawText(seg, body, infoX, line1Y, fitText(body, card.InfoTop, infoWidth), topColor)
	drawText(seg, body, infoX, line2Y, fitText(body, card.InfoBottom, infoWidth), bottomColor)

	return seg
}

func (r *Renderer) drawTeamLogo(dst *image.RGBA, side domain.TeamSide, x, y, size int) {
	if logo, ok := r.resolveLogo(side.LogoURL, size); ok {
		draw.Draw(dst, image.Rect(x, y, x+size, y+size), logo, logo.Bounds().Min, draw.Over)
		return
	}

	// Bordered box with the first two letters stands in for a missing logo.
	border := r.opts.HeaderColor.Color()
	drawBorderBox(dst, x, y, size, border)

	short := side.Abbr
	if len(short) > 2 {
		short = short[:2]
	}
	body := r.fonts.Body
	tx := x + maxInt(0, (size-textWidth(body, short))/2)
	ty := y + maxInt(0, (size-lineHeight(body))/2)
	drawText(dst, body, tx, ty, short, border)
}

func (r *Renderer) infoColors(state domain.State) (color.Color, color.Color) {
	switch state {
	case domain.StateUpcoming:
		return r.opts.UpcomingColor.Color(), r.opts.SpreadColor.Color()
	case domain.StateLive:
		live := r.opts.LiveColor.Color()
		return live, live
	default:
		final := r.opts.FinalColor.Color()
		return final, final
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
