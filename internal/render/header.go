package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// renderHeader draws a league's header segment: logo slot then label.
//
// Logo policy: a configured custom override wins and is scaled by
// leagueLogoScale with the slot sized to the scaled result; otherwise the
// feed-supplied league logo at the fixed header size; otherwise a bordered
// placeholder box. A failed load never drops the header.
func (r *Renderer) renderHeader(league domain.League, sourceLogoURL string) *image.RGBA {
	padding := r.opts.CardPaddingPx
	gap := r.opts.LogoGapPx
	headerColor := r.opts.HeaderColor.Color()

	logo, slot := r.headerLogo(league, sourceLogoURL)

	label := league.Name
	labelWidth := textWidth(r.fonts.Header, label)
	width := padding*2 + slot + gap + labelWidth

	seg := newSegment(width, r.height)
	logoY := r.centerY(slot)
	if logo != nil {
		draw.Draw(seg, image.Rect(padding, logoY, padding+slot, logoY+slot), logo, logo.Bounds().Min, draw.Over)
	} else {
		drawBorderBox(seg, padding, logoY, slot, headerColor)
	}

	textY := r.centerY(lineHeight(r.fonts.Header))
	drawText(seg, r.fonts.Header, padding+slot+gap, textY, label, headerColor)
	return seg
}

func (r *Renderer) headerLogo(league domain.League, sourceLogoURL string) (image.Image, int) {
	base := r.opts.HeaderLogoSizePx

	if custom := r.opts.CustomLeagueLogos[league.Key]; custom != "" {
		slot := int(math.Round(float64(base) * r.opts.LeagueLogoScale))
		if slot < 1 {
			slot = base
		}
		if slot > r.height {
			slot = r.height
		}
		if logo, ok := r.resolveLogo(custom, slot); ok {
			return logo, slot
		}
	}

	if logo, ok := r.resolveLogo(sourceLogoURL, base); ok {
		return logo, base
	}
	return nil, base
}

// renderLabel draws a bare section label segment (LIVE, UPCOMING, FINAL).
func (r *Renderer) renderLabel(label string) *image.RGBA {
	padding := r.opts.CardPaddingPx
	width := padding*2 + textWidth(r.fonts.Header, label)

	seg := newSegment(width, r.height)
	textY := r.centerY(lineHeight(r.fonts.Header))
	drawText(seg, r.fonts.Header, padding, textY, label, r.opts.HeaderColor.Color())
	return seg
}
