package render

import (
	"image"

	"github.com/ledmatrix/sportsticker/internal/domain"
)

// Block is one league's slice of the strip: the header segment followed by
// section labels and cards, or a single no-games placeholder.
type Block struct {
	LeagueKey   string
	Segments    []*image.RGBA
	Placeholder bool
}

// Width sums the block's segment widths without inter-segment spacing.
func (b *Block) Width() int {
	total := 0
	for _, seg := range b.Segments {
		total += seg.Bounds().Dx()
	}
	return total
}

// BuildBlock assembles a league's block from its sorted sections, rendered
// in the fixed order live, upcoming, final. Returns nil when the league has
// no games and placeholders are disabled: the league then contributes
// nothing to the strip, header included.
func (r *Renderer) BuildBlock(league domain.League, live, upcoming, final []domain.GameRecord, sourceLogoURL string) *Block {
	empty := len(live) == 0 && len(upcoming) == 0 && len(final) == 0
	if empty && !r.opts.NoGamesPlaceholder() {
		return nil
	}

	block := &Block{LeagueKey: league.Key}
	block.Segments = append(block.Segments, r.renderHeader(league, sourceLogoURL))

	if empty {
		block.Placeholder = true
		block.Segments = append(block.Segments, r.renderLabel("NO GAMES"))
		return block
	}

	labels := r.opts.SectionLabels()
	appendSection := func(label string, games []domain.GameRecord) {
		if len(games) == 0 {
			return
		}
		if labels {
			block.Segments = append(block.Segments, r.renderLabel(label))
		}
		for _, game := range games {
			block.Segments = append(block.Segments, r.renderCard(game, league))
		}
	}

	appendSection("LIVE", live)
	appendSection("UPCOMING", upcoming)
	appendSection("FINAL", final)
	return block
}
