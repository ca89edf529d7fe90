package render

import (
	"image"
	"image/draw"
)

// Strip is the composed ticker: every block's segments laid out left to
// right with spacing, plus a trailing blank gap one display width wide.
type Strip struct {
	Image      *image.RGBA
	Width      int
	BlockCount int
}

// Compose concatenates blocks into a strip. Spacing between consecutive
// segments is segmentSpacingPx + sectionSpacingPx; the trailing gap lets the
// loop restart without the last card touching the first header.
func (r *Renderer) Compose(blocks []*Block) *Strip {
	spacing := r.opts.SegmentSpacingPx + r.opts.SectionSpacingPx

	var segments []*image.RGBA
	for _, block := range blocks {
		if block == nil {
			continue
		}
		segments = append(segments, block.Segments...)
	}

	total := 0
	for i, seg := range segments {
		total += seg.Bounds().Dx()
		if i < len(segments)-1 {
			total += spacing
		}
	}
	total += r.width // trailing loop gap

	stripWidth := total
	if stripWidth < r.width {
		stripWidth = r.width
	}

	img := image.NewRGBA(image.Rect(0, 0, stripWidth, r.height))
	x := 0
	for i, seg := range segments {
		w := seg.Bounds().Dx()
		draw.Draw(img, image.Rect(x, 0, x+w, r.height), seg, seg.Bounds().Min, draw.Src)
		x += w
		if i < len(segments)-1 {
			x += spacing
		}
	}

	count := 0
	for _, block := range blocks {
		if block != nil {
			count++
		}
	}
	return &Strip{Image: img, Width: stripWidth, BlockCount: count}
}

// Viewport crops the strip to [offset, offset+displayWidth). Range past the
// strip's drawn content stays blank; the wrap happens only in the offset's
// own modulo arithmetic between frames, never inside a frame.
func (r *Renderer) Viewport(strip *Strip, offset int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if strip == nil {
		return frame
	}

	left := offset
	right := offset + r.width
	if left < 0 {
		left = 0
	}
	if right > strip.Width {
		right = strip.Width
	}
	if left >= right {
		return frame
	}

	draw.Draw(frame, image.Rect(0, 0, right-left, r.height), strip.Image, image.Pt(left, 0), draw.Src)
	return frame
}

// EmptyFrame renders the screen shown when no leagues produced a block.
func (r *Renderer) EmptyFrame() *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	message := "NO GAMES TODAY"

	x := (r.width - textWidth(r.fonts.Header, message)) / 2
	if x < 0 {
		x = 0
	}
	drawText(frame, r.fonts.Header, x, r.centerY(lineHeight(r.fonts.Header)), message, r.opts.TextColor.Color())
	return frame
}
