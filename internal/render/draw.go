package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func textWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// drawText draws text with its top edge at y.
func drawText(dst draw.Image, face font.Face, x, y int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+ascent(face)),
	}
	d.DrawString(text)
}

// fitText truncates text with an ellipsis until it fits maxWidth pixels.
func fitText(face font.Face, text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if textWidth(face, text) <= maxWidth {
		return text
	}
	const ellipsis = "..."
	for cut := len(text); cut > 0; cut-- {
		candidate := text[:cut] + ellipsis
		if textWidth(face, candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// drawBorderBox draws a one-pixel rectangle outline, the logo fallback shape.
func drawBorderBox(dst draw.Image, x, y, size int, col color.Color) {
	for i := 0; i < size; i++ {
		dst.Set(x+i, y, col)
		dst.Set(x+i, y+size-1, col)
		dst.Set(x, y+i, col)
		dst.Set(x+size-1, y+i, col)
	}
}

func newSegment(width, height int) *image.RGBA {
	if width < 1 {
		width = 1
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
