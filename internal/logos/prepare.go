package logos

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Prepare trims transparent margins, scales the logo to fit a size x size
// square preserving aspect ratio, and centers it on a transparent canvas.
func Prepare(src image.Image, size int) image.Image {
	trimmed := trimTransparent(src)
	bounds := trimmed.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, size, size))
	}

	scaledW, scaledH := size, size
	if w > h {
		scaledH = (h * size) / w
	} else {
		scaledW = (w * size) / h
	}
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	x := (size - scaledW) / 2
	y := (size - scaledH) / 2
	xdraw.CatmullRom.Scale(canvas, image.Rect(x, y, x+scaledW, y+scaledH), trimmed, bounds, xdraw.Over, nil)
	return canvas
}

// trimTransparent crops the image to the bounding box of its non-transparent
// pixels so logos use their full allotted size.
func trimTransparent(src image.Image) image.Image {
	bounds := src.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if minX > maxX || minY > maxY {
		return src
	}

	rect := image.Rect(minX, minY, maxX+1, maxY+1)
	if rect == bounds {
		return src
	}
	if sub, ok := src.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect)
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			out.Set(x, y, color.RGBAModel.Convert(src.At(rect.Min.X+x, rect.Min.Y+y)))
		}
	}
	return out
}
