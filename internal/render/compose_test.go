package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ledmatrix/sportsticker/internal/config"
)

func testFonts(t *testing.T, size int) Fonts {
	t.Helper()
	fonts, err := LoadFonts("", size)
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	return fonts
}

func newTestRenderer(t *testing.T, opts config.Options) *Renderer {
	t.Helper()
	return New(opts, testFonts(t, opts.FontSize), nil, 128, 32)
}

func solidSegment(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestComposeSpacingAndTrailingGap(t *testing.T) {
	opts := config.DefaultOptions()
	opts.SegmentSpacingPx = 10
	opts.SectionSpacingPx = 5
	r := newTestRenderer(t, opts)

	red := color.RGBA{R: 255, A: 255}
	blocks := []*Block{
		{LeagueKey: "nfl", Segments: []*image.RGBA{
			solidSegment(40, 32, red),
			solidSegment(60, 32, red),
		}},
	}

	strip := r.Compose(blocks)
	// 40 + 15 + 60 + trailing display width.
	want := 40 + 15 + 60 + 128
	if strip.Width != want {
		t.Fatalf("expected strip width %d, got %d", want, strip.Width)
	}
	if strip.BlockCount != 1 {
		t.Fatalf("expected 1 block, got %d", strip.BlockCount)
	}

	// Spacing region between segments stays blank.
	if _, _, _, a := strip.Image.At(45, 16).RGBA(); a != 0 {
		t.Fatal("expected blank pixel inside spacing gap")
	}
	if r, _, _, _ := strip.Image.At(55, 16).RGBA(); r == 0 {
		t.Fatal("expected second segment drawn after gap")
	}
}

func TestComposeSkipsNilBlocksAndFloorsWidth(t *testing.T) {
	r := newTestRenderer(t, config.DefaultOptions())

	strip := r.Compose([]*Block{nil})
	if strip.Width != 128 {
		t.Fatalf("expected strip floored to display width, got %d", strip.Width)
	}
	if strip.BlockCount != 0 {
		t.Fatalf("expected 0 blocks, got %d", strip.BlockCount)
	}
}

func TestViewportCropsAndBlanksPastEnd(t *testing.T) {
	opts := config.DefaultOptions()
	r := newTestRenderer(t, opts)

	green := color.RGBA{G: 255, A: 255}
	blocks := []*Block{{Segments: []*image.RGBA{solidSegment(300, 32, green)}}}
	strip := r.Compose(blocks)

	frame := r.Viewport(strip, 50)
	if frame.Bounds().Dx() != 128 || frame.Bounds().Dy() != 32 {
		t.Fatalf("unexpected frame size %v", frame.Bounds())
	}
	if _, g, _, _ := frame.At(0, 16).RGBA(); g == 0 {
		t.Fatal("expected content at frame start")
	}

	// Offset near the end of the strip: remaining columns stay blank, the
	// frame never wraps around to the strip's head.
	frame = r.Viewport(strip, strip.Width-10)
	if _, _, _, a := frame.At(64, 16).RGBA(); a != 0 {
		t.Fatal("expected blank fill past strip end")
	}
}

func TestViewportNilStrip(t *testing.T) {
	r := newTestRenderer(t, config.DefaultOptions())
	frame := r.Viewport(nil, 0)
	if frame.Bounds().Dx() != 128 {
		t.Fatalf("unexpected frame width %d", frame.Bounds().Dx())
	}
}

func TestEmptyFrame(t *testing.T) {
	r := newTestRenderer(t, config.DefaultOptions())
	frame := r.EmptyFrame()
	if frame.Bounds().Dx() != 128 || frame.Bounds().Dy() != 32 {
		t.Fatalf("unexpected frame size %v", frame.Bounds())
	}

	lit := false
	for x := 0; x < 128 && !lit; x++ {
		for y := 0; y < 32; y++ {
			if _, _, _, a := frame.At(x, y).RGBA(); a != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Fatal("expected message pixels in empty frame")
	}
}
