package render

import (
	"image"

	"github.com/ledmatrix/sportsticker/internal/config"
)

// LogoResolver supplies a logo bitmap scaled to the requested square size,
// or reports it unavailable. Implementations must not block indefinitely.
type LogoResolver interface {
	Resolve(ref string, size int) (image.Image, bool)
}

// Renderer builds pixel segments for one display geometry. It is rebuilt
// whenever options change; it carries no per-frame state.
type Renderer struct {
	opts   config.Options
	fonts  Fonts
	logos  LogoResolver
	width  int
	height int
}

// New constructs a Renderer for the given display size.
func New(opts config.Options, fonts Fonts, logos LogoResolver, displayWidth, displayHeight int) *Renderer {
	return &Renderer{
		opts:   opts,
		fonts:  fonts,
		logos:  logos,
		width:  displayWidth,
		height: displayHeight,
	}
}

// DisplayWidth returns the viewport width in pixels.
func (r *Renderer) DisplayWidth() int { return r.width }

// DisplayHeight returns the viewport height in pixels.
func (r *Renderer) DisplayHeight() int { return r.height }

func (r *Renderer) resolveLogo(ref string, size int) (image.Image, bool) {
	if ref == "" || r.logos == nil {
		return nil, false
	}
	return r.logos.Resolve(ref, size)
}

// centerY returns the top coordinate that vertically centers a box of h.
func (r *Renderer) centerY(h int) int {
	y := (r.height - h) / 2
	if y < 0 {
		y = 0
	}
	return y
}
