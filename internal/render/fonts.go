// Package render turns formatted card text and logos into pixel segments,
// league blocks, and the composed ticker strip.
package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ledmatrix/sportsticker/internal/format"
)

// Fonts holds the two faces the ticker draws with: headers at the configured
// size, card bodies two points smaller.
type Fonts struct {
	Header font.Face
	Body   font.Face
}

// LoadFonts builds faces from a TTF/OTF file, falling back to the embedded
// Go Regular face when no path is configured or the file cannot be read.
func LoadFonts(path string, size int) (Fonts, error) {
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			data = raw
		}
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return Fonts{}, fmt.Errorf("parse font: %w", err)
	}

	header, err := newFace(parsed, size)
	if err != nil {
		return Fonts{}, err
	}
	body, err := newFace(parsed, format.BodyFontSize(size))
	if err != nil {
		return Fonts{}, err
	}
	return Fonts{Header: header, Body: body}, nil
}

func newFace(parsed *opentype.Font, size int) (font.Face, error) {
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return face, nil
}
