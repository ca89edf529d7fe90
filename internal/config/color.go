package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a display color. It unmarshals from either a JSON array
// ([255, 215, 0]) or the comma string form ("255,215,0") the web UI emits.
type RGB [3]uint8

// IsZero reports whether the color is unset (treated as "use default").
func (c RGB) IsZero() bool {
	return c[0] == 0 && c[1] == 0 && c[2] == 0
}

// Color converts to the stdlib color type at full opacity.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// UnmarshalJSON accepts [r,g,b] or "r,g,b".
func (c *RGB) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		return c.fromInts(arr)
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("color must be an array or string: %s", string(data))
	}

	parts := strings.Split(str, ",")
	ints := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid color component %q", part)
		}
		ints = append(ints, v)
	}
	return c.fromInts(ints)
}

func (c *RGB) fromInts(vals []int) error {
	if len(vals) < 3 {
		return fmt.Errorf("color needs 3 components, got %d", len(vals))
	}
	for i := 0; i < 3; i++ {
		v := vals[i]
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		c[i] = uint8(v)
	}
	return nil
}
