// Package colormath provides the small color arithmetic used by theme
// derivation: hex parsing, a perceptual brightness test, and linear
// channel lighten/darken shifts.
package colormath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColor indicates a malformed hex color string.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Parse parses a "#rrggbb" hex triple. The leading "#" is optional and
// hex digits are case-insensitive.
func Parse(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		channels[i] = hi<<4 | lo
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParse parses a hex color and panics on failure. For built-in
// catalog values only.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the lower-case "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsDark reports whether the color's perceptual brightness
// (299R + 587G + 114B) / 1000 falls below 128.
func (c Color) IsDark() bool {
	brightness := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	return brightness < 128
}

// Lighten shifts every channel up by round(2.55 * percent), clamping at 255.
// This is a linear channel shift, not a perceptual color-space operation;
// the uneven visual steps near the extremes are intentional for parity
// with the palettes the derivation rules were tuned against.
func (c Color) Lighten(percent float64) Color {
	return c.shift(int(math.Round(2.55 * percent)))
}

// Darken shifts every channel down by round(2.55 * percent), clamping at 0.
func (c Color) Darken(percent float64) Color {
	return c.shift(-int(math.Round(2.55 * percent)))
}

func (c Color) shift(delta int) Color {
	return Color{
		R: clampChannel(int(c.R) + delta),
		G: clampChannel(int(c.G) + delta),
		B: clampChannel(int(c.B) + delta),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
