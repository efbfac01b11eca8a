package pixmap

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by [Hex] for malformed color strings.
var ErrInvalidHex = errors.New("pixmap: invalid hex color")

// Color is a packed 32-bit RGBA color, 0xRRGGBBAA. The channels are not
// premultiplied and unpack to the same byte order used in pixel data.
//
// Packing keeps equality cheap and lets colors be stored directly as
// history values.
type Color uint32

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

// RGBA8 packs four channel bytes into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Channels unpacks the color into its R, G, B and A bytes.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements color.Color. The result is alpha-premultiplied, as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// String returns the color as "#rrggbbaa".
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// FromColor converts any color.Color to a packed Color.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Missing alpha means opaque.
func Hex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Red         Color = 0xff0000ff
	Green       Color = 0x00ff00ff
	Blue        Color = 0x0000ffff
	Yellow      Color = 0xffff00ff
	Transparent Color = 0x00000000
)
