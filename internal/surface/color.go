package surface

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa and CSS color names. It
// reports false and returns opaque black for anything else.
func ParseColor(v string) (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(v))
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHex(s[1:]); ok {
			return c, true
		}
		return color.NRGBA{A: 0xff}, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return color.NRGBA{A: 0xff}, false
}

func parseHex(h string) (color.NRGBA, bool) {
	if len(h) == 3 || len(h) == 4 {
		long := make([]byte, 0, 2*len(h))
		for i := 0; i < len(h); i++ {
			long = append(long, h[i], h[i])
		}
		h = string(long)
	}
	switch len(h) {
	case 6:
		h += "ff"
	case 8:
	default:
		return color.NRGBA{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}

// FormatColor renders c as #rrggbb, adding the alpha byte when it is not
// fully opaque. It is the inverse of ParseColor for hex input.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
