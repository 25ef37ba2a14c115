package game

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Palette is the set of light colors the front-ends cycle through
var Palette = []color.RGBA{
	DefaultOnColor,
	colornames.Gold,
	colornames.Tomato,
	colornames.Limegreen,
	colornames.Orchid,
	colornames.White,
}

// ParseColor accepts "rgb(r, g, b)", "#rrggbb" or an SVG color name
func ParseColor(value string) (color.RGBA, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	if strings.HasPrefix(value, "rgb(") && strings.HasSuffix(value, ")") {
		parts := strings.Split(value[len("rgb("):len(value)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("invalid color %q", value)
		}

		var channels [3]uint8
		for i, part := range parts {
			channel, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", value)
			}
			if channel < 0 || channel > 255 {
				return color.RGBA{}, fmt.Errorf("color channel %d out of range in %q", channel, value)
			}
			channels[i] = uint8(channel)
		}
		return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
	}

	if strings.HasPrefix(value, "#") {
		parsed, err := colorful.Hex(value)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", value)
		}
		r, g, b := parsed.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if named, ok := colornames.Map[value]; ok {
		return named, nil
	}

	return color.RGBA{}, fmt.Errorf("unknown color %q", value)
}

func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NextColor returns the palette entry following c, or the first entry when c
// is not in the palette
func NextColor(c color.RGBA) color.RGBA {
	for i, entry := range Palette {
		if entry == c {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}

// Blend mixes c toward other; t=0 yields c, t=1 yields other
func Blend(c, other color.RGBA, t float64) color.RGBA {
	from, _ := colorful.MakeColor(c)
	to, _ := colorful.MakeColor(other)
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
