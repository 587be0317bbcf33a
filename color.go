package dotart

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit color. Palette entries and grid cells use it.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// NRGBA returns c with the given alpha.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Colorful converts c to a go-colorful color with channels in [0,1].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex returns c as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Luminance returns the BT.601 luma of c in [0,255].
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Scale multiplies every channel by f and rounds the result.
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
	}
}

// Blend mixes c over bg with opacity a in [0,1].
func (c RGB) Blend(bg RGB, a float64) RGB {
	a = max(0, min(1, a))
	return RGB{
		R: clampByte(float64(c.R)*a + float64(bg.R)*(1-a)),
		G: clampByte(float64(c.G)*a + float64(bg.G)*(1-a)),
		B: clampByte(float64(c.B)*a + float64(bg.B)*(1-a)),
	}
}

// FromColorful converts a go-colorful color back to RGB, clamping out-of-gamut values.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// FromColor converts any color.Color, dropping alpha after un-premultiplying.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return FromColorful(c), nil
}

// Distance is the weighted ("redmean") squared distance between two colors.
// Outline and dither thresholds are tuned against this exact metric.
func Distance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return (512+rMean)*dr*dr/256 + 4*dg*dg + (767-rMean)*db*db/256
}

// clampByte rounds v into 0..255. NaN maps to 0.
func clampByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(max(0, min(255, math.Round(v))))
}
