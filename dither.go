package dotart

import (
	"fmt"
	"math"
	"strings"
)

// DitherMode selects the full-resolution dithering pass run before block sampling.
type DitherMode int

const (
	DitherNone DitherMode = iota
	DitherErrorDiffusion
	DitherOrdered
)

func (m DitherMode) String() string {
	switch m {
	case DitherErrorDiffusion:
		return "floyd-steinberg"
	case DitherOrdered:
		return "ordered"
	default:
		return "none"
	}
}

// ParseDitherMode accepts the String forms plus a few common aliases.
func ParseDitherMode(s string) (DitherMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return DitherNone, nil
	case "floyd-steinberg", "floydsteinberg", "fs", "error-diffusion", "diffusion":
		return DitherErrorDiffusion, nil
	case "ordered", "bayer":
		return DitherOrdered, nil
	}
	return DitherNone, fmt.Errorf("dotart: unknown dither mode %q", s)
}

// diffusionKernel entries are {weight, dx, dy}.
type diffusionKernel [][3]float32

var floydSteinberg = diffusionKernel{
	{7.0 / 16.0, 1, 0},
	{3.0 / 16.0, -1, 1},
	{5.0 / 16.0, 0, 1},
	{1.0 / 16.0, 1, 1},
}

// bayer4 holds the 4x4 Bayer threshold matrix normalized to [0, 15/16].
var bayer4 = func() [4][4]float64 {
	raw := [4][4]int{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	}
	var m [4][4]float64
	for y := range 4 {
		for x := range 4 {
			m[y][x] = float64(raw[y][x]) / 16
		}
	}
	return m
}()

// Dither runs the pass selected by mode and returns a new buffer.
// DitherNone returns a plain copy.
func Dither(src PixelBuffer, pal Palette, mode DitherMode, opt Options) (PixelBuffer, error) {
	switch mode {
	case DitherErrorDiffusion:
		return ErrorDiffusion(src, pal, opt.DitherAlphaThreshold)
	case DitherOrdered:
		return Ordered(src, pal, opt.DitherAlphaThreshold, opt.OrderedSpread)
	default:
		return src.Clone(), nil
	}
}

// ErrorDiffusion applies Floyd-Steinberg dithering against pal. Pixels whose
// alpha is below alphaThreshold are copied through unchanged and do not
// receive a quantized color.
func ErrorDiffusion(src PixelBuffer, pal Palette, alphaThreshold uint8) (PixelBuffer, error) {
	if len(pal) == 0 {
		return PixelBuffer{}, ErrEmptyPalette
	}
	if err := src.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	work := newFloatBuffer(src)
	for y := range src.H {
		for x := range src.W {
			off := work.offset(x, y)
			if src.Pix[off+3] < alphaThreshold {
				continue
			}
			old := work.rgbAt(off)
			q := pal.nearest(old)
			work.setRGB(off, q)
			qerr := [3]float32{
				float32(old.R) - float32(q.R),
				float32(old.G) - float32(q.G),
				float32(old.B) - float32(q.B),
			}
			for _, k := range floydSteinberg {
				work.addError(x+int(k[1]), y+int(k[2]), qerr, k[0])
			}
		}
	}

	out := src.Clone()
	for i := 0; i < len(out.Pix); i += 4 {
		if src.Pix[i+3] < alphaThreshold {
			continue
		}
		c := work.rgbAt(i)
		out.Pix[i] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
	}
	return out, nil
}

// Ordered applies 4x4 Bayer dithering. Each visible pixel is offset by
// round((threshold-0.5)*spread) on every channel and then quantized.
func Ordered(src PixelBuffer, pal Palette, alphaThreshold uint8, spread float64) (PixelBuffer, error) {
	if len(pal) == 0 {
		return PixelBuffer{}, ErrEmptyPalette
	}
	if err := src.Validate(); err != nil {
		return PixelBuffer{}, err
	}
	out := src.Clone()
	for y := range src.H {
		for x := range src.W {
			c, a := src.At(x, y)
			if a < alphaThreshold {
				continue
			}
			bias := math.Round((bayer4[y%4][x%4] - 0.5) * spread)
			biased := RGB{
				R: clampByte(float64(c.R) + bias),
				G: clampByte(float64(c.G) + bias),
				B: clampByte(float64(c.B) + bias),
			}
			out.Set(x, y, pal.nearest(biased), a)
		}
	}
	return out, nil
}
