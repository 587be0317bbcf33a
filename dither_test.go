package dotart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ditherFunc func(PixelBuffer, Palette) (PixelBuffer, error)

var ditherers = map[string]ditherFunc{
	"floyd-steinberg": func(b PixelBuffer, p Palette) (PixelBuffer, error) {
		return ErrorDiffusion(b, p, 128)
	},
	"ordered": func(b PixelBuffer, p Palette) (PixelBuffer, error) {
		return Ordered(b, p, 128, 64)
	},
}

func TestDither_Properties(t *testing.T) {
	t.Parallel()

	src := noiseBuffer(23, 17, 7)
	orig := src.Clone()
	for name, dither := range ditherers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out1, err := dither(src, Pico8)
			require.NoError(t, err)
			out2, err := dither(src, Pico8)
			require.NoError(t, err)
			assert.Equal(t, out1, out2, "dithering must be deterministic")
			assert.Equal(t, orig, src, "input must not be modified")

			for y := range src.H {
				for x := range src.W {
					c, a := out1.At(x, y)
					sc, sa := src.At(x, y)
					assert.Equal(t, sa, a, "alpha is never changed")
					if sa < 128 {
						assert.Equal(t, sc, c, "transparent pixel (%d,%d) modified", x, y)
						continue
					}
					assert.True(t, Pico8.Contains(c), "pixel (%d,%d) = %v not in palette", x, y, c)
				}
			}
		})
	}
}

func TestDither_MidGrayMixesBlackAndWhite(t *testing.T) {
	t.Parallel()

	src := solidBuffer(8, 8, RGB{128, 128, 128}, 255)
	for name, dither := range ditherers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := dither(src, Mono)
			require.NoError(t, err)
			counts := map[RGB]int{}
			for y := range out.H {
				for x := range out.W {
					c, _ := out.At(x, y)
					counts[c]++
				}
			}
			assert.Positive(t, counts[RGB{0, 0, 0}])
			assert.Positive(t, counts[RGB{255, 255, 255}])
			assert.Equal(t, 64, counts[RGB{0, 0, 0}]+counts[RGB{255, 255, 255}])
		})
	}
}

func TestOrdered_BayerPattern(t *testing.T) {
	t.Parallel()

	// Gray 128 sits just past the black/white midpoint, so exactly the
	// cells with a non-negative bias (threshold >= 8/16) turn white.
	out, err := Ordered(solidBuffer(4, 4, RGB{128, 128, 128}, 255), Mono, 128, 64)
	require.NoError(t, err)
	for y := range 4 {
		for x := range 4 {
			c, _ := out.At(x, y)
			want := RGB{}
			if bayer4[y][x] >= 0.5 {
				want = RGB{255, 255, 255}
			}
			assert.Equal(t, want, c, "cell (%d,%d)", x, y)
		}
	}
}

func TestErrorDiffusion_ExactColorsPassThrough(t *testing.T) {
	t.Parallel()

	src := solidBuffer(5, 5, RGB{0, 0, 255}, 255)
	out, err := ErrorDiffusion(src, Palette{{255, 0, 0}, {0, 0, 255}}, 128)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestDither_Errors(t *testing.T) {
	t.Parallel()

	buf := solidBuffer(2, 2, RGB{}, 255)
	_, err := ErrorDiffusion(buf, nil, 128)
	assert.ErrorIs(t, err, ErrEmptyPalette)
	_, err = Ordered(buf, Palette{}, 128, 64)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	bad := PixelBuffer{W: 2, H: 2, Pix: make([]uint8, 3)}
	_, err = ErrorDiffusion(bad, Mono, 128)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Ordered(bad, Mono, 128, 64)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDither_Dispatch(t *testing.T) {
	t.Parallel()

	src := noiseBuffer(9, 9, 3)
	opt := DefaultOptions()

	none, err := Dither(src, Mono, DitherNone, opt)
	require.NoError(t, err)
	assert.Equal(t, src, none)
	none.Pix[0]++
	assert.NotEqual(t, src.Pix[0], none.Pix[0], "DitherNone must return a copy")

	fs, err := Dither(src, Mono, DitherErrorDiffusion, opt)
	require.NoError(t, err)
	want, _ := ErrorDiffusion(src, Mono, opt.DitherAlphaThreshold)
	assert.Equal(t, want, fs)

	ord, err := Dither(src, Mono, DitherOrdered, opt)
	require.NoError(t, err)
	want, _ = Ordered(src, Mono, opt.DitherAlphaThreshold, opt.OrderedSpread)
	assert.Equal(t, want, ord)
}

func TestParseDitherMode(t *testing.T) {
	t.Parallel()

	for _, m := range []DitherMode{DitherNone, DitherErrorDiffusion, DitherOrdered} {
		got, err := ParseDitherMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseDitherMode("Bayer")
	require.NoError(t, err)
	assert.Equal(t, DitherOrdered, got)

	_, err = ParseDitherMode("atkinson")
	assert.Error(t, err)
}
