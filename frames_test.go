package dotart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spriteGrid is an asymmetric test sprite so rotations are distinguishable.
func spriteGrid(n int) DotGrid {
	g := NewDotGrid(n)
	g.Set(0, 0, RGB{255, 0, 0})
	g.Set(1, 0, RGB{0, 255, 0})
	g.Set(0, n-1, RGB{0, 0, 255})
	g.Set(n/2, n/2, RGB{255, 255, 0})
	return g
}

func TestSynthesize_FrameCounts(t *testing.T) {
	t.Parallel()

	g := spriteGrid(6)
	for effect, want := range map[Effect]int{
		EffectBlink: 8, EffectBounce: 12, EffectRotate: 8, EffectRainbow: 12, EffectFade: 12,
	} {
		frames, err := Synthesize(g, effect, RGB{255, 255, 255})
		require.NoError(t, err)
		assert.Len(t, frames, want, effect.String())
		for _, f := range frames {
			assert.Equal(t, g.Size, f.Grid.Size)
			assert.Len(t, f.Grid.Cells, len(g.Cells))
		}
	}
}

func TestSynthesize_Blink(t *testing.T) {
	t.Parallel()

	g := spriteGrid(5)
	frames, err := Synthesize(g, EffectBlink, RGB{})
	require.NoError(t, err)
	for i, f := range frames {
		if i%2 == 0 {
			assert.Equal(t, g, f.Grid, "frame %d", i)
		} else {
			assert.True(t, f.Grid.IsEmpty(), "frame %d", i)
		}
	}
}

func TestSynthesize_Rotate(t *testing.T) {
	t.Parallel()

	g := spriteGrid(5)
	frames, err := Synthesize(g, EffectRotate, RGB{})
	require.NoError(t, err)

	assert.Equal(t, g, frames[0].Grid)
	assert.Equal(t, g.Rotate90(), frames[1].Grid)
	assert.Equal(t, frames[1].Grid, frames[2].Grid)
	assert.Equal(t, g.Rotate90().Rotate90(), frames[3].Grid)
	assert.False(t, g.Equal(frames[5].Grid))
	assert.Equal(t, g, frames[7].Grid, "a full cycle returns to the source")
}

func TestSynthesize_Rainbow(t *testing.T) {
	t.Parallel()

	g := NewDotGrid(2)
	g.Set(0, 0, RGB{255, 0, 0})
	g.Set(1, 1, RGB{12, 34, 56})

	frames, err := Synthesize(g, EffectRainbow, RGB{})
	require.NoError(t, err)
	assert.Equal(t, g, frames[0].Grid)
	// Frame 4 shifts hue by 120 degrees.
	assert.Equal(t, RGB{0, 255, 0}, frames[4].Grid.At(0, 0).Color)
	assert.Equal(t, RGB{0, 0, 255}, frames[8].Grid.At(0, 0).Color)
	for _, f := range frames {
		assert.False(t, f.Grid.At(1, 0).Filled)
		assert.False(t, f.Grid.At(0, 1).Filled)
	}
}

func TestSynthesize_Fade(t *testing.T) {
	t.Parallel()

	g := spriteGrid(4)
	bg := RGB{10, 20, 30}
	frames, err := Synthesize(g, EffectFade, bg)
	require.NoError(t, err)

	for _, i := range []int{0, 11} {
		for j, c := range frames[i].Grid.Cells {
			if g.Cells[j].Filled {
				assert.Equal(t, bg, c.Color, "frame %d cell %d", i, j)
			} else {
				assert.False(t, c.Filled)
			}
		}
	}
	assert.Equal(t, g, frames[5].Grid)
	assert.Equal(t, g, frames[6].Grid)
	assert.Equal(t, frames[2].Grid, frames[9].Grid, "envelope is symmetric")
	assert.Equal(t, RGB{255, 0, 0}.Blend(bg, 0.4), frames[2].Grid.At(0, 0).Color)
}

func TestSynthesize_Bounce(t *testing.T) {
	t.Parallel()

	// 0.15*8 = 1.2, so the peak offset is one row.
	g := spriteGrid(8)
	frames, err := Synthesize(g, EffectBounce, RGB{})
	require.NoError(t, err)

	assert.Equal(t, g, frames[0].Grid)
	assert.Equal(t, g.ShiftRows(1), frames[3].Grid)
	assert.Equal(t, g.ShiftRows(-1), frames[9].Grid)
	// The top row moves out at the peak without wrapping around.
	assert.Equal(t, RGB{0, 0, 255}, frames[3].Grid.At(0, 6).Color)
	assert.False(t, frames[3].Grid.At(0, 7).Filled)
	assert.False(t, frames[3].Grid.At(0, 0).Filled)
}

func TestSynthesize_UnknownEffect(t *testing.T) {
	t.Parallel()

	_, err := Synthesize(spriteGrid(4), Effect(42), RGB{})
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestParseEffect(t *testing.T) {
	t.Parallel()

	for _, e := range []Effect{EffectBlink, EffectBounce, EffectRotate, EffectRainbow, EffectFade} {
		got, err := ParseEffect(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	_, err := ParseEffect("spin")
	assert.ErrorIs(t, err, ErrUnknownEffect)
	assert.Equal(t, "Effect(9)", Effect(9).String())
}
