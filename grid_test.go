package dotart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotGrid_Rotate90(t *testing.T) {
	t.Parallel()

	g := NewDotGrid(3)
	g.Set(0, 0, RGB{1, 0, 0}) // top-left -> top-right
	g.Set(2, 0, RGB{2, 0, 0}) // top-right -> bottom-right
	g.Set(0, 2, RGB{3, 0, 0}) // bottom-left -> top-left

	r := g.Rotate90()
	assert.Equal(t, RGB{1, 0, 0}, r.At(2, 0).Color)
	assert.Equal(t, RGB{2, 0, 0}, r.At(2, 2).Color)
	assert.Equal(t, RGB{3, 0, 0}, r.At(0, 0).Color)
	assert.False(t, r.At(0, 2).Filled)
	assert.Equal(t, g, r.Rotate90().Rotate90().Rotate90())
}

func TestDotGrid_ShiftRows(t *testing.T) {
	t.Parallel()

	g := NewDotGrid(3)
	for y := range 3 {
		g.Set(1, y, RGB{uint8(y + 1), 0, 0})
	}

	up := g.ShiftRows(1)
	assert.Equal(t, RGB{2, 0, 0}, up.At(1, 0).Color)
	assert.Equal(t, RGB{3, 0, 0}, up.At(1, 1).Color)
	assert.False(t, up.At(1, 2).Filled)

	down := g.ShiftRows(-2)
	assert.Equal(t, RGB{1, 0, 0}, down.At(1, 2).Color)
	assert.False(t, down.At(1, 0).Filled)

	assert.True(t, g.ShiftRows(3).IsEmpty())
	assert.Equal(t, g, g.ShiftRows(0))
}

func TestDotGrid_ColorsAndCounts(t *testing.T) {
	t.Parallel()

	g := NewDotGrid(2)
	g.Set(1, 0, RGB{0, 0, 255})
	g.Set(0, 1, RGB{255, 0, 0})
	g.Set(1, 1, RGB{0, 0, 255})

	assert.Equal(t, []RGB{{0, 0, 255}, {255, 0, 0}}, g.Colors())
	assert.Equal(t, map[RGB]int{{0, 0, 255}: 2, {255, 0, 0}: 1}, g.Counts())

	g.Clear(1, 0)
	assert.Equal(t, 1, g.Counts()[RGB{0, 0, 255}])
}

func TestDotGrid_Image(t *testing.T) {
	t.Parallel()

	g := NewDotGrid(2)
	g.Set(1, 1, RGB{10, 20, 30})
	img := g.Image()
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 0))
}
