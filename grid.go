package dotart

import (
	"image"
	"slices"
)

// Cell is one grid position. Filled is false for transparent cells.
type Cell struct {
	Color  RGB
	Filled bool
}

// DotGrid is a square Size x Size matrix of cells in row-major order.
type DotGrid struct {
	Size  int
	Cells []Cell
}

// NewDotGrid returns an all-empty grid.
func NewDotGrid(size int) DotGrid {
	return DotGrid{Size: size, Cells: make([]Cell, size*size)}
}

// At returns the cell at column x, row y.
func (g DotGrid) At(x, y int) Cell {
	return g.Cells[y*g.Size+x]
}

// Set fills the cell at (x, y) with c.
func (g DotGrid) Set(x, y int, c RGB) {
	g.Cells[y*g.Size+x] = Cell{Color: c, Filled: true}
}

// Clear empties the cell at (x, y).
func (g DotGrid) Clear(x, y int) {
	g.Cells[y*g.Size+x] = Cell{}
}

func (g DotGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// Clone returns a deep copy.
func (g DotGrid) Clone() DotGrid {
	return DotGrid{Size: g.Size, Cells: slices.Clone(g.Cells)}
}

// Equal reports whether both grids have the same size and cells.
func (g DotGrid) Equal(o DotGrid) bool {
	return g.Size == o.Size && slices.Equal(g.Cells, o.Cells)
}

// IsEmpty reports whether no cell is filled.
func (g DotGrid) IsEmpty() bool {
	return !slices.ContainsFunc(g.Cells, func(c Cell) bool { return c.Filled })
}

// Colors returns the distinct filled colors in raster order of first appearance.
func (g DotGrid) Colors() []RGB {
	var out []RGB
	for _, c := range g.Cells {
		if c.Filled && !slices.Contains(out, c.Color) {
			out = append(out, c.Color)
		}
	}
	return out
}

// Counts returns how many cells use each color.
func (g DotGrid) Counts() map[RGB]int {
	counts := make(map[RGB]int)
	for _, c := range g.Cells {
		if c.Filled {
			counts[c.Color]++
		}
	}
	return counts
}

// Rotate90 returns the grid rotated 90 degrees clockwise.
func (g DotGrid) Rotate90() DotGrid {
	out := NewDotGrid(g.Size)
	n := g.Size
	for y := range n {
		for x := range n {
			// Source row y becomes destination column n-1-y.
			out.Cells[x*n+(n-1-y)] = g.Cells[y*n+x]
		}
	}
	return out
}

// ShiftRows moves every row up by dy (down when negative). Rows moved past
// an edge are dropped and vacated rows are empty.
func (g DotGrid) ShiftRows(dy int) DotGrid {
	out := NewDotGrid(g.Size)
	for y := range g.Size {
		ty := y - dy
		if ty < 0 || ty >= g.Size {
			continue
		}
		copy(out.Cells[ty*g.Size:(ty+1)*g.Size], g.Cells[y*g.Size:(y+1)*g.Size])
	}
	return out
}

// Image renders the grid at one pixel per cell. Empty cells are transparent.
func (g DotGrid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Size, g.Size))
	for y := range g.Size {
		for x := range g.Size {
			if c := g.At(x, y); c.Filled {
				img.SetNRGBA(x, y, c.Color.NRGBA(255))
			}
		}
	}
	return img
}
