package dotart

const (
	// outlineContrast is the Distance above which two neighbors count as a hard boundary.
	outlineContrast = 8000
	// outlineDarken scales a boundary cell's channels.
	outlineDarken = 0.4
)

var neighbors4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// DefaultOutlineColor returns the lowest-luminance color in the grid. The
// first one in raster order wins ties. ok is false for an empty grid.
func DefaultOutlineColor(g DotGrid) (c RGB, ok bool) {
	best := 0.0
	for _, cell := range g.Cells {
		if !cell.Filled {
			continue
		}
		if l := cell.Color.Luminance(); !ok || l < best {
			best, c, ok = l, cell.Color, true
		}
	}
	return c, ok
}

// Outline returns a new grid where filled cells touching an empty neighbor
// take the outline color, and filled cells touching a strongly different
// neighbor are darkened to 40%. Neighbors are 4-connected and cells outside
// the grid are ignored. A nil override uses DefaultOutlineColor.
//
// Outline reads only from g, so results do not depend on scan order.
// Applying it twice darkens boundary cells again; it is meant to run once.
func Outline(g DotGrid, override *RGB) DotGrid {
	out := g.Clone()
	outline, ok := DefaultOutlineColor(g)
	if override != nil {
		outline, ok = *override, true
	}
	if !ok {
		return out
	}

	for y := range g.Size {
		for x := range g.Size {
			cell := g.At(x, y)
			if !cell.Filled {
				continue
			}
			touchesEmpty, contrast := false, false
			for _, d := range neighbors4 {
				nx, ny := x+d[0], y+d[1]
				if !g.inBounds(nx, ny) {
					continue
				}
				n := g.At(nx, ny)
				if !n.Filled {
					touchesEmpty = true
					break
				}
				if Distance(cell.Color, n.Color) > outlineContrast {
					contrast = true
				}
			}
			switch {
			case touchesEmpty:
				out.Set(x, y, outline)
			case contrast:
				out.Set(x, y, cell.Color.Scale(outlineDarken))
			}
		}
	}
	return out
}
