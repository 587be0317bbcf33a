package dotart

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Palette is an ordered set of output colors. Order only matters for
// tie-breaking in Quantize.
type Palette []RGB

// NewPalette builds a palette from colors, dropping duplicates while keeping
// first-seen order.
func NewPalette(colors ...RGB) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	p := make(Palette, 0, len(colors))
	for _, c := range colors {
		if !slices.Contains(p, c) {
			p = append(p, c)
		}
	}
	return p, nil
}

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(hexes ...string) (Palette, error) {
	colors := make([]RGB, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("dotart: palette entry %q: %w", h, err)
		}
		colors = append(colors, c)
	}
	return NewPalette(colors...)
}

// Quantize returns the palette color closest to c under Distance.
// The first entry wins ties.
func (p Palette) Quantize(c RGB) (RGB, error) {
	if len(p) == 0 {
		return RGB{}, ErrEmptyPalette
	}
	return p.nearest(c), nil
}

// nearest assumes a non-empty palette; the pipeline validates once at entry.
func (p Palette) nearest(c RGB) RGB {
	best := p[0]
	bestDist := math.Inf(1)
	for _, pc := range p {
		d := Distance(c, pc)
		if d < bestDist {
			bestDist = d
			best = pc
		}
	}
	return best
}

// Contains reports whether c is one of the palette colors.
func (p Palette) Contains(c RGB) bool {
	return slices.Contains(p, c)
}

// Hex returns the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

func mustPalette(hexes ...string) Palette {
	p, err := ParsePalette(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Preset palettes.
var (
	Mono       = mustPalette("#000000", "#ffffff")
	Grayscale4 = mustPalette("#000000", "#555555", "#aaaaaa", "#ffffff")
	GameBoy    = mustPalette("#0f380f", "#306230", "#8bac0f", "#9bbc0f")
	CGA        = mustPalette("#000000", "#55ffff", "#ff55ff", "#ffffff")
	Pico8      = mustPalette(
		"#000000", "#1d2b53", "#7e2553", "#008751",
		"#ab5236", "#5f574f", "#c2c3c7", "#fff1e8",
		"#ff004d", "#ffa300", "#ffec27", "#00e436",
		"#29adff", "#83769c", "#ff77a8", "#ffccaa",
	)
)

var presets = map[string]Palette{
	"mono":       Mono,
	"grayscale4": Grayscale4,
	"gameboy":    GameBoy,
	"cga":        CGA,
	"pico8":      Pico8,
}

// Preset returns a copy of the named preset palette.
func Preset(name string) (Palette, bool) {
	p, ok := presets[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(p), true
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
