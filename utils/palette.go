package utils

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/dotart"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod maps "kmeans" to PaletteMethodKMeans and anything else to
// PaletteMethodDominantColor.
func ParsePaletteMethod(s string) PaletteMethod {
	if s == PaletteMethodKMeans.String() {
		return PaletteMethodKMeans
	}
	return PaletteMethodDominantColor
}

type weightedColor struct {
	Col    colorful.Color
	Weight float64
}

// SortPaletteByBrightness orders colors from darkest to brightest by relative
// luminance. Equal colors keep their order.
func SortPaletteByBrightness(palette dotart.Palette) {
	slices.SortStableFunc(palette, func(a, b dotart.RGB) int {
		ri, gi, bi := a.Colorful().LinearRgb()
		rj, gj, bj := b.Colorful().LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

func ExtractDominantPalette(img image.Image, k int) dotart.Palette {
	if k <= 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Never hand an empty palette to the quantizer.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		weighted = append(weighted, weightedColor{Col: col.Clamped(), Weight: w})
	}
	return selectDiverseWeightedColors(weighted, k)
}

// selectDiverseWeightedColors seeds with the heaviest candidate and then
// repeatedly adds the color farthest from everything chosen so far, measured
// with dotart.Distance so picks are spread the way the quantizer sees them.
// Heavier candidates get up to a 45% bonus. Colors that collapse to the same
// 8-bit value are considered once.
func selectDiverseWeightedColors(cands []weightedColor, k int) dotart.Palette {
	if k <= 0 || len(cands) == 0 {
		return nil
	}

	var (
		rgbs    []dotart.RGB
		weights []float64
		heavy   float64
	)
	for _, c := range cands {
		rgb := dotart.FromColorful(c.Col)
		if slices.Contains(rgbs, rgb) {
			continue
		}
		w := max(c.Weight, 1e-6)
		heavy = max(heavy, w)
		rgbs = append(rgbs, rgb)
		weights = append(weights, w)
	}

	seed := 0
	for i, w := range weights {
		if w > weights[seed] {
			seed = i
		}
	}
	out := dotart.Palette{rgbs[seed]}

	// gap[i] is the distance from rgbs[i] to its nearest chosen color; a
	// negative gap marks a color already chosen.
	gap := make([]float64, len(rgbs))
	for i, c := range rgbs {
		gap[i] = dotart.Distance(c, rgbs[seed])
	}
	gap[seed] = -1

	for len(out) < min(k, len(rgbs)) {
		pick, best := -1, -1.0
		for i, d := range gap {
			if d < 0 {
				continue
			}
			score := math.Sqrt(d) * (0.55 + 0.45*math.Sqrt(weights[i]/heavy))
			if score > best {
				pick, best = i, score
			}
		}
		out = append(out, rgbs[pick])
		gap[pick] = -1
		for i, d := range gap {
			if d > 0 {
				gap[i] = min(d, dotart.Distance(rgbs[i], rgbs[pick]))
			}
		}
	}
	return out
}

// ExtractKMeansPalette clusters the pixels of img whose alpha reaches
// alphaThreshold and returns k diverse cluster centers. Pass the same
// threshold the block sampler uses so dropped pixels do not skew the palette.
func ExtractKMeansPalette(img image.Image, k int, alphaThreshold uint8) dotart.Palette {
	b := img.Bounds()
	if k <= 0 || b.Empty() {
		return nil
	}

	const sampleBudget = 12000
	area := b.Dx() * b.Dy()
	step := 1
	if area > sampleBudget {
		step = int(math.Sqrt(float64(area)/sampleBudget)) + 1
	}

	var dataset clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A < alphaThreshold {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(n.R) / 255,
				float64(n.G) / 255,
				float64(n.B) / 255,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	// Over-cluster, then let the diversity pass choose among the centers.
	cc, err := kmeans.New().Partition(dataset, min(max(k*4, k+2), len(dataset)))
	if err != nil {
		return nil
	}

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{Col: col, Weight: float64(len(c.Observations))})
	}
	return selectDiverseWeightedColors(weighted, k)
}

// ExtractPalette derives a k color palette from img. The kmeans method ignores
// pixels below the default sampling alpha threshold and falls back to
// dominantcolor when clustering yields nothing.
func ExtractPalette(img image.Image, k int, method PaletteMethod) dotart.Palette {
	switch method {
	case PaletteMethodKMeans:
		p := ExtractKMeansPalette(img, k, dotart.DefaultOptions().AlphaThreshold)
		if len(p) != 0 {
			return p
		}
		dotart.Logger().Warn("palette: kmeans returned empty palette, falling back to dominantcolor")
		return ExtractDominantPalette(img, k)
	default:
		return ExtractDominantPalette(img, k)
	}
}
