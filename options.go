package dotart

import (
	"fmt"
	"image"
	"math"
)

type Options struct {
	// Side length of the output grid in cells. Typical values: 8, 16, 32, 64.
	// Must not exceed the source width or height.
	GridSize int
	// Full-resolution dithering pass run before block sampling.
	Dither DitherMode
	// Weight block averages by Sobel edge strength.
	// Keeps thin high-contrast details from bleeding into neighbor cells.
	EdgeEnhance bool
	// Darken silhouette and strong color boundaries after sampling.
	Outline bool
	// Outline color override. Nil picks the darkest color present in the grid.
	OutlineColor *RGB
	// Mean block alpha below this makes the cell empty. Default 30.
	// Raise toward 128 to drop soft anti-aliased fringes.
	AlphaThreshold uint8
	// Pixels with alpha below this are skipped by the dither pass. Default 128.
	DitherAlphaThreshold uint8
	// Total bias range of the ordered dither, 64 means +-32 per channel.
	// Ideal start: 32-96. Higher => stronger crosshatch.
	OrderedSpread float64
	// Extra weight given to edge pixels in edge-weighted sampling. Default 2.5.
	// 0 degenerates to plain averaging.
	EdgeBoost float64
	// Background used by the fade effect and by compositing collaborators.
	Background RGB
}

func DefaultOptions() Options {
	return Options{
		GridSize:             32,
		Dither:               DitherNone,
		AlphaThreshold:       30,
		DitherAlphaThreshold: 128,
		OrderedSpread:        64,
		EdgeBoost:            2.5,
		Background:           RGB{255, 255, 255},
	}
}

// OptionsFromSize picks a grid size suited to a source of the given size.
func OptionsFromSize(size image.Point) Options {
	opt := DefaultOptions()
	if size.X <= 0 || size.Y <= 0 {
		return opt
	}
	side := min(size.X, size.Y)
	switch {
	case side <= 64:
		opt.GridSize = 16
	case side <= 512:
		opt.GridSize = 32
	default:
		opt.GridSize = 64
	}
	opt.GridSize = min(opt.GridSize, side)
	return opt
}

// Validate checks option ranges that do not depend on the source buffer.
func (o Options) Validate() error {
	if o.GridSize <= 0 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidDimensions, o.GridSize)
	}
	if o.Dither < DitherNone || o.Dither > DitherOrdered {
		return fmt.Errorf("dotart: invalid dither mode %d", o.Dither)
	}
	if !finiteNonNegative(o.OrderedSpread) || !finiteNonNegative(o.EdgeBoost) {
		return fmt.Errorf("dotart: spread %v and edge boost %v must be finite and non-negative", o.OrderedSpread, o.EdgeBoost)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
