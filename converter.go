package dotart

import (
	"fmt"
	"image"
	"time"
)

// Converter runs the dot art pipeline for one source image. Intermediate
// results stay on the struct after Convert for inspection.
type Converter struct {
	InputImage image.Image
	Palette    Palette
	Buffer     PixelBuffer // decoded source
	Edges      *EdgeMap    // nil unless EdgeEnhance
	Dithered   PixelBuffer // source after the dither pass
	Grid       DotGrid     // final grid, outline applied
	opt        Options
}

func NewConverter(input image.Image, palette Palette) *Converter {
	return &Converter{
		InputImage: input,
		Palette:    palette,
	}
}

// NewConverterFromBuffer skips the image.Image conversion for callers that
// already hold RGBA bytes.
func NewConverterFromBuffer(buf PixelBuffer, palette Palette) *Converter {
	return &Converter{
		Buffer:  buf,
		Palette: palette,
	}
}

func (c *Converter) validate(opt Options) error {
	if len(c.Palette) == 0 {
		return ErrEmptyPalette
	}
	if err := opt.Validate(); err != nil {
		return err
	}
	if err := c.Buffer.Validate(); err != nil {
		return err
	}
	if opt.GridSize > c.Buffer.W || opt.GridSize > c.Buffer.H {
		return fmt.Errorf("%w: grid %d larger than %dx%d source",
			ErrInvalidDimensions, opt.GridSize, c.Buffer.W, c.Buffer.H)
	}
	return nil
}

// Convert runs edge detection, dithering, block sampling and outlining as
// selected by opt. All input is validated before any stage runs; on error
// the zero DotGrid is returned and the converter's results are reset.
func (c *Converter) Convert(opt Options) (DotGrid, error) {
	start := time.Now()
	log := Logger()

	if c.InputImage != nil {
		c.Buffer = NewPixelBuffer(c.InputImage)
	}
	c.Edges, c.Dithered, c.Grid = nil, PixelBuffer{}, DotGrid{}
	if err := c.validate(opt); err != nil {
		return DotGrid{}, err
	}
	c.opt = opt

	if opt.EdgeEnhance {
		edges, err := DetectEdges(c.Buffer)
		if err != nil {
			return DotGrid{}, err
		}
		c.Edges = edges
		log.Debug("dotart: edges detected", "max", c.Edges.Max())
	}

	dithered, err := Dither(c.Buffer, c.Palette, opt.Dither, opt)
	if err != nil {
		return DotGrid{}, err
	}
	c.Dithered = dithered

	grid, err := SampleBlocks(c.Dithered, opt.GridSize, c.Palette, opt.AlphaThreshold, c.Edges, opt.EdgeBoost)
	if err != nil {
		return DotGrid{}, err
	}
	if grid.IsEmpty() {
		log.Warn("dotart: source produced an empty grid", "alphaThreshold", opt.AlphaThreshold)
	}

	if opt.Outline {
		grid = Outline(grid, opt.OutlineColor)
	}
	c.Grid = grid

	log.Debug("dotart: converted",
		"source", fmt.Sprintf("%dx%d", c.Buffer.W, c.Buffer.H),
		"grid", opt.GridSize,
		"dither", opt.Dither.String(),
		"edges", opt.EdgeEnhance,
		"outline", opt.Outline,
		"colors", len(grid.Colors()),
		"elapsed", time.Since(start),
	)
	return grid, nil
}

// Animate builds frames of effect from the last converted grid, using the
// background of the options passed to Convert.
func (c *Converter) Animate(effect Effect) (FrameSequence, error) {
	if c.Grid.Size == 0 {
		return nil, fmt.Errorf("%w: nothing converted yet", ErrInvalidDimensions)
	}
	return Synthesize(c.Grid, effect, c.opt.Background)
}
