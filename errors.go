package dotart

import "errors"

var (
	// ErrEmptyPalette is returned when a palette has no colors.
	ErrEmptyPalette = errors.New("dotart: empty palette")
	// ErrInvalidDimensions is returned for a non-positive grid size, a grid
	// larger than the source buffer or a buffer whose Pix length does not match W*H*4.
	ErrInvalidDimensions = errors.New("dotart: invalid dimensions")
	// ErrUpstreamDecode marks failures of the image decoder that feeds the pipeline.
	// The core never produces it; decoders wrap their error with it.
	ErrUpstreamDecode = errors.New("dotart: upstream decode failure")
	// ErrUnknownEffect is returned by Synthesize for an effect it does not know.
	ErrUnknownEffect = errors.New("dotart: unknown effect")
)
