package dotart

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// PixelBuffer is a row-major RGBA buffer with non-premultiplied 8-bit channels.
type PixelBuffer struct {
	W, H int
	Pix  []uint8 // Interleaved RGBA, len = W*H*4
}

// NewPixelBuffer copies img into a new buffer.
func NewPixelBuffer(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := PixelBuffer{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*4),
	}
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := buf.offset(x, y)
			buf.Pix[off] = c.R
			buf.Pix[off+1] = c.G
			buf.Pix[off+2] = c.B
			buf.Pix[off+3] = c.A
		}
	}
	return buf
}

// Validate checks the length invariant.
func (b PixelBuffer) Validate() error {
	if b.W <= 0 || b.H <= 0 || len(b.Pix) != b.W*b.H*4 {
		return fmt.Errorf("%w: buffer %dx%d with %d bytes", ErrInvalidDimensions, b.W, b.H, len(b.Pix))
	}
	return nil
}

func (b PixelBuffer) offset(x, y int) int {
	return (y*b.W + x) * 4
}

// At returns the RGB and alpha of the pixel at (x, y).
func (b PixelBuffer) At(x, y int) (RGB, uint8) {
	off := b.offset(x, y)
	return RGB{b.Pix[off], b.Pix[off+1], b.Pix[off+2]}, b.Pix[off+3]
}

// Set writes an RGB and alpha at (x, y).
func (b PixelBuffer) Set(x, y int, c RGB, a uint8) {
	off := b.offset(x, y)
	b.Pix[off] = c.R
	b.Pix[off+1] = c.G
	b.Pix[off+2] = c.B
	b.Pix[off+3] = a
}

// Clone returns a deep copy.
func (b PixelBuffer) Clone() PixelBuffer {
	return PixelBuffer{W: b.W, H: b.H, Pix: slices.Clone(b.Pix)}
}

// Image wraps a copy of the buffer as an *image.NRGBA.
func (b PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	copy(img.Pix, b.Pix)
	return img
}

// floatBuffer is the float precision working copy used by error diffusion.
// Values are not clamped until the pass completes.
type floatBuffer struct {
	W, H int
	Pix  []float32 // Interleaved RGBA, len = W*H*4
}

func newFloatBuffer(b PixelBuffer) floatBuffer {
	fb := floatBuffer{
		W:   b.W,
		H:   b.H,
		Pix: make([]float32, len(b.Pix)),
	}
	for i, v := range b.Pix {
		fb.Pix[i] = float32(v)
	}
	return fb
}

func (fb floatBuffer) offset(x, y int) int {
	return (y*fb.W + x) * 4
}

// rgbAt clamps and rounds the working value at off.
func (fb floatBuffer) rgbAt(off int) RGB {
	return RGB{
		R: clampByte(float64(fb.Pix[off])),
		G: clampByte(float64(fb.Pix[off+1])),
		B: clampByte(float64(fb.Pix[off+2])),
	}
}

func (fb floatBuffer) setRGB(off int, c RGB) {
	fb.Pix[off] = float32(c.R)
	fb.Pix[off+1] = float32(c.G)
	fb.Pix[off+2] = float32(c.B)
}

// addError adds w*err to the RGB channels of (x, y) if it lies inside the buffer.
func (fb floatBuffer) addError(x, y int, err [3]float32, w float32) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return
	}
	off := fb.offset(x, y)
	fb.Pix[off] += err[0] * w
	fb.Pix[off+1] += err[1] * w
	fb.Pix[off+2] += err[2] * w
}
