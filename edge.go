package dotart

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	sobelX = mat.NewDense(3, 3, []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	})
	sobelY = mat.NewDense(3, 3, []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	})
)

// EdgeMap is a per-pixel edge strength field in [0,255].
type EdgeMap struct {
	W, H int
	Mag  []float64 // len = W*H
}

// At returns the edge strength at (x, y).
func (e *EdgeMap) At(x, y int) float64 {
	return e.Mag[y*e.W+x]
}

// Max returns the strongest edge value.
func (e *EdgeMap) Max() float64 {
	if len(e.Mag) == 0 {
		return 0
	}
	return floats.Max(e.Mag)
}

// DetectEdges computes Sobel magnitudes over the BT.601 luminance of buf.
// The one pixel border is left at zero. Magnitudes are rescaled so the
// strongest edge is exactly 255; a flat image stays all zero.
func DetectEdges(buf PixelBuffer) (*EdgeMap, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	w, h := buf.W, buf.H
	lum := make([]float64, w*h)
	for y := range h {
		for x := range w {
			off := buf.offset(x, y)
			lum[y*w+x] = 0.299*float64(buf.Pix[off]) +
				0.587*float64(buf.Pix[off+1]) +
				0.114*float64(buf.Pix[off+2])
		}
	}

	em := &EdgeMap{W: w, H: h, Mag: make([]float64, w*h)}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var gx, gy float64
			for ky := range 3 {
				for kx := range 3 {
					l := lum[(y+ky-1)*w+(x+kx-1)]
					gx += sobelX.At(ky, kx) * l
					gy += sobelY.At(ky, kx) * l
				}
			}
			em.Mag[y*w+x] = math.Sqrt(gx*gx + gy*gy)
		}
	}

	// v/peak is at most 1 after rounding, so the product cannot pass 255.
	if peak := em.Max(); peak > 0 {
		for i, v := range em.Mag {
			em.Mag[i] = v / peak * 255
		}
	}
	return em, nil
}
