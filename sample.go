package dotart

import "fmt"

// blockSpan returns the [lo, hi) pixel range of block i. The last block
// runs to the image edge so remainder pixels are not dropped.
func blockSpan(i, gridSize, blockSize, imageSize int) (int, int) {
	lo := i * blockSize
	hi := lo + blockSize
	if i == gridSize-1 {
		hi = imageSize
	}
	return lo, hi
}

// SampleBlocks downsamples buf into a gridSize x gridSize DotGrid.
//
// Each cell averages a floor(W/gridSize) x floor(H/gridSize) block. A block
// whose mean alpha is below alphaThreshold becomes empty; otherwise its mean
// color is quantized to pal. When edges is non-nil every pixel's color is
// weighted by 1 + edgeBoost*edge/255 and the sum is divided by the total
// weight instead of the pixel count. The alpha test stays unweighted.
func SampleBlocks(buf PixelBuffer, gridSize int, pal Palette, alphaThreshold uint8, edges *EdgeMap, edgeBoost float64) (DotGrid, error) {
	if len(pal) == 0 {
		return DotGrid{}, ErrEmptyPalette
	}
	if err := buf.Validate(); err != nil {
		return DotGrid{}, err
	}
	if gridSize <= 0 || gridSize > buf.W || gridSize > buf.H {
		return DotGrid{}, fmt.Errorf("%w: grid %d for %dx%d buffer", ErrInvalidDimensions, gridSize, buf.W, buf.H)
	}
	if edges != nil && (edges.W != buf.W || edges.H != buf.H) {
		return DotGrid{}, fmt.Errorf("%w: edge map %dx%d for %dx%d buffer", ErrInvalidDimensions, edges.W, edges.H, buf.W, buf.H)
	}

	bw, bh := buf.W/gridSize, buf.H/gridSize
	grid := NewDotGrid(gridSize)
	for gy := range gridSize {
		y0, y1 := blockSpan(gy, gridSize, bh, buf.H)
		for gx := range gridSize {
			x0, x1 := blockSpan(gx, gridSize, bw, buf.W)

			var r, g, b, a, wsum float64
			count := 0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					off := buf.offset(x, y)
					w := 1.0
					if edges != nil {
						w = 1 + edgeBoost*(edges.At(x, y)/255)
					}
					r += float64(buf.Pix[off]) * w
					g += float64(buf.Pix[off+1]) * w
					b += float64(buf.Pix[off+2]) * w
					a += float64(buf.Pix[off+3])
					wsum += w
					count++
				}
			}
			if a/float64(count) < float64(alphaThreshold) {
				continue
			}
			mean := RGB{
				R: clampByte(r / wsum),
				G: clampByte(g / wsum),
				B: clampByte(b / wsum),
			}
			grid.Set(gx, gy, pal.nearest(mean))
		}
	}
	return grid, nil
}
