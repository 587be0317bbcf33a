package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"github.com/setanarut/dotart"
	"golang.org/x/image/draw"
)

// Shape is how a filled cell is drawn.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "square"
}

// ParseShape maps "circle" to ShapeCircle and anything else to ShapeSquare.
func ParseShape(s string) Shape {
	if s == ShapeCircle.String() {
		return ShapeCircle
	}
	return ShapeSquare
}

// circleMask is an alpha mask of a disc inscribed in a size x size square.
func circleMask(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := range size {
		for x := range size {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				m.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return m
}

// RenderGrid draws every cell as a cellSize square or circle. Empty cells and
// the corners around circles show bg, or stay transparent when bg is nil.
func RenderGrid(g dotart.DotGrid, cellSize int, shape Shape, bg *dotart.RGB) *image.NRGBA {
	cellSize = max(1, cellSize)
	side := g.Size * cellSize
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.Color(*bg)), image.Point{}, draw.Src)
	}

	var mask image.Image
	if shape == ShapeCircle {
		mask = circleMask(cellSize)
	}
	for y := range g.Size {
		for x := range g.Size {
			c := g.At(x, y)
			if !c.Filled {
				continue
			}
			r := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			src := image.NewUniform(color.Color(c.Color))
			if mask == nil {
				draw.Draw(img, r, src, image.Point{}, draw.Src)
			} else {
				draw.DrawMask(img, r, src, image.Point{}, mask, image.Point{}, draw.Over)
			}
		}
	}
	return img
}

// gifPalette collects the colors of one frame. Index 0 is transparent.
func gifPalette(g dotart.DotGrid, bg *dotart.RGB) color.Palette {
	pal := color.Palette{color.Transparent}
	if bg != nil {
		pal = append(pal, color.Color(*bg))
	}
	for _, c := range g.Colors() {
		pal = append(pal, color.Color(c))
	}
	return pal
}

// EncodeFrames rasterizes every frame and wraps them in a looping GIF. Each
// frame gets its own local palette.
func EncodeFrames(frames dotart.FrameSequence, cellSize int, shape Shape, bg *dotart.RGB, delay time.Duration) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", dotart.ErrInvalidDimensions)
	}
	centis := max(1, int(delay/(10*time.Millisecond)))
	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		rgba := RenderGrid(f.Grid, cellSize, shape, bg)
		pal := gifPalette(f.Grid, bg)
		if len(pal) > 256 {
			pal = pal[:256]
		}
		frame := image.NewPaletted(rgba.Bounds(), pal)
		draw.Draw(frame, frame.Bounds(), rgba, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, centis)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}
	return anim, nil
}

// SaveGIF writes frames as an animated GIF. A delay of 100ms suits every effect.
func SaveGIF(frames dotart.FrameSequence, cellSize int, shape Shape, bg *dotart.RGB, delay time.Duration, filename string) error {
	anim, err := EncodeFrames(frames, cellSize, shape, bg, delay)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, anim)
}
