package utils

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/setanarut/dotart"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes png, jpeg, gif, bmp or webp from path. Open and decoder
// failures are both wrapped with dotart.ErrUpstreamDecode.
func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dotart.ErrUpstreamDecode, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dotart.ErrUpstreamDecode, path, err)
	}
	return img, nil
}

// FitSquare scales img to fit a side x side transparent canvas, keeping the
// aspect ratio and centering it. smooth selects CatmullRom over nearest neighbor.
func FitSquare(img image.Image, side int, smooth bool) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))
	b := img.Bounds()
	if side <= 0 || b.Empty() {
		return canvas
	}
	scale := float64(side) / float64(max(b.Dx(), b.Dy()))
	w := max(1, int(float64(b.Dx())*scale+0.5))
	h := max(1, int(float64(b.Dy())*scale+0.5))
	x0 := (side - w) / 2
	y0 := (side - h) / 2
	dr := image.Rect(x0, y0, x0+w, y0+h)

	var interp draw.Interpolator = draw.NearestNeighbor
	if smooth {
		interp = draw.CatmullRom
	}
	interp.Scale(canvas, dr, img, b, draw.Src, nil)
	return canvas
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SavePalette writes one tileSize square swatch per palette color.
func SavePalette(palette dotart.Palette, tileSize int, filename string) error {
	if len(palette) == 0 {
		return dotart.ErrEmptyPalette
	}
	return SaveImage(PaletteImage(palette, tileSize), filename)
}

func PaletteImage(palette dotart.Palette, tileSize int) *image.NRGBA {
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r := image.Rect(i*tileSize, 0, (i+1)*tileSize, tileSize)
		draw.Draw(img, r, image.NewUniform(color.Color(c)), image.Point{}, draw.Src)
	}
	return img
}
