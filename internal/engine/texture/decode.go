package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// DecodeFile reads and decodes an image file into RGBA pixels, flipped
// vertically so row 0 is the bottom row as OpenGL UV space expects.
func DecodeFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	rgba := toRGBA(img)
	FlipVertical(rgba)
	return rgba, nil
}

// toRGBA converts any decoded image to *image.RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// FlipVertical mirrors the image rows in place.
func FlipVertical(img *image.RGBA) {
	bounds := img.Bounds()
	height := bounds.Dy()
	rowSize := bounds.Dx() * 4

	tmp := make([]byte, rowSize)
	for y := 0; y < height/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottom := img.Pix[(height-1-y)*img.Stride : (height-1-y)*img.Stride+rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
