// internal/assets/background.go
package assets

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// LoadBackground reads the backdrop and blows it up by scale with
// nearest-neighbour sampling, keeping the pixel-art look.
func LoadBackground(path string, scale int) (image.Image, error) {
	src, err := loadImage(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	return Upscale(src, scale), nil
}

// Upscale returns src enlarged by an integer factor. A factor below 2 returns
// src itself.
func Upscale(src image.Image, scale int) image.Image {
	if scale < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
