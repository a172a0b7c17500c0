package image

import (
	"image"

	"golang.org/x/image/draw"
)

var (
	// ImageSurface is the largest drawing surface used for still images.
	ImageSurface = image.Pt(800, 600)

	// VideoSurface is the largest drawing surface used for video frames.
	VideoSurface = image.Pt(400, 300)
)

// SurfaceSize clamps each dimension of size to the matching limit.
func SurfaceSize(size, limit image.Point) image.Point {
	return image.Pt(min(size.X, limit.X), min(size.Y, limit.Y))
}

// Surface draws img onto a new non-premultiplied RGBA surface whose width and
// height are independently clamped to limit. An image larger than the limit in
// one dimension is stretched to fit rather than letterboxed.
func Surface(img image.Image, limit image.Point) *image.NRGBA {
	size := SurfaceSize(img.Bounds().Size(), limit)
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	if size.X <= 0 || size.Y <= 0 {
		return dst
	}

	if size == img.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
		return dst
	}

	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
