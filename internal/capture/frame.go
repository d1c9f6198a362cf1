package capture

import (
	"image"

	"golang.org/x/image/draw"
)

// PrepareFrame приводит кадр к размеру поля и зеркалит его по горизонтали,
// чтобы движение руки совпадало с направлением на экране.
func PrepareFrame(src image.Image, width, height int) *image.RGBA {
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
	MirrorInPlace(scaled)
	return scaled
}

// MirrorInPlace отражает изображение слева направо.
func MirrorInPlace(img *image.RGBA) {
	b := img.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+w*4]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			li, ri := l*4, r*4
			for k := 0; k < 4; k++ {
				row[li+k], row[ri+k] = row[ri+k], row[li+k]
			}
		}
	}
}
