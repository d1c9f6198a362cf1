package capture

import (
	"image"
	"image/color"
	"math"
)

// SyntheticCamera рисует анимированный градиент вместо реальной камеры.
type SyntheticCamera struct {
	width, height int
	frame         int
	closed        bool
}

// NewSyntheticCamera создаёт камеру-заглушку заданного разрешения.
func NewSyntheticCamera(width, height int) *SyntheticCamera {
	return &SyntheticCamera{width: width, height: height}
}

func (c *SyntheticCamera) Read() (image.Image, error) {
	if c.closed {
		return nil, ErrCameraClosed
	}
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	phase := float64(c.frame) / 120
	for y := 0; y < c.height; y++ {
		v := float64(y) / float64(c.height)
		r := uint8(30 + 25*math.Sin(2*math.Pi*(v+phase)))
		g := uint8(40 + 20*v)
		b := uint8(70 + 30*math.Cos(2*math.Pi*(v-phase)))
		row := img.Pix[y*img.Stride : y*img.Stride+c.width*4]
		for x := 0; x < c.width; x++ {
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 255
		}
	}
	// Тонкая вертикальная полоса: по ней видно отражение кадра.
	band := c.frame * 4 % c.width
	for y := 0; y < c.height; y++ {
		for x := band; x < band+6 && x < c.width; x++ {
			img.SetRGBA(x, y, color.RGBA{200, 200, 220, 255})
		}
	}
	c.frame++
	return img, nil
}

func (c *SyntheticCamera) Close() error {
	c.closed = true
	return nil
}
