// internal/ui/text.go
package ui

import (
	"image/color"

	"ar-catcher/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// TextRenderer рисует строки шрифтом из кэша начертаний.
type TextRenderer struct {
	fonts *assets.FontCache
}

func NewTextRenderer(fonts *assets.FontCache) *TextRenderer {
	return &TextRenderer{fonts: fonts}
}

// TextOptions — параметры одной надписи.
type TextOptions struct {
	Size     int
	Color    color.Color
	Alpha    float64 // 0..1, нулевая надпись не рисуется
	Centered bool    // (x, y) — центр надписи, иначе левый верх
}

// Measure возвращает ширину и высоту надписи.
func (r *TextRenderer) Measure(s string, size int) (int, int) {
	face, err := r.fonts.Face(size)
	if err != nil {
		return 0, 0
	}
	b := text.BoundString(face, s)
	return b.Dx(), b.Dy()
}

// Draw рисует строку. Ошибки начертания молча пропускают кадр надписи.
func (r *TextRenderer) Draw(screen *ebiten.Image, s string, x, y float64, opts TextOptions) {
	if opts.Alpha <= 0 {
		return
	}
	face, err := r.fonts.Face(opts.Size)
	if err != nil {
		return
	}
	b := text.BoundString(face, s)
	// text рисует от базовой линии, сдвигаем к левому верху
	dx, dy := x-float64(b.Min.X), y-float64(b.Min.Y)
	if opts.Centered {
		dx -= float64(b.Dx()) / 2
		dy -= float64(b.Dy()) / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	op.ColorScale.ScaleWithColor(clr)
	if opts.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(opts.Alpha))
	}
	text.DrawWithOptions(screen, s, face, op)
}
