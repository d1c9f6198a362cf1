package assets

import (
	"image"
	"image/color"
	"math"

	"ar-catcher/internal/defs"
)

const builtinSpriteSize = 128

// BuiltinSpriteLibrary рисует простые спрайты для всех вариантов,
// когда каталог со спрайтами не задан.
func BuiltinSpriteLibrary() *SpriteLibrary {
	lib := newSpriteLibrary()
	for i := 0; i < defs.VariantCount; i++ {
		def := defs.Variant(i).Def()
		if lib.Has(def.SpriteName) {
			continue
		}
		lib.originals[def.SpriteName] = drawBuiltin(defs.Variant(i))
	}
	return lib
}

func drawBuiltin(v defs.Variant) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, builtinSpriteSize, builtinSpriteSize))
	body, accent := builtinColors(v)
	c := float64(builtinSpriteSize) / 2
	r := c - 4
	for y := 0; y < builtinSpriteSize; y++ {
		for x := 0; x < builtinSpriteSize; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			clr := body
			// Блик в левом верхнем углу
			if math.Hypot(dx+r*0.35, dy+r*0.35) < r*0.25 {
				clr = accent
			}
			// Мягкий край
			if edge := r - d; edge < 2 {
				clr.A = uint8(float64(clr.A) * edge / 2)
			}
			img.SetNRGBA(x, y, clr)
		}
	}
	if v.IsHazard() {
		// Фитиль бомбы
		for y := 0; y < 10; y++ {
			img.SetNRGBA(int(c)+y/3, y, color.NRGBA{255, 180, 0, 255})
		}
	}
	return img
}

func builtinColors(v defs.Variant) (color.NRGBA, color.NRGBA) {
	switch v {
	case defs.VariantApple:
		return color.NRGBA{220, 30, 40, 255}, color.NRGBA{255, 160, 160, 255}
	case defs.VariantOrange:
		return color.NRGBA{255, 140, 0, 255}, color.NRGBA{255, 210, 140, 255}
	case defs.VariantPear:
		return color.NRGBA{170, 210, 60, 255}, color.NRGBA{230, 250, 170, 255}
	case defs.VariantGoldenFruit:
		return color.NRGBA{255, 215, 0, 255}, color.NRGBA{255, 255, 220, 255}
	case defs.VariantShield:
		return color.NRGBA{60, 160, 255, 255}, color.NRGBA{200, 240, 255, 255}
	case defs.VariantBombSmall:
		return color.NRGBA{40, 40, 40, 255}, color.NRGBA{140, 140, 140, 255}
	case defs.VariantBombFast:
		return color.NRGBA{90, 20, 110, 255}, color.NRGBA{200, 140, 220, 255}
	case defs.VariantBombMega:
		return color.NRGBA{120, 10, 10, 255}, color.NRGBA{230, 120, 120, 255}
	}
	return color.NRGBA{255, 0, 255, 255}, color.NRGBA{255, 255, 255, 255}
}
