// pkg/render/layout.go
package render

import (
	"image"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/utils"
)

// spriteRect — прямоугольник спрайта объекта на экране w×h.
// ok=false, если спрайт не помещается в кадр целиком: такой объект не рисуется.
func spriteRect(obj *component.FallingObject, w, h int) (image.Rectangle, bool) {
	size := int(obj.Radius * 2)
	if size <= 0 {
		return image.Rectangle{}, false
	}
	x0, y0 := int(obj.X-obj.Radius), int(obj.Y-obj.Radius)
	r := image.Rect(x0, y0, x0+size, y0+size)
	return r, r.In(image.Rect(0, 0, w, h))
}

// shakeOffset — смещение сцены при тряске.
// Замороженный кадр повторяет прошлое смещение, иначе пауза дрожала бы.
func shakeOffset(rng utils.RandomSource, intensity float64, frozen bool, last component.Position) component.Position {
	if frozen {
		return last
	}
	if intensity <= 0 {
		return component.Position{}
	}
	return component.Position{
		X: utils.Uniform(rng, -intensity, intensity),
		Y: utils.Uniform(rng, -intensity, intensity),
	}
}

// popupY — высота всплывающей надписи: поднимается на PopupRise за жизнь.
func popupY(p *component.Popup) float64 {
	return utils.Lerp(p.Y, p.Y-config.PopupRise, p.Progress())
}
