package component

import (
	"ar-catcher/internal/defs"
	"ar-catcher/internal/types"
	"ar-catcher/internal/utils"
)

// FallingObject — падающий объект на игровом поле.
type FallingObject struct {
	Position
	ID        types.EntityID
	Radius    float64
	VelocityY float64 // всегда положительная скорость вниз
	Variant   defs.Variant
	Score     int
}

// IsOffScreen сообщает, ушёл ли объект целиком за нижний край.
func (o *FallingObject) IsOffScreen(screenHeight float64) bool {
	return o.Y-o.Radius > screenHeight
}

// Contains — проверка попадания точки в круг объекта (по квадрату расстояния).
func (o *FallingObject) Contains(x, y float64) bool {
	return utils.DistSq(x, y, o.X, o.Y) <= o.Radius*o.Radius
}
