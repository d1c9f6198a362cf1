// internal/system/movement.go
package system

import (
	"ar-catcher/internal/config"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/types"
	"ar-catcher/internal/utils"
)

// MovementSystem двигает падающие объекты и убирает ушедшие за край
type MovementSystem struct {
	world *entity.World
	rng   utils.RandomSource
}

func NewMovementSystem(world *entity.World, rng utils.RandomSource) *MovementSystem {
	return &MovementSystem{world: world, rng: rng}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var gone map[types.EntityID]bool
	for _, obj := range s.world.Objects {
		obj.Y += obj.VelocityY * deltaTime
		if obj.Variant.Def().Erratic {
			obj.X += utils.Uniform(s.rng, -config.ErraticJitter, config.ErraticJitter) * deltaTime
		}
		if obj.IsOffScreen(s.world.Height) {
			if gone == nil {
				gone = make(map[types.EntityID]bool)
			}
			gone[obj.ID] = true
		}
	}
	s.world.RemoveObjects(gone)
}
