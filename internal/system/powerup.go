package system

import "ar-catcher/internal/entity"

// PowerUpSystem ведёт таймеры щита и комбо у каждого игрока.
// Подсистемы независимы: игрок может быть одновременно под щитом и в комбо.
type PowerUpSystem struct {
	world *entity.World
}

func NewPowerUpSystem(world *entity.World) *PowerUpSystem {
	return &PowerUpSystem{world: world}
}

func (s *PowerUpSystem) Update(deltaTime float64) {
	for _, p := range s.world.Players {
		if p.ShieldActive {
			p.ShieldTimer -= deltaTime
			if p.ShieldTimer <= 0 {
				p.ConsumeShield()
			}
		}
		if p.ComboTimer > 0 {
			p.ComboTimer -= deltaTime
			if p.ComboTimer <= 0 {
				p.ResetCombo()
			}
		}
	}
}
