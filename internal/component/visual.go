package component

import (
	"image/color"

	"ar-catcher/internal/defs"
)

// AmbientParticle — фоновая частица, живёт всю сессию и падает по кругу.
type AmbientParticle struct {
	Position
	Radius float64
	Speed  float64
	Color  color.RGBA
}

// Popup — всплывающая надпись, поднимается и гаснет за TTL.
type Popup struct {
	Position
	Text  string
	Color color.RGBA
	Scale float64
	Life  float64
	TTL   float64
}

// Progress — доля прожитой жизни, 0..1.
func (p *Popup) Progress() float64 {
	return lifeProgress(p.Life, p.TTL)
}

// Alpha — прозрачность надписи, линейно убывает.
func (p *Popup) Alpha() float64 {
	return 1 - p.Progress()
}

// BurstParticle — частица вспышки (взрыв, разбитый щит, аура, искры).
type BurstParticle struct {
	Kind defs.BurstKind
	Position
	Vel   Velocity
	Size  float64
	Color color.RGBA
	Life  float64
	TTL   float64
}

// CurrentSize — размер с учётом оставшейся доли жизни.
func (b *BurstParticle) CurrentSize() float64 {
	return b.Size * (1 - lifeProgress(b.Life, b.TTL))
}

// Alpha — прозрачность частицы.
func (b *BurstParticle) Alpha() float64 {
	return 1 - lifeProgress(b.Life, b.TTL)
}

// ScreenEffects — полноэкранная вспышка и тряска камеры.
type ScreenEffects struct {
	FlashColor     color.RGBA
	FlashTimer     float64
	FlashDuration  float64
	ShakeIntensity float64
}

// FlashAlpha возвращает текущую силу вспышки.
func (s *ScreenEffects) FlashAlpha(peak float64) float64 {
	if s.FlashTimer <= 0 || s.FlashDuration <= 0 {
		return 0
	}
	return peak * s.FlashTimer / s.FlashDuration
}

func lifeProgress(life, ttl float64) float64 {
	if ttl <= 0 {
		return 1
	}
	p := life / ttl
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
