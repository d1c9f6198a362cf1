// internal/system/effects.go
package system

import (
	"image/color"
	"math"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/utils"
)

// EffectSystem управляет фоновыми частицами, всплывающими надписями,
// облаками частиц и полноэкранными эффектами.
type EffectSystem struct {
	world *entity.World
	rng   utils.RandomSource
}

// NewEffectSystem создает новую систему визуальных эффектов.
func NewEffectSystem(world *entity.World, rng utils.RandomSource) *EffectSystem {
	return &EffectSystem{world: world, rng: rng}
}

// InitAmbient заполняет поле фоновыми частицами. Их число не меняется до конца сессии.
func (s *EffectSystem) InitAmbient(count int) {
	s.world.Ambient = make([]*component.AmbientParticle, 0, count)
	for i := 0; i < count; i++ {
		s.world.Ambient = append(s.world.Ambient, &component.AmbientParticle{
			Position: component.Position{
				X: utils.Uniform(s.rng, 0, s.world.Width),
				Y: utils.Uniform(s.rng, 0, s.world.Height),
			},
			Radius: float64(utils.IntRange(s.rng, 1, 3)),
			Speed:  utils.Uniform(s.rng, 20, 40),
			Color:  config.AmbientColor,
		})
	}
}

// Update продвигает все пулы эффектов на deltaTime.
func (s *EffectSystem) Update(deltaTime float64) {
	s.updateAmbient(deltaTime)
	s.updatePopups(deltaTime)
	s.updateBursts(deltaTime)
	s.updateScreen(deltaTime)
}

// UpdateAmbient двигает только фоновые частицы (обратный отсчёт, победа).
func (s *EffectSystem) UpdateAmbient(deltaTime float64) {
	s.updateAmbient(deltaTime)
}

func (s *EffectSystem) updateAmbient(deltaTime float64) {
	for _, p := range s.world.Ambient {
		p.Y += p.Speed * deltaTime
		if p.Y-p.Radius > s.world.Height {
			p.Y = -p.Radius
			p.X = utils.Uniform(s.rng, 0, s.world.Width)
		}
	}
}

func (s *EffectSystem) updatePopups(deltaTime float64) {
	kept := s.world.Popups[:0]
	for _, p := range s.world.Popups {
		p.Life += deltaTime
		if p.Life > p.TTL {
			continue
		}
		kept = append(kept, p)
	}
	clear(s.world.Popups[len(kept):])
	s.world.Popups = kept
}

func (s *EffectSystem) updateBursts(deltaTime float64) {
	kept := s.world.Bursts[:0]
	for _, b := range s.world.Bursts {
		b.Life += deltaTime
		if b.Life > b.TTL {
			continue
		}
		b.X += b.Vel.X * deltaTime
		b.Y += b.Vel.Y * deltaTime
		kept = append(kept, b)
	}
	clear(s.world.Bursts[len(kept):])
	s.world.Bursts = kept
}

func (s *EffectSystem) updateScreen(deltaTime float64) {
	scr := &s.world.Screen
	if scr.FlashTimer > 0 {
		scr.FlashTimer = math.Max(0, scr.FlashTimer-deltaTime)
	}
	if scr.ShakeIntensity > 0 {
		scr.ShakeIntensity = math.Max(0, scr.ShakeIntensity-config.ShakeDecay*deltaTime)
	}
}

// AddPopup ставит в очередь всплывающую надпись.
func (s *EffectSystem) AddPopup(x, y float64, text string, clr color.RGBA, scale float64) {
	s.world.Popups = append(s.world.Popups, &component.Popup{
		Position: component.Position{X: x, Y: y},
		Text:     text,
		Color:    clr,
		Scale:    scale,
		TTL:      config.PopupTTL,
	})
}

// SpawnBurst выпускает облако частиц по профилю.
func (s *EffectSystem) SpawnBurst(x, y float64, profile defs.BurstProfile) {
	for i := 0; i < profile.Count; i++ {
		var angle float64
		if profile.Kind == defs.BurstPowerUpAura {
			// Аура расходится ровным кольцом
			angle = 2 * math.Pi * float64(i) / float64(profile.Count)
		} else {
			angle = utils.Uniform(s.rng, 0, 2*math.Pi)
		}
		speed := utils.Uniform(s.rng, profile.MinSpeed, profile.MaxSpeed)
		s.world.Bursts = append(s.world.Bursts, &component.BurstParticle{
			Kind:     profile.Kind,
			Position: component.Position{X: x, Y: y},
			Vel:      component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:     utils.Uniform(s.rng, profile.MinSize, profile.MaxSize),
			Color:    profile.Colors[s.rng.Intn(len(profile.Colors))],
			TTL:      profile.TTL,
		})
	}
}

// Flash запускает полноэкранную вспышку и тряску.
func (s *EffectSystem) Flash(clr color.RGBA, shake float64) {
	scr := &s.world.Screen
	scr.FlashColor = clr
	scr.FlashTimer = config.FlashDuration
	scr.FlashDuration = config.FlashDuration
	scr.ShakeIntensity = math.Max(scr.ShakeIntensity, shake)
}
