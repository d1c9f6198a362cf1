// internal/system/spawner.go
package system

import (
	"math"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/utils"
)

var hazardThresholds = []float64{
	config.HazardSmallShare,
	config.HazardSmallShare + config.HazardFastShare,
}

// SpawnerSystem создаёт новые объекты с фиксированным интервалом игрового времени.
type SpawnerSystem struct {
	world     *entity.World
	rng       utils.RandomSource
	interval  float64
	sinceLast float64
}

// NewSpawnerSystem создаёт спавнер. interval в секундах, должен быть > 0.
func NewSpawnerSystem(world *entity.World, rng utils.RandomSource, interval float64) *SpawnerSystem {
	if interval <= 0 {
		interval = config.DefaultSpawnInterval
	}
	return &SpawnerSystem{world: world, rng: rng, interval: interval}
}

// HazardRateAt — доля бомб после elapsed секунд игры.
// Растёт на HazardRateStep каждые HazardRateInterval секунд, не выше MaxHazardRate.
func HazardRateAt(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	steps := math.Floor(elapsed / config.HazardRateInterval)
	return math.Min(config.MaxHazardRate, config.BaseHazardRate+config.HazardRateStep*steps)
}

// HazardRate — текущая доля бомб.
func (s *SpawnerSystem) HazardRate() float64 {
	return HazardRateAt(s.world.GameTime)
}

// Update копит время и спавнит объект, когда интервал превышен.
func (s *SpawnerSystem) Update(deltaTime float64) {
	s.sinceLast += deltaTime
	if s.sinceLast > s.interval {
		s.world.AddObject(s.Spawn())
		s.sinceLast = 0
	}
}

// ChooseVariant выбирает вариант по текущей доле бомб.
func (s *SpawnerSystem) ChooseVariant(hazardRate float64) defs.Variant {
	r := s.rng.Float64()
	switch {
	case r < hazardRate:
		return defs.Hazards[utils.ChooseCumulative(s.rng.Float64(), hazardThresholds)]
	case r < hazardRate+config.BonusChance:
		return defs.VariantGoldenFruit
	case r < hazardRate+config.BonusChance+config.ShieldChance:
		return defs.VariantShield
	default:
		return defs.CommonFruits[s.rng.Intn(len(defs.CommonFruits))]
	}
}

// Spawn создаёт объект над верхним краем экрана. В мир не добавляет.
func (s *SpawnerSystem) Spawn() *component.FallingObject {
	variant := s.ChooseVariant(s.HazardRate())
	def := variant.Def()
	x := utils.Uniform(s.rng, config.SpawnMarginX, s.world.Width-config.SpawnMarginX)
	return &component.FallingObject{
		Position:  component.Position{X: x, Y: config.SpawnY},
		Radius:    def.Radius,
		VelocityY: utils.Uniform(s.rng, def.Speed.Min, def.Speed.Max),
		Variant:   variant,
		Score:     def.Score,
	}
}
