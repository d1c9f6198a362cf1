// internal/app/game.go
package app

import (
	"log/slog"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/event"
	"ar-catcher/internal/system"
	"ar-catcher/internal/utils"
)

// Options — параметры новой сессии.
type Options struct {
	Width, Height float64
	SpawnInterval float64            // секунды; 0 — значение по умолчанию
	Rng           utils.RandomSource // nil — PRNGService с сидом Seed
	Seed          int64
}

// Game holds the match state and the simulation systems.
type Game struct {
	World           *entity.World
	SpawnerSystem   *system.SpawnerSystem
	MovementSystem  *system.MovementSystem
	PowerUpSystem   *system.PowerUpSystem
	CollisionSystem *system.CollisionSystem
	EffectSystem    *system.EffectSystem
	EventDispatcher *event.Dispatcher
	Rng             utils.RandomSource
}

// NewGame initializes a new session.
func NewGame(opts Options) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.ScreenWidth, config.ScreenHeight
	}
	if opts.SpawnInterval <= 0 {
		opts.SpawnInterval = config.DefaultSpawnInterval
	}
	rng := opts.Rng
	if rng == nil {
		prng := utils.NewPRNGService(opts.Seed)
		slog.Debug("random source seeded", "seed", prng.Seed())
		rng = prng
	}

	world := entity.NewWorld(opts.Width, opts.Height)
	dispatcher := event.NewDispatcher()
	effects := system.NewEffectSystem(world, rng)
	g := &Game{
		World:           world,
		SpawnerSystem:   system.NewSpawnerSystem(world, rng, opts.SpawnInterval),
		MovementSystem:  system.NewMovementSystem(world, rng),
		PowerUpSystem:   system.NewPowerUpSystem(world),
		CollisionSystem: system.NewCollisionSystem(world, effects, dispatcher),
		EffectSystem:    effects,
		EventDispatcher: dispatcher,
		Rng:             rng,
	}
	effects.InitAmbient(config.AmbientParticleCount)
	return g
}

// Tick выполняет один активный шаг симуляции:
// спавн → движение → усиления → столкновения → эффекты → проверка победы.
// Возвращает true, если на этом шаге определился победитель.
func (g *Game) Tick(deltaTime float64, cursors []component.Cursor) bool {
	if g.World.HasWinner() {
		g.EffectSystem.Update(deltaTime)
		return false
	}
	g.World.GameTime += deltaTime
	g.SpawnerSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.PowerUpSystem.Update(deltaTime)
	g.World.Cursors = cursors
	g.CollisionSystem.Resolve(cursors)
	g.EffectSystem.Update(deltaTime)
	return g.World.HasWinner()
}

// Idle продвигает только фоновые частицы (обратный отсчёт).
func (g *Game) Idle(deltaTime float64) {
	g.EffectSystem.UpdateAmbient(deltaTime)
}

// Settle доигрывает уже запущенные эффекты без симуляции (экран победы).
func (g *Game) Settle(deltaTime float64) {
	g.EffectSystem.Update(deltaTime)
}

// SetHands сохраняет скелеты рук в пикселях для отрисовки.
func (g *Game) SetHands(hands [][]component.Position) {
	g.World.Hands = hands
}

// Winner возвращает индекс победителя и признак его наличия.
func (g *Game) Winner() (int, bool) {
	return g.World.Winner, g.World.HasWinner()
}
