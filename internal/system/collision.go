// internal/system/collision.go
package system

import (
	"fmt"
	"log/slog"
	"sort"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/event"
	"ar-catcher/internal/types"
)

// Claim — объект, захваченный курсором на этом тике.
type Claim struct {
	Cursor component.Cursor
	Object *component.FallingObject
}

// CollisionSystem сопоставляет курсоры с объектами и применяет результат касания.
type CollisionSystem struct {
	world      *entity.World
	effects    *EffectSystem
	dispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, effects *EffectSystem, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, effects: effects, dispatcher: dispatcher}
}

// CollectClaims строит захваты по снимку живых объектов.
// Курсоры обходятся по возрастанию индекса игрока; каждый берёт первый
// незанятый объект, в радиус которого попадает. Мир не меняется.
func (s *CollisionSystem) CollectClaims(cursors []component.Cursor) []Claim {
	ordered := make([]component.Cursor, len(cursors))
	copy(ordered, cursors)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Player < ordered[j].Player })

	snapshot := s.world.Objects
	taken := make(map[types.EntityID]bool, len(ordered))
	claims := make([]Claim, 0, len(ordered))
	for _, c := range ordered {
		if c.Player < 0 || c.Player >= len(s.world.Players) {
			continue
		}
		for _, obj := range snapshot {
			if taken[obj.ID] || !obj.Contains(c.X, c.Y) {
				continue
			}
			taken[obj.ID] = true
			claims = append(claims, Claim{Cursor: c, Object: obj})
			break
		}
	}
	return claims
}

// Resolve применяет захваты тика и удаляет захваченные объекты одним проходом.
// После появления победителя оставшиеся захваты отбрасываются.
func (s *CollisionSystem) Resolve(cursors []component.Cursor) []Claim {
	if s.world.HasWinner() {
		return nil
	}
	claims := s.CollectClaims(cursors)
	applied := claims[:0]
	removed := make(map[types.EntityID]bool, len(claims))
	for _, cl := range claims {
		if s.world.HasWinner() {
			break
		}
		s.apply(cl)
		removed[cl.Object.ID] = true
		applied = append(applied, cl)
		s.checkWinner(cl.Cursor.Player)
	}
	s.world.RemoveObjects(removed)
	return applied
}

func (s *CollisionSystem) apply(cl Claim) {
	player := s.world.Players[cl.Cursor.Player]
	obj := cl.Object
	def := obj.Variant.Def()
	x, y := cl.Cursor.X, cl.Cursor.Y

	switch def.Class {
	case defs.ClassHazard:
		if player.ShieldActive {
			player.ConsumeShield()
			s.effects.SpawnBurst(x, y, defs.ShieldBreakProfile)
			s.effects.AddPopup(x, y, "BLOCKED", config.ShieldColor, 1)
			s.publish(event.ShieldBlocked, player.Index, obj, 0, player.ComboMultiplier)
			return
		}
		player.Score += obj.Score
		player.ResetCombo()
		s.effects.SpawnBurst(x, y, def.Burst)
		s.effects.Flash(config.FlashColor, config.FlashAlpha*config.ShakeFactor*def.Radius/defs.VariantBombSmall.Def().Radius)
		s.effects.AddPopup(x, y, fmt.Sprintf("%d", obj.Score), config.HazardPopupColor, 1)
		s.publish(event.HazardHit, player.Index, obj, obj.Score, player.ComboMultiplier)

	case defs.ClassPowerUp:
		player.ShieldActive = true
		player.ShieldTimer = config.ShieldDuration
		s.effects.SpawnBurst(x, y, def.Burst)
		s.effects.AddPopup(x, y, "SHIELD", config.ShieldColor, 1)
		s.publish(event.ShieldPicked, player.Index, obj, 0, player.ComboMultiplier)

	case defs.ClassBonus, defs.ClassBenign:
		delta := obj.Score * player.ComboMultiplier
		player.Score += delta
		if player.ComboMultiplier < config.MaxCombo {
			player.ComboMultiplier++
		}
		player.ComboTimer = config.ComboDuration
		s.effects.SpawnBurst(x, y, def.Burst)

		popupColor, scale := config.PlayerColors[player.Index], 1.0
		if def.Class == defs.ClassBonus {
			popupColor, scale = config.ComboColor, 1.4
		}
		s.effects.AddPopup(x, y, fmt.Sprintf("+%d x%d", delta, player.ComboMultiplier), popupColor, scale)
		s.publish(event.Caught, player.Index, obj, delta, player.ComboMultiplier)
	}
}

func (s *CollisionSystem) checkWinner(player int) {
	p := s.world.Players[player]
	if p.Score < config.Goal || !s.world.SetWinner(player) {
		return
	}
	slog.Info("match won", "player", player+1, "score", p.Score, "game_time", s.world.GameTime)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: event.MatchWon, Data: &event.WinData{Player: player, Score: p.Score}})
	}
}

func (s *CollisionSystem) publish(t event.EventType, player int, obj *component.FallingObject, delta, mult int) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: t, Data: &event.CatchData{
		Player:     player,
		Variant:    obj.Variant,
		Delta:      delta,
		Multiplier: mult,
		X:          obj.X,
		Y:          obj.Y,
	}})
}
