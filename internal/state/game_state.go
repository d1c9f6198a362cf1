// internal/state/game_state.go
package state

import (
	"fmt"

	"ar-catcher/internal/capture"
	"ar-catcher/internal/component"
)

// GameState — активная фаза: кадр → руки → тик симуляции.
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Phase() component.MatchPhase { return component.PhaseActive }

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) error {
	signals := g.session.Input.Poll()
	if signals.Quit {
		g.sm.SetState(NewEndedState(g.session))
		return nil
	}
	if signals.PauseToggle {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	frame, err := g.session.readFrame()
	if err != nil {
		return err
	}
	hands, err := g.session.Tracker.Detect(frame)
	if err != nil {
		return fmt.Errorf("hand detection: %w", err)
	}

	w, h := g.session.Width, g.session.Height
	game := g.session.Game
	game.SetHands(capture.SkeletonsFromHands(hands, w, h))
	if game.Tick(deltaTime, capture.CursorsFromHands(hands, w, h)) {
		g.sm.SetState(NewVictoryState(g.sm, g.session))
	}
	return nil
}

func (g *GameState) Draw(p Painter) {
	p.Scene(g.session.Game.World, false)
}
