// internal/state/pause_state.go
package state

import "ar-catcher/internal/component"

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч: ни симуляции, ни чтения камеры.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Phase() component.MatchPhase { return component.PhasePaused }

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update(deltaTime float64) error {
	signals := s.previous.session.Input.Poll()
	switch {
	case signals.Quit:
		s.sm.SetState(NewEndedState(s.previous.session))
	case signals.PauseToggle:
		s.sm.SetState(s.previous)
	}
	return nil
}

// Draw оставляет на экране последний кадр с надписью PAUSED.
func (s *PauseState) Draw(p Painter) {
	p.Scene(s.previous.session.Game.World, true)
	p.Paused()
}
