// internal/state/victory_state.go
package state

import (
	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
)

// VictoryState держит баннер победителя, эффекты доигрывают.
type VictoryState struct {
	sm      *StateMachine
	session *Session
	elapsed float64
}

func NewVictoryState(sm *StateMachine, session *Session) *VictoryState {
	return &VictoryState{sm: sm, session: session}
}

func (s *VictoryState) Phase() component.MatchPhase { return component.PhaseVictory }

func (s *VictoryState) Enter() {}

func (s *VictoryState) Exit() {}

func (s *VictoryState) Update(deltaTime float64) error {
	if s.session.Input.Poll().Quit {
		s.sm.SetState(NewEndedState(s.session))
		return nil
	}
	if _, err := s.session.readFrame(); err != nil {
		return err
	}
	s.session.Game.Settle(deltaTime)
	s.elapsed += deltaTime
	if s.elapsed >= config.VictoryDuration {
		s.sm.SetState(NewEndedState(s.session))
	}
	return nil
}

func (s *VictoryState) Draw(p Painter) {
	p.Scene(s.session.Game.World, false)
	winner, _ := s.session.Game.Winner()
	p.Victory(winner)
}
