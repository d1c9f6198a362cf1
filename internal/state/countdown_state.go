// internal/state/countdown_state.go
package state

import (
	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/event"
)

var countdownLabels = [...]string{"3", "2", "1", "GO"}

// CountdownState показывает отсчёт поверх живого кадра, симуляция стоит.
type CountdownState struct {
	sm      *StateMachine
	session *Session
	step    int
	elapsed float64
}

func NewCountdownState(sm *StateMachine, session *Session) *CountdownState {
	return &CountdownState{sm: sm, session: session}
}

func (s *CountdownState) Phase() component.MatchPhase { return component.PhaseCountdown }

func (s *CountdownState) Enter() {
	s.step, s.elapsed = 0, 0
	s.announce()
}

func (s *CountdownState) Exit() {}

// Label возвращает текущую метку отсчёта.
func (s *CountdownState) Label() string {
	return countdownLabels[s.step]
}

func (s *CountdownState) Update(deltaTime float64) error {
	if s.session.Input.Poll().Quit {
		s.sm.SetState(NewEndedState(s.session))
		return nil
	}
	if _, err := s.session.readFrame(); err != nil {
		return err
	}
	s.session.Game.Idle(deltaTime)

	s.elapsed += deltaTime
	for s.elapsed >= config.CountdownStepDuration {
		s.elapsed -= config.CountdownStepDuration
		s.step++
		if s.step >= len(countdownLabels) {
			s.sm.SetState(NewGameState(s.sm, s.session))
			return nil
		}
		s.announce()
	}
	return nil
}

func (s *CountdownState) announce() {
	s.session.Game.EventDispatcher.Dispatch(event.Event{
		Type: event.CountdownTick,
		Data: &event.CountdownData{Label: s.Label(), Final: s.step == len(countdownLabels)-1},
	})
}

func (s *CountdownState) Draw(p Painter) {
	p.Scene(s.session.Game.World, false)
	p.Countdown(s.Label(), s.elapsed/config.CountdownStepDuration)
}
