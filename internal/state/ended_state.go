// internal/state/ended_state.go
package state

import (
	"log/slog"

	"ar-catcher/internal/component"
)

// EndedState — конечное состояние; камера освобождается при входе.
type EndedState struct {
	session *Session
}

func NewEndedState(session *Session) *EndedState {
	return &EndedState{session: session}
}

func (s *EndedState) Phase() component.MatchPhase { return component.PhaseEnded }

func (s *EndedState) Enter() {
	if err := s.session.Close(); err != nil {
		slog.Warn("failed to release camera", "error", err)
	}
	players := s.session.Game.World.Players
	winner, _ := s.session.Game.Winner()
	slog.Info("match ended", "winner", winner, "p1", players[0].Score, "p2", players[1].Score)
}

func (s *EndedState) Exit() {}

func (s *EndedState) Update(float64) error { return nil }

func (s *EndedState) Draw(p Painter) {
	p.Scene(s.session.Game.World, true)
}
