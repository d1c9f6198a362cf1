package component

// MatchPhase — фаза матча
type MatchPhase int

const (
	PhaseCountdown MatchPhase = iota
	PhaseActive
	PhasePaused
	PhaseVictory
	PhaseEnded
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseVictory:
		return "victory"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}
