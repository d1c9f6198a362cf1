// internal/state/state.go
package state

import (
	"log/slog"

	"ar-catcher/internal/component"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/event"
)

// Painter рисует кадр; реализуется рендерером, привязанным к экрану.
type Painter interface {
	// Scene рисует мир; frozen — кадр остановленного матча, без новой тряски.
	Scene(w *entity.World, frozen bool)
	Countdown(label string, progress float64)
	Paused()
	Victory(winner int)
}

// State — интерфейс для всех состояний матча
type State interface {
	Phase() component.MatchPhase
	Enter()
	Update(deltaTime float64) error
	Draw(p Painter)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current    State
	dispatcher *event.Dispatcher
}

// NewStateMachine создаёт машину без начального состояния.
// Смены фаз публикуются в dispatcher, если он задан.
func NewStateMachine(dispatcher *event.Dispatcher) *StateMachine {
	return &StateMachine{dispatcher: dispatcher}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	from := "none"
	if sm.current != nil {
		from = sm.current.Phase().String()
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	to := sm.current.Phase().String()
	slog.Info("phase changed", "from", from, "to", to)
	if sm.dispatcher != nil {
		sm.dispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: &event.PhaseData{From: from, To: to}})
	}
	sm.current.Enter()
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(p Painter) {
	if sm.current != nil {
		sm.current.Draw(p)
	}
}

// Finished сообщает, что матч завершён и цикл можно останавливать.
func (sm *StateMachine) Finished() bool {
	return sm.current != nil && sm.current.Phase() == component.PhaseEnded
}
