// Package input описывает управляющие сигналы, которые опрашиваются раз за кадр.
package input

// Signals — управляющие сигналы текущего кадра.
type Signals struct {
	Quit        bool
	PauseToggle bool
}

// Source — неблокирующий источник сигналов.
type Source interface {
	Poll() Signals
}

// Scripted отдаёт заранее заданные сигналы по одному за опрос, затем пустые.
type Scripted struct {
	queue []Signals
}

func NewScripted(signals ...Signals) *Scripted {
	return &Scripted{queue: signals}
}

// Push добавляет сигналы в конец очереди.
func (s *Scripted) Push(signals ...Signals) {
	s.queue = append(s.queue, signals...)
}

func (s *Scripted) Poll() Signals {
	if len(s.queue) == 0 {
		return Signals{}
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next
}
