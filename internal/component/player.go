package component

// PlayerStateComponent хранит очки и таймеры усилений одного игрока.
// Инварианты: ShieldActive ⇔ ShieldTimer > 0; 1 ≤ ComboMultiplier ≤ MaxCombo;
// ComboMultiplier > 1 ⇒ ComboTimer > 0.
type PlayerStateComponent struct {
	Index           int
	Score           int
	ShieldActive    bool
	ShieldTimer     float64
	ComboMultiplier int
	ComboTimer      float64
}

// NewPlayerState создаёт игрока без усилений.
func NewPlayerState(index int) *PlayerStateComponent {
	return &PlayerStateComponent{Index: index, ComboMultiplier: 1}
}

// ResetCombo сбрасывает множитель и его таймер.
func (p *PlayerStateComponent) ResetCombo() {
	p.ComboMultiplier = 1
	p.ComboTimer = 0
}

// ConsumeShield гасит щит в том же шаге разрешения.
func (p *PlayerStateComponent) ConsumeShield() {
	p.ShieldActive = false
	p.ShieldTimer = 0
}

// Cursor — кончик пальца игрока на текущем кадре.
type Cursor struct {
	X, Y   float64
	Player int
}
