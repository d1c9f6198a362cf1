package event

import "ar-catcher/internal/defs"

const (
	Caught        EventType = "Caught"        // Пойман фрукт или бонус
	HazardHit     EventType = "HazardHit"     // Бомба без щита
	ShieldBlocked EventType = "ShieldBlocked" // Щит поглотил бомбу
	ShieldPicked  EventType = "ShieldPicked"  // Подобран щит
	MatchWon      EventType = "MatchWon"      // Кто-то набрал Goal
	PhaseChanged  EventType = "PhaseChanged"  // Смена фазы матча
	CountdownTick EventType = "CountdownTick" // Новая метка обратного отсчёта
)

// CatchData — данные о разрешённом столкновении.
type CatchData struct {
	Player     int
	Variant    defs.Variant
	Delta      int
	Multiplier int
	X, Y       float64
}

// WinData — данные о победе.
type WinData struct {
	Player int
	Score  int
}

// PhaseData — смена фазы матча.
type PhaseData struct {
	From, To string
}

// CountdownData — метка отсчёта; Final для "GO".
type CountdownData struct {
	Label string
	Final bool
}
