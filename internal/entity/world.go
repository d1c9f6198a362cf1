package entity

import (
	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/types"
)

// World — состояние матча: живые объекты, игроки, пулы эффектов.
// Всё создаётся в начале сессии и принадлежит только ей.
type World struct {
	Width, Height float64
	GameTime      float64
	NextID        types.EntityID
	Objects       []*component.FallingObject
	Players       [config.MaxPlayers]*component.PlayerStateComponent
	Ambient       []*component.AmbientParticle
	Popups        []*component.Popup
	Bursts        []*component.BurstParticle
	Screen        component.ScreenEffects
	Cursors       []component.Cursor // курсоры последнего тика, только для отрисовки
	Hands         [][]component.Position
	Winner        int // -1, пока никто не набрал Goal
}

// NewWorld создаёт пустой мир заданного размера.
func NewWorld(width, height float64) *World {
	w := &World{
		Width:  width,
		Height: height,
		NextID: 1,
		Winner: -1,
	}
	for i := range w.Players {
		w.Players[i] = component.NewPlayerState(i)
	}
	return w
}

// NewEntity выдаёт новый идентификатор.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddObject регистрирует падающий объект.
func (w *World) AddObject(obj *component.FallingObject) {
	obj.ID = w.NewEntity()
	w.Objects = append(w.Objects, obj)
}

// RemoveObjects удаляет объекты с указанными ID, сохраняя порядок остальных.
func (w *World) RemoveObjects(ids map[types.EntityID]bool) {
	if len(ids) == 0 {
		return
	}
	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		if !ids[obj.ID] {
			kept = append(kept, obj)
		}
	}
	for i := len(kept); i < len(w.Objects); i++ {
		w.Objects[i] = nil
	}
	w.Objects = kept
}

// HasWinner сообщает, завершён ли матч победой.
func (w *World) HasWinner() bool {
	return w.Winner >= 0
}

// SetWinner фиксирует первого победителя; повторные вызовы ничего не меняют.
func (w *World) SetWinner(player int) bool {
	if w.HasWinner() {
		return false
	}
	w.Winner = player
	return true
}
