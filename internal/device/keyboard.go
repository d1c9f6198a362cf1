// Package device реализует источники ввода поверх ebiten.
package device

import (
	"ar-catcher/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardSource читает Q/Escape как выход и P/Space как паузу.
type KeyboardSource struct{}

func (KeyboardSource) Poll() input.Signals {
	return input.Signals{
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		PauseToggle: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
