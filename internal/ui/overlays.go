// internal/ui/overlays.go
package ui

import (
	"fmt"
	"image/color"

	"ar-catcher/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const victoryBandHeight = 120

// DrawCountdown рисует метку отсчёта; progress — доля прошедшего шага [0,1].
// Метка слегка уменьшается и гаснет к концу шага.
func DrawCountdown(screen *ebiten.Image, tr *TextRenderer, label string, progress float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := int(config.CountdownSize * (1.2 - 0.2*progress))
	tr.Draw(screen, label, float64(w)/2, float64(h)/2, TextOptions{
		Size:     size,
		Color:    config.TextLightColor,
		Alpha:    1 - 0.6*progress,
		Centered: true,
	})
}

// DrawPauseOverlay затемняет кадр и пишет PAUSED.
func DrawPauseOverlay(screen *ebiten.Image, tr *TextRenderer) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PauseOverlayColor, false)
	tr.Draw(screen, "PAUSED", float64(w)/2, float64(h)/2, TextOptions{
		Size:     config.BannerFontSize,
		Color:    config.TextLightColor,
		Alpha:    1,
		Centered: true,
	})
}

// DrawVictoryBanner рисует тёмную полосу (70%) с именем победителя.
func DrawVictoryBanner(screen *ebiten.Image, tr *TextRenderer, winner int) {
	if winner < 0 || winner >= config.MaxPlayers {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	band := config.VictoryBandColor
	band.A = 178 // 70%
	y := float32(h-victoryBandHeight) / 2
	vector.DrawFilledRect(screen, 0, y, float32(w), victoryBandHeight, band, false)

	var clr color.Color = config.PlayerColors[winner]
	tr.Draw(screen, fmt.Sprintf("PLAYER %d WINS!", winner+1), float64(w)/2, float64(h)/2, TextOptions{
		Size:     config.BannerFontSize,
		Color:    clr,
		Alpha:    1,
		Centered: true,
	})
}
