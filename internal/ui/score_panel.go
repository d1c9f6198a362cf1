// internal/ui/score_panel.go
package ui

import (
	"fmt"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelBorderWidth = 2
	shieldBarHeight  = 5
	shieldIconRadius = 8
)

// ScorePanel — полупрозрачная панель счёта одного игрока.
type ScorePanel struct {
	X, Y          float32
	Width, Height float32
}

// NewScorePanel располагает панель игрока: P1 слева, P2 справа.
func NewScorePanel(player, screenWidth int) *ScorePanel {
	x := float32(config.ScorePanelMargin)
	if player == 1 {
		x = float32(screenWidth - config.ScorePanelWidth - config.ScorePanelMargin)
	}
	return &ScorePanel{
		X:      x,
		Y:      config.ScorePanelMargin,
		Width:  config.ScorePanelWidth,
		Height: config.ScorePanelHeight,
	}
}

// Draw отрисовывает счёт, щит и множитель комбо.
func (p *ScorePanel) Draw(screen *ebiten.Image, tr *TextRenderer, st *component.PlayerStateComponent) {
	playerColor := config.PlayerColors[st.Index]

	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, config.PanelColor, true)
	vector.StrokeRect(screen, p.X, p.Y, p.Width, p.Height, panelBorderWidth, config.PanelStrokeColor, true)

	label := fmt.Sprintf("P%d: %d", st.Index+1, st.Score)
	tr.Draw(screen, label, float64(p.X)+12, float64(p.Y)+12, TextOptions{
		Size:  config.ScoreFontSize,
		Color: playerColor,
		Alpha: 1,
	})

	// Комбо в правом верхнем углу панели
	if st.ComboMultiplier > 1 {
		combo := fmt.Sprintf("x%d", st.ComboMultiplier)
		w, _ := tr.Measure(combo, config.PopupFontSize)
		tr.Draw(screen, combo, float64(p.X+p.Width)-float64(w)-10, float64(p.Y)+14, TextOptions{
			Size:  config.PopupFontSize,
			Color: config.ComboColor,
			Alpha: 1,
		})
	}

	// Щит: значок и полоса оставшегося времени
	if st.ShieldActive {
		cx := p.X + p.Width - shieldIconRadius - 6
		cy := p.Y + p.Height + shieldIconRadius + 4
		vector.DrawFilledCircle(screen, cx, cy, shieldIconRadius, config.ShieldColor, true)

		ratio := float32(st.ShieldTimer / config.ShieldDuration)
		if ratio > 1 {
			ratio = 1
		}
		barWidth := (p.Width - shieldIconRadius*2 - 16) * ratio
		if barWidth > 0 {
			vector.DrawFilledRect(screen, p.X, cy-shieldBarHeight/2, barWidth, shieldBarHeight, config.ShieldColor, true)
		}
	}
}
