package device

import (
	"image"

	"ar-catcher/internal/capture"
	"ar-catcher/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

const steerStep = 0.012 // доля экрана за кадр

// PointerTracker заменяет оценщик позы: рука игрока 1 следует за мышью,
// рука игрока 2 управляется стрелками и появляется после первого нажатия.
type PointerTracker struct {
	width, height int
	second        capture.Landmark
	secondActive  bool
}

func NewPointerTracker(width, height int) *PointerTracker {
	return &PointerTracker{
		width:  width,
		height: height,
		second: capture.Landmark{X: 0.75, Y: 0.5},
	}
}

func (t *PointerTracker) Detect(_ image.Image) ([]capture.Hand, error) {
	var hands []capture.Hand

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < t.width && my < t.height {
		hands = append(hands, capture.SyntheticHand(float64(mx)/float64(t.width), float64(my)/float64(t.height)))
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= steerStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += steerStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= steerStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += steerStep
	}
	if dx != 0 || dy != 0 {
		t.secondActive = true
		t.second.X = utils.Clamp(t.second.X+dx, 0, 1)
		t.second.Y = utils.Clamp(t.second.Y+dy, 0, 1)
	}
	if t.secondActive {
		if len(hands) == 0 {
			// Без мыши стрелочная рука остаётся рукой второго игрока.
			hands = append(hands, capture.SyntheticHand(-1, -1))
		}
		hands = append(hands, capture.SyntheticHand(t.second.X, t.second.Y))
	}
	return hands, nil
}
