package capture

import (
	"image"

	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
)

// Landmark — нормализованная (0..1) точка руки.
type Landmark struct {
	X, Y float64
}

// Hand — фиксированный упорядоченный набор точек одной руки.
type Hand [config.HandLandmarks]Landmark

// HandTracker находит руки на кадре.
type HandTracker interface {
	Detect(frame image.Image) ([]Hand, error)
}

// HandConnections — рёбра скелета руки для отрисовки.
var HandConnections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 5}, {5, 6}, {6, 7}, {7, 8},
	{5, 9}, {9, 10}, {10, 11}, {11, 12},
	{9, 13}, {13, 14}, {14, 15}, {15, 16},
	{13, 17}, {0, 17}, {17, 18}, {18, 19}, {19, 20},
}

// ToPixels переводит точки руки в пиксели кадра.
func (h *Hand) ToPixels(width, height int) []component.Position {
	out := make([]component.Position, len(h))
	for i, lm := range h {
		out[i] = component.Position{
			X: float64(int(lm.X * float64(width))),
			Y: float64(int(lm.Y * float64(height))),
		}
	}
	return out
}

// CursorsFromHands берёт кончик указательного пальца каждой руки.
// Рука i принадлежит игроку i; руки сверх MaxPlayers игнорируются.
func CursorsFromHands(hands []Hand, width, height int) []component.Cursor {
	n := min(len(hands), config.MaxPlayers)
	cursors := make([]component.Cursor, 0, n)
	for i := 0; i < n; i++ {
		tip := hands[i][config.IndexFingerTip]
		cursors = append(cursors, component.Cursor{
			X:      float64(int(tip.X * float64(width))),
			Y:      float64(int(tip.Y * float64(height))),
			Player: i,
		})
	}
	return cursors
}

// SkeletonsFromHands переводит до MaxPlayers рук в пиксели.
func SkeletonsFromHands(hands []Hand, width, height int) [][]component.Position {
	n := min(len(hands), config.MaxPlayers)
	out := make([][]component.Position, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, hands[i].ToPixels(width, height))
	}
	return out
}

// SyntheticHand строит правдоподобную кисть вокруг кончика пальца (tipX, tipY).
func SyntheticHand(tipX, tipY float64) Hand {
	var h Hand
	const s = 0.02
	// Запястье ниже кончика, пальцы веером.
	wristX, wristY := tipX, tipY+8*s
	h[0] = Landmark{wristX, wristY}
	fingers := [5]float64{-2.2, -0.2, 0.6, 1.4, 2.1}
	for f := 0; f < 5; f++ {
		for j := 1; j <= 4; j++ {
			t := float64(j) / 4
			h[1+f*4+j-1] = Landmark{
				X: wristX + fingers[f]*s*t*1.5,
				Y: wristY - 8*s*t*(0.8+0.05*float64(f%3)),
			}
		}
	}
	h[config.IndexFingerTip] = Landmark{tipX, tipY}
	return h
}
