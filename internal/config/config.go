// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.25 // Ограничение шага после долгой блокировки камеры
	MaxPlayers   = 2

	Goal = 15 // Очки для победы

	DefaultSpawnInterval = 0.8 // секунды игрового времени
	SpawnY               = -20.0
	SpawnMarginX         = 20

	BaseHazardRate     = 0.4
	HazardRateStep     = 0.05
	HazardRateInterval = 30.0 // секунды между повышениями
	MaxHazardRate      = 0.7
	BonusChance        = 0.05
	ShieldChance       = 0.03

	HazardSmallShare = 0.5 // Кумулятивные пороги подвыбора бомбы
	HazardFastShare  = 0.3

	ErraticJitter = 20.0 // px/s, боковое дрожание

	ShieldDuration = 8.0
	ComboDuration  = 5.0
	MaxCombo       = 5

	CountdownStepDuration = 0.8
	VictoryDuration       = 3.0

	AmbientParticleCount = 60
	AmbientOverlayAlpha  = 0.15
	PopupTTL             = 1.0
	PopupRise            = 40.0

	FlashAlpha    = 0.4
	FlashDuration = 0.3
	ShakeDecay    = 20.0
	ShakeFactor   = 15.0

	IndexFingerTip = 8 // ID кончика указательного пальца
	HandLandmarks  = 21

	ScorePanelWidth  = 220
	ScorePanelHeight = 60
	ScorePanelMargin = 10
	ScoreFontSize    = 36
	PopupFontSize    = 30
	CountdownSize    = 120
	BannerFontSize   = 72
)

var (
	// P1 красный, P2 зелёный.
	PlayerColors = [MaxPlayers]color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
	}
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	PanelColor        = color.RGBA{0, 0, 0, 110}
	PanelStrokeColor  = color.RGBA{255, 255, 255, 255}
	HazardPopupColor  = color.RGBA{255, 40, 40, 255}
	ShieldColor       = color.RGBA{80, 200, 255, 255}
	ComboColor        = color.RGBA{255, 215, 0, 255}
	FlashColor        = color.RGBA{255, 0, 0, 255}
	VictoryBandColor  = color.RGBA{0, 0, 0, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	AmbientColor      = color.RGBA{255, 255, 255, 255}
)
