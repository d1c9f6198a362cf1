// internal/defs/types.go
package defs

import "image/color"

// Variant — закрытый набор падающих объектов.
type Variant int

const (
	VariantApple Variant = iota
	VariantOrange
	VariantPear
	VariantGoldenFruit
	VariantShield
	VariantBombSmall
	VariantBombFast
	VariantBombMega
	variantCount
)

// VariantCount — количество вариантов в таблице.
const VariantCount = int(variantCount)

// Class определяет, как разрешается столкновение с объектом.
type Class int

const (
	ClassBenign Class = iota
	ClassBonus
	ClassPowerUp
	ClassHazard
)

// BurstKind — тип вспышки частиц при событии.
type BurstKind int

const (
	BurstCatchPuff BurstKind = iota
	BurstSparkle
	BurstPowerUpAura
	BurstShieldBreak
	BurstExplosion
)

// SpeedRange — диапазон скорости падения, px/s.
type SpeedRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BurstProfile задаёт параметры облака частиц.
type BurstProfile struct {
	Kind     BurstKind
	Count    int
	MinSpeed float64
	MaxSpeed float64
	MinSize  float64
	MaxSize  float64
	TTL      float64
	Colors   [2]color.RGBA // цвет частицы выбирается случайно из двух
}
