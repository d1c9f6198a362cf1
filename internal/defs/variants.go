// internal/defs/variants.go
package defs

import (
	"fmt"
	"image/color"
)

// VariantDefinition содержит все статические данные варианта объекта.
type VariantDefinition struct {
	Name       string
	Class      Class
	Radius     float64
	Score      int
	Speed      SpeedRange
	Erratic    bool // боковое дрожание при падении
	SpriteName string
	Burst      BurstProfile
}

var (
	puffProfile = BurstProfile{
		Kind: BurstCatchPuff, Count: 8, MinSpeed: 40, MaxSpeed: 110,
		MinSize: 2, MaxSize: 4, TTL: 0.4,
		Colors: [2]color.RGBA{{255, 255, 255, 255}, {255, 240, 200, 255}},
	}
	sparkleProfile = BurstProfile{
		Kind: BurstSparkle, Count: 16, MinSpeed: 60, MaxSpeed: 180,
		MinSize: 2, MaxSize: 5, TTL: 0.7,
		Colors: [2]color.RGBA{{255, 215, 0, 255}, {255, 255, 180, 255}},
	}
	auraProfile = BurstProfile{
		Kind: BurstPowerUpAura, Count: 24, MinSpeed: 90, MaxSpeed: 120,
		MinSize: 3, MaxSize: 5, TTL: 0.6,
		Colors: [2]color.RGBA{{80, 200, 255, 255}, {160, 230, 255, 255}},
	}
	explosionProfile = BurstProfile{
		Kind: BurstExplosion, Count: 18, MinSpeed: 80, MaxSpeed: 240,
		MinSize: 3, MaxSize: 7, TTL: 0.6,
		Colors: [2]color.RGBA{{255, 140, 0, 255}, {255, 220, 60, 255}},
	}
	megaExplosionProfile = BurstProfile{
		Kind: BurstExplosion, Count: 36, MinSpeed: 100, MaxSpeed: 320,
		MinSize: 5, MaxSize: 11, TTL: 0.8,
		Colors: [2]color.RGBA{{255, 40, 20, 255}, {255, 120, 0, 255}},
	}

	// ShieldBreakProfile используется, когда щит поглощает бомбу.
	ShieldBreakProfile = BurstProfile{
		Kind: BurstShieldBreak, Count: 20, MinSpeed: 70, MaxSpeed: 200,
		MinSize: 2, MaxSize: 5, TTL: 0.5,
		Colors: [2]color.RGBA{{80, 200, 255, 255}, {255, 255, 255, 255}},
	}
)

// VariantDefs — таблица вариантов, индекс совпадает с тегом Variant.
var VariantDefs = [VariantCount]VariantDefinition{
	VariantApple: {
		Name: "apple", Class: ClassBenign, Radius: 26, Score: 1,
		Speed: SpeedRange{120, 220}, SpriteName: "apple", Burst: puffProfile,
	},
	VariantOrange: {
		Name: "orange", Class: ClassBenign, Radius: 32, Score: 1,
		Speed: SpeedRange{120, 220}, SpriteName: "orange", Burst: puffProfile,
	},
	VariantPear: {
		Name: "pear", Class: ClassBenign, Radius: 26, Score: 1,
		Speed: SpeedRange{130, 230}, SpriteName: "pear", Burst: puffProfile,
	},
	VariantGoldenFruit: {
		Name: "golden_fruit", Class: ClassBonus, Radius: 24, Score: 3,
		Speed: SpeedRange{180, 260}, SpriteName: "golden_fruit", Burst: sparkleProfile,
	},
	VariantShield: {
		Name: "shield", Class: ClassPowerUp, Radius: 28, Score: 0,
		Speed: SpeedRange{110, 170}, SpriteName: "shield", Burst: auraProfile,
	},
	VariantBombSmall: {
		Name: "bomb_small", Class: ClassHazard, Radius: 28, Score: -2,
		Speed: SpeedRange{120, 220}, SpriteName: "bomb", Burst: explosionProfile,
	},
	VariantBombFast: {
		Name: "bomb_fast", Class: ClassHazard, Radius: 22, Score: -2,
		Speed: SpeedRange{260, 360}, Erratic: true, SpriteName: "bomb_fast", Burst: explosionProfile,
	},
	VariantBombMega: {
		Name: "bomb_mega", Class: ClassHazard, Radius: 40, Score: -3,
		Speed: SpeedRange{80, 140}, Erratic: true, SpriteName: "bomb_mega", Burst: megaExplosionProfile,
	},
}

// CommonFruits — варианты, из которых равновероятно выбирается обычный фрукт.
var CommonFruits = [...]Variant{VariantApple, VariantOrange, VariantPear}

// Hazards — варианты бомб в порядке подвыбора: малая, быстрая, мега.
var Hazards = [...]Variant{VariantBombSmall, VariantBombFast, VariantBombMega}

// Def возвращает определение варианта.
func (v Variant) Def() *VariantDefinition {
	return &VariantDefs[v]
}

// Valid сообщает, принадлежит ли тег закрытому набору.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return VariantDefs[v].Name
}

// IsHazard сообщает, штрафует ли вариант при касании.
func (v Variant) IsHazard() bool {
	return VariantDefs[v].Class == ClassHazard
}

// VariantByName ищет вариант по имени из таблицы.
func VariantByName(name string) (Variant, bool) {
	for i := range VariantDefs {
		if VariantDefs[i].Name == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// SpriteNames возвращает уникальные имена спрайтов всех вариантов.
func SpriteNames() []string {
	seen := make(map[string]bool, VariantCount)
	names := make([]string, 0, VariantCount)
	for i := range VariantDefs {
		name := VariantDefs[i].SpriteName
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
