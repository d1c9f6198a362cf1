// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// VariantOverride — запись из JSON-файла, меняющая числа варианта.
// Набор вариантов и их поведение из файла не меняются.
type VariantOverride struct {
	Name   string      `json:"name"`
	Radius *float64    `json:"radius,omitempty"`
	Score  *int        `json:"score,omitempty"`
	Speed  *SpeedRange `json:"speed,omitempty"`
}

// LoadVariantOverrides читает файл переопределений и применяет его к VariantDefs.
func LoadVariantOverrides(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read variant overrides file: %w", err)
	}

	var overrides []VariantOverride
	if err := json.Unmarshal(file, &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal variant overrides: %w", err)
	}

	if err := ApplyOverrides(overrides); err != nil {
		return err
	}
	slog.Info("loaded variant overrides", "path", path, "count", len(overrides))
	return nil
}

// ApplyOverrides проверяет все записи и только потом применяет их.
func ApplyOverrides(overrides []VariantOverride) error {
	targets := make([]Variant, len(overrides))
	for i, o := range overrides {
		v, ok := VariantByName(o.Name)
		if !ok {
			return fmt.Errorf("unknown variant %q", o.Name)
		}
		if o.Radius != nil && *o.Radius <= 0 {
			return fmt.Errorf("variant %q: radius must be positive", o.Name)
		}
		if o.Speed != nil && (o.Speed.Min <= 0 || o.Speed.Max < o.Speed.Min) {
			return fmt.Errorf("variant %q: invalid speed range %v..%v", o.Name, o.Speed.Min, o.Speed.Max)
		}
		if o.Score != nil && VariantDefs[v].Class == ClassHazard && *o.Score > 0 {
			return fmt.Errorf("variant %q: hazard score must not be positive", o.Name)
		}
		targets[i] = v
	}

	for i, o := range overrides {
		def := &VariantDefs[targets[i]]
		if o.Radius != nil {
			def.Radius = *o.Radius
		}
		if o.Score != nil {
			def.Score = *o.Score
		}
		if o.Speed != nil {
			def.Speed = *o.Speed
		}
	}
	return nil
}
