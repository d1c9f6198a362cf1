package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVariantTableIsComplete(t *testing.T) {
	for i := 0; i < VariantCount; i++ {
		v := Variant(i)
		def := v.Def()
		if def.Name == "" || def.SpriteName == "" {
			t.Errorf("%d: missing name or sprite", i)
		}
		if def.Radius <= 0 {
			t.Errorf("%s: radius must be positive", v)
		}
		if def.Speed.Min <= 0 || def.Speed.Max < def.Speed.Min {
			t.Errorf("%s: bad speed range %+v", v, def.Speed)
		}
		if def.Burst.Count <= 0 || def.Burst.TTL <= 0 {
			t.Errorf("%s: bad burst profile", v)
		}
		if v.IsHazard() && def.Score >= 0 {
			t.Errorf("%s: hazard must have negative score", v)
		}
		if got, ok := VariantByName(def.Name); !ok || got != v {
			t.Errorf("VariantByName(%q) = %v, %v", def.Name, got, ok)
		}
	}
}

func TestOnlyTwoHazardsAreErratic(t *testing.T) {
	var erratic []Variant
	for i := range VariantDefs {
		if VariantDefs[i].Erratic {
			erratic = append(erratic, Variant(i))
		}
	}
	if len(erratic) != 2 {
		t.Fatalf("expected two erratic variants, got %v", erratic)
	}
	for _, v := range erratic {
		if !v.IsHazard() {
			t.Errorf("%s is erratic but not a hazard", v)
		}
	}
}

func TestMegaBombIsLargerAndSlower(t *testing.T) {
	mega, small := VariantBombMega.Def(), VariantBombSmall.Def()
	if mega.Radius <= small.Radius {
		t.Error("mega bomb should be larger than the small bomb")
	}
	if mega.Speed.Max >= small.Speed.Max {
		t.Error("mega bomb should be slower than the small bomb")
	}
	if mega.Burst.Count <= small.Burst.Count {
		t.Error("mega explosion should have more particles")
	}
}

func TestVariantString(t *testing.T) {
	if VariantBombFast.String() != "bomb_fast" {
		t.Errorf("String() = %q", VariantBombFast.String())
	}
	if Variant(99).Valid() || Variant(99).String() != "Variant(99)" {
		t.Errorf("invalid variant formatting: %q", Variant(99).String())
	}
}

func TestSpriteNamesUnique(t *testing.T) {
	names := SpriteNames()
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate sprite %q", n)
		}
		seen[n] = true
	}
	if len(names) != VariantCount {
		t.Errorf("expected %d sprites, got %d", VariantCount, len(names))
	}
}

func TestLoadVariantOverrides(t *testing.T) {
	saved := VariantDefs
	defer func() { VariantDefs = saved }()

	path := filepath.Join(t.TempDir(), "variants.json")
	data := `[{"name": "apple", "radius": 40, "score": 2}, {"name": "bomb_fast", "speed": {"min": 300, "max": 400}}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadVariantOverrides(path); err != nil {
		t.Fatalf("LoadVariantOverrides() error = %v", err)
	}
	if VariantApple.Def().Radius != 40 || VariantApple.Def().Score != 2 {
		t.Errorf("apple override not applied: %+v", VariantApple.Def())
	}
	if VariantBombFast.Def().Speed != (SpeedRange{300, 400}) {
		t.Errorf("bomb_fast speed = %+v", VariantBombFast.Def().Speed)
	}
	if VariantOrange.Def().Radius != saved[VariantOrange].Radius {
		t.Error("untouched variant changed")
	}
}

func TestApplyOverridesIsAllOrNothing(t *testing.T) {
	saved := VariantDefs
	defer func() { VariantDefs = saved }()

	r := 50.0
	bad := 5
	err := ApplyOverrides([]VariantOverride{
		{Name: "apple", Radius: &r},
		{Name: "bomb_small", Score: &bad},
	})
	if err == nil {
		t.Fatal("expected error for positive hazard score")
	}
	if VariantApple.Def().Radius != saved[VariantApple].Radius {
		t.Error("partial override applied despite error")
	}
	if err := ApplyOverrides([]VariantOverride{{Name: "kiwi"}}); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestLoadVariantOverridesMissingFile(t *testing.T) {
	if err := LoadVariantOverrides(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
