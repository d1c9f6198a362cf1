package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFontCacheFallsBackToBuiltin(t *testing.T) {
	cache, err := LoadFontCache(filepath.Join(t.TempDir(), "missing.ttf"))
	if err != nil {
		t.Fatalf("LoadFontCache() error = %v", err)
	}
	if !cache.Fallback() {
		t.Error("expected builtin fallback for missing file")
	}
	face, err := cache.Face(30)
	if err != nil {
		t.Fatal(err)
	}
	if face.Metrics().Height <= 0 {
		t.Error("face has no height")
	}
}

func TestFontCacheRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache, err := LoadFontCache(path)
	if err != nil {
		t.Fatalf("LoadFontCache() error = %v", err)
	}
	if !cache.Fallback() {
		t.Error("expected builtin fallback for unparsable file")
	}
}

func TestFontCacheReusesFaces(t *testing.T) {
	cache, err := LoadFontCache("")
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	a, _ := cache.Face(36)
	b, _ := cache.Face(36)
	if a != b {
		t.Error("same size should return the cached face")
	}
	c, _ := cache.Face(72)
	if c == a {
		t.Error("different sizes should produce different faces")
	}
	if _, err := cache.Face(0); err == nil {
		t.Error("expected error for zero size")
	}
}
