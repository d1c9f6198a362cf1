package assets

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontCache держит один разобранный шрифт и его начертания по размеру.
type FontCache struct {
	source   *opentype.Font
	faces    map[int]font.Face
	fallback bool
}

// LoadFontCache читает TTF по пути. Если файл недоступен или битый,
// используется встроенный Go Bold.
func LoadFontCache(path string) (*FontCache, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			tt, perr := opentype.Parse(data)
			if perr == nil {
				slog.Debug("font loaded", "path", path)
				return newFontCache(tt, false), nil
			}
			err = perr
		}
		slog.Debug("font unavailable, using builtin", "path", path, "error", err)
	}
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse builtin font: %w", err)
	}
	return newFontCache(tt, true), nil
}

func newFontCache(tt *opentype.Font, fallback bool) *FontCache {
	return &FontCache{source: tt, faces: make(map[int]font.Face), fallback: fallback}
}

// Fallback сообщает, что вместо заданного файла используется встроенный шрифт.
func (c *FontCache) Fallback() bool { return c.fallback }

// Face возвращает начертание размера size (в пикселях), создавая его один раз.
func (c *FontCache) Face(size int) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %d", size)
	}
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.source, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %d: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

// Close освобождает все созданные начертания.
func (c *FontCache) Close() {
	for size, face := range c.faces {
		face.Close()
		delete(c.faces, size)
	}
}
