// internal/assets/sprite_library.go
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrSpriteMissing — обязательный спрайт не найден; сессия не может стартовать.
var ErrSpriteMissing = errors.New("sprite asset missing")

type spriteKey struct {
	name string
	size int
}

// SpriteLibrary хранит исходные спрайты и их масштабированные копии.
type SpriteLibrary struct {
	originals map[string]image.Image
	scaled    map[spriteKey]*image.NRGBA
}

func newSpriteLibrary() *SpriteLibrary {
	return &SpriteLibrary{
		originals: make(map[string]image.Image),
		scaled:    make(map[spriteKey]*image.NRGBA),
	}
}

// LoadSpriteLibrary загружает <dir>/<name>.png для каждого имени.
// Отсутствие любого файла — ошибка ErrSpriteMissing, без подмены.
func LoadSpriteLibrary(dir string, names []string) (*SpriteLibrary, error) {
	lib := newSpriteLibrary()
	for _, name := range names {
		path := filepath.Join(dir, name+".png")
		img, err := loadPNG(path)
		if err != nil {
			return nil, err
		}
		lib.originals[name] = img
		slog.Debug("sprite loaded", "name", name, "path", path)
	}
	slog.Info("sprites loaded", "dir", dir, "count", len(names))
	return lib, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSpriteMissing, path)
		}
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return img, nil
}

// Has сообщает, известен ли спрайт.
func (l *SpriteLibrary) Has(name string) bool {
	_, ok := l.originals[name]
	return ok
}

// Get возвращает спрайт, вписанный в квадрат size×size. Копии кэшируются по (имя, размер).
func (l *SpriteLibrary) Get(name string, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sprite %q: invalid size %d", name, size)
	}
	key := spriteKey{name, size}
	if img, ok := l.scaled[key]; ok {
		return img, nil
	}
	src, ok := l.originals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpriteMissing, name)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	l.scaled[key] = dst
	return dst, nil
}

// CachedCount — число масштабированных копий в кэше.
func (l *SpriteLibrary) CachedCount() int {
	return len(l.scaled)
}
