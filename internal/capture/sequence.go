package capture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var frameExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// SequenceCamera отдаёт кадры из каталога изображений по кругу.
// Файл, который не удалось прочитать, считается отказом устройства.
type SequenceCamera struct {
	paths  []string
	next   int
	closed bool
}

// OpenSequenceCamera находит кадры в каталоге dir (сортировка по имени).
func OpenSequenceCamera(dir string) (*SequenceCamera, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not open camera source %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !frameExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("could not open camera source %s: no frames", dir)
	}
	sort.Strings(paths)
	slog.Info("camera opened", "source", dir, "frames", len(paths))
	return &SequenceCamera{paths: paths}, nil
}

// Len — число кадров в последовательности.
func (c *SequenceCamera) Len() int {
	return len(c.paths)
}

func (c *SequenceCamera) Read() (image.Image, error) {
	if c.closed {
		return nil, ErrCameraClosed
	}
	path := c.paths[c.next]
	c.next = (c.next + 1) % len(c.paths)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame from camera: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func (c *SequenceCamera) Close() error {
	if !c.closed {
		c.closed = true
		slog.Info("camera released")
	}
	return nil
}
