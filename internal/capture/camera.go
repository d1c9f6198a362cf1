// Package capture описывает внешние источники кадра и рук и простые их замены.
package capture

import (
	"errors"
	"image"
)

// ErrCameraClosed возвращается при чтении из закрытой камеры.
var ErrCameraClosed = errors.New("camera is closed")

// Camera — источник цветных кадров. Read блокирует до готовности кадра.
// Close освобождает устройство и должен вызываться на любом пути выхода.
type Camera interface {
	Read() (image.Image, error)
	Close() error
}
