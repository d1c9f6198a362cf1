package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings — параметры запуска, читаются из окружения (префикс CATCHER_).
type Settings struct {
	CameraDir     string        `env:"CAMERA_DIR"`
	SpriteDir     string        `env:"SPRITE_DIR"`
	FontPath      string        `env:"FONT_PATH" envDefault:"assets/fonts/Roboto-Bold.ttf"`
	VariantsFile  string        `env:"VARIANTS_FILE"`
	Seed          int64         `env:"SEED" envDefault:"0"`
	SpawnInterval time.Duration `env:"SPAWN_INTERVAL" envDefault:"800ms"`
	Audio         bool          `env:"AUDIO" envDefault:"true"`
	Fullscreen    bool          `env:"FULLSCREEN" envDefault:"false"`
	LogLevel      slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	PprofAddr     string        `env:"PPROF_ADDR"` // пусто — профилировщик выключен
}

// Load читает настройки из переменных окружения.
func Load() (*Settings, error) {
	cfg, err := env.ParseAsWithOptions[Settings](env.Options{Prefix: "CATCHER_"})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.SpawnInterval <= 0 {
		return nil, fmt.Errorf("spawn interval must be positive, got %s", cfg.SpawnInterval)
	}
	return &cfg, nil
}

// SpawnIntervalSeconds возвращает интервал спавна в секундах игрового времени.
func (s *Settings) SpawnIntervalSeconds() float64 {
	return s.SpawnInterval.Seconds()
}
