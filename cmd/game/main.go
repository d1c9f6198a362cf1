// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"ar-catcher/internal/app"
	"ar-catcher/internal/assets"
	"ar-catcher/internal/audio"
	"ar-catcher/internal/capture"
	"ar-catcher/internal/config"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/device"
	"ar-catcher/internal/state"
	"ar-catcher/internal/ui"
	"ar-catcher/internal/utils"
	"ar-catcher/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	renderer       *render.SceneRenderer
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	if err := a.stateMachine.Update(deltaTime); err != nil {
		return err
	}
	if a.stateMachine.Finished() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(a.renderer.Target(screen))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if cfg.PprofAddr != "" {
		go func() {
			slog.Debug("pprof listening", "addr", cfg.PprofAddr)
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				slog.Warn("pprof server stopped", "error", err)
			}
		}()
	}

	if cfg.VariantsFile != "" {
		if err := defs.LoadVariantOverrides(cfg.VariantsFile); err != nil {
			return err
		}
	}

	// Спрайты и шрифт независимы, грузим параллельно
	var (
		sprites *assets.SpriteLibrary
		fonts   *assets.FontCache
		loaders errgroup.Group
	)
	loaders.Go(func() (err error) {
		sprites, err = loadSprites(cfg.SpriteDir)
		return err
	})
	loaders.Go(func() (err error) {
		fonts, err = assets.LoadFontCache(cfg.FontPath)
		return err
	})
	err = loaders.Wait()
	if fonts != nil {
		defer fonts.Close()
	}
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	camera, err := openCamera(cfg.CameraDir)
	if err != nil {
		return err
	}

	game := app.NewGame(app.Options{
		Width:         config.ScreenWidth,
		Height:        config.ScreenHeight,
		SpawnInterval: cfg.SpawnIntervalSeconds(),
		Seed:          cfg.Seed,
	})

	if cfg.Audio {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			slog.Warn("sound disabled", "error", err)
		} else {
			sound.Subscribe(game.EventDispatcher)
			defer sound.Cleanup()
		}
	}

	renderer := render.NewSceneRenderer(
		config.ScreenWidth, config.ScreenHeight,
		sprites, ui.NewTextRenderer(fonts), utils.NewPRNGService(0),
	)
	session := &state.Session{
		Game:    game,
		Camera:  camera,
		Tracker: device.NewPointerTracker(config.ScreenWidth, config.ScreenHeight),
		Input:   device.KeyboardSource{},
		Frames:  renderer,
		Width:   config.ScreenWidth,
		Height:  config.ScreenHeight,
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Warn("failed to release camera", "error", err)
		}
	}()

	sm := state.NewStateMachine(game.EventDispatcher)
	sm.SetState(state.NewCountdownState(sm, session))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("AR Catcher")
	ebiten.SetFullscreen(cfg.Fullscreen)
	err = ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		renderer:       renderer,
		lastUpdateTime: time.Now(),
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func loadSprites(dir string) (*assets.SpriteLibrary, error) {
	if dir == "" {
		slog.Info("using builtin sprites")
		return assets.BuiltinSpriteLibrary(), nil
	}
	return assets.LoadSpriteLibrary(dir, defs.SpriteNames())
}

func openCamera(dir string) (capture.Camera, error) {
	if dir == "" {
		slog.Info("camera opened", "source", "synthetic")
		return capture.NewSyntheticCamera(config.ScreenWidth, config.ScreenHeight), nil
	}
	cam, err := capture.OpenSequenceCamera(dir)
	if err != nil {
		return nil, err
	}
	return cam, nil
}
