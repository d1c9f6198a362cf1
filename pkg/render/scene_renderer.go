// pkg/render/scene_renderer.go
package render

import (
	"fmt"
	"image"
	"log/slog"

	"ar-catcher/internal/assets"
	"ar-catcher/internal/capture"
	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/ui"
	"ar-catcher/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	skeletonLineWidth = 2
	jointRadius       = 3
	cursorRadius      = 12
)

type spriteKey struct {
	name string
	size int
}

// SceneRenderer рисует кадр камеры, объекты, эффекты и HUD.
type SceneRenderer struct {
	width, height int
	sprites       *assets.SpriteLibrary
	text          *ui.TextRenderer
	rng           utils.RandomSource

	frame        *ebiten.Image // последний кадр камеры
	hasFrame     bool
	canvas       *ebiten.Image // сцена до тряски
	ambientLayer *ebiten.Image
	spriteImages map[spriteKey]*ebiten.Image
	panels       [config.MaxPlayers]*ui.ScorePanel
	screen       *ebiten.Image // цель текущего Draw

	shake component.Position // смещение последнего кадра
}

func NewSceneRenderer(width, height int, sprites *assets.SpriteLibrary, text *ui.TextRenderer, rng utils.RandomSource) *SceneRenderer {
	r := &SceneRenderer{
		width:        width,
		height:       height,
		sprites:      sprites,
		text:         text,
		rng:          rng,
		frame:        ebiten.NewImage(width, height),
		canvas:       ebiten.NewImage(width, height),
		ambientLayer: ebiten.NewImage(width, height),
		spriteImages: make(map[spriteKey]*ebiten.Image),
	}
	for i := range r.panels {
		r.panels[i] = ui.NewScorePanel(i, width)
	}
	return r
}

// Target привязывает рендерер к экрану текущего кадра.
func (r *SceneRenderer) Target(screen *ebiten.Image) *SceneRenderer {
	r.screen = screen
	return r
}

// Scene рисует мир на привязанный экран.
func (r *SceneRenderer) Scene(w *entity.World, frozen bool) {
	r.shake = shakeOffset(r.rng, w.Screen.ShakeIntensity, frozen, r.shake)
	r.draw(r.screen, w)
}

// Countdown рисует метку обратного отсчёта.
func (r *SceneRenderer) Countdown(label string, progress float64) {
	ui.DrawCountdown(r.screen, r.text, label, progress)
}

// Paused рисует оверлей паузы.
func (r *SceneRenderer) Paused() {
	ui.DrawPauseOverlay(r.screen, r.text)
}

// Victory рисует баннер победителя.
func (r *SceneRenderer) Victory(winner int) {
	ui.DrawVictoryBanner(r.screen, r.text, winner)
}

// SetFrame загружает подготовленный кадр камеры в текстуру.
func (r *SceneRenderer) SetFrame(frame *image.RGBA) error {
	b := frame.Bounds()
	if b.Dx() != r.width || b.Dy() != r.height {
		return fmt.Errorf("frame size %dx%d, want %dx%d", b.Dx(), b.Dy(), r.width, r.height)
	}
	r.frame.WritePixels(frame.Pix)
	r.hasFrame = true
	return nil
}

func (r *SceneRenderer) draw(screen *ebiten.Image, w *entity.World) {
	r.canvas.Clear()
	r.drawBackground(r.canvas)
	r.drawAmbient(r.canvas, w.Ambient)
	r.drawHands(r.canvas, w.Hands)
	r.drawObjects(r.canvas, w.Objects)
	r.drawBursts(r.canvas, w.Bursts)
	r.drawPopups(r.canvas, w.Popups)
	r.drawCursors(r.canvas, w.Cursors)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.shake.X, r.shake.Y)
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(r.canvas, op)

	if a := w.Screen.FlashAlpha(config.FlashAlpha); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), WithAlpha(w.Screen.FlashColor, a), false)
	}
	for i, p := range w.Players {
		r.panels[i].Draw(screen, r.text, p)
	}
}

func (r *SceneRenderer) drawBackground(dst *ebiten.Image) {
	if !r.hasFrame {
		dst.Fill(config.BackgroundColor)
		return
	}
	dst.DrawImage(r.frame, nil)
}

// drawAmbient рисует частицы на отдельный слой и накладывает его с низкой непрозрачностью.
func (r *SceneRenderer) drawAmbient(dst *ebiten.Image, particles []*component.AmbientParticle) {
	if len(particles) == 0 {
		return
	}
	r.ambientLayer.Clear()
	for _, p := range particles {
		vector.DrawFilledCircle(r.ambientLayer, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(config.AmbientOverlayAlpha)
	dst.DrawImage(r.ambientLayer, op)
}

func (r *SceneRenderer) drawHands(dst *ebiten.Image, hands [][]component.Position) {
	for i, pts := range hands {
		if i >= config.MaxPlayers {
			break
		}
		clr := config.PlayerColors[i]
		for _, c := range capture.HandConnections {
			if c[0] >= len(pts) || c[1] >= len(pts) {
				continue
			}
			a, b := pts[c[0]], pts[c[1]]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), skeletonLineWidth, clr, true)
		}
		joint := DarkenColor(clr)
		for _, p := range pts {
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), jointRadius, joint, true)
		}
	}
}

func (r *SceneRenderer) drawObjects(dst *ebiten.Image, objects []*component.FallingObject) {
	for _, obj := range objects {
		rect, ok := spriteRect(obj, r.width, r.height)
		if !ok {
			continue
		}
		img := r.spriteImage(obj.Variant.Def().SpriteName, rect.Dx())
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
		dst.DrawImage(img, op)
	}
}

func (r *SceneRenderer) spriteImage(name string, size int) *ebiten.Image {
	key := spriteKey{name, size}
	if img, ok := r.spriteImages[key]; ok {
		return img
	}
	src, err := r.sprites.Get(name, size)
	if err != nil {
		slog.Warn("sprite unavailable", "name", name, "size", size, "error", err)
		r.spriteImages[key] = nil
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	r.spriteImages[key] = img
	return img
}

func (r *SceneRenderer) drawBursts(dst *ebiten.Image, bursts []*component.BurstParticle) {
	for _, b := range bursts {
		size := b.CurrentSize()
		if size <= 0 {
			continue
		}
		vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(size), WithAlpha(b.Color, b.Alpha()), true)
	}
}

func (r *SceneRenderer) drawPopups(dst *ebiten.Image, popups []*component.Popup) {
	for _, p := range popups {
		r.text.Draw(dst, p.Text, p.X, popupY(p), ui.TextOptions{
			Size:     int(config.PopupFontSize * p.Scale),
			Color:    p.Color,
			Alpha:    p.Alpha(),
			Centered: true,
		})
	}
}

func (r *SceneRenderer) drawCursors(dst *ebiten.Image, cursors []component.Cursor) {
	for _, c := range cursors {
		if c.Player < 0 || c.Player >= config.MaxPlayers {
			continue
		}
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y), cursorRadius, 3, config.PlayerColors[c.Player], true)
	}
}
