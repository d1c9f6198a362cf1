package state

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"ar-catcher/internal/app"
	"ar-catcher/internal/capture"
	"ar-catcher/internal/component"
	"ar-catcher/internal/config"
	"ar-catcher/internal/defs"
	"ar-catcher/internal/entity"
	"ar-catcher/internal/event"
	"ar-catcher/internal/input"
)

const (
	testWidth  = 320
	testHeight = 240
)

type fakeCamera struct {
	reads  int
	closed int
	err    error
}

func (c *fakeCamera) Read() (image.Image, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.reads++
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	return img, nil
}

func (c *fakeCamera) Close() error {
	c.closed++
	return nil
}

type fakeTracker struct {
	hands []capture.Hand
	calls int
}

func (t *fakeTracker) Detect(frame image.Image) ([]capture.Hand, error) {
	t.calls++
	return t.hands, nil
}

type fakeSink struct{ frames int }

func (s *fakeSink) SetFrame(frame *image.RGBA) error {
	s.frames++
	return nil
}

type recordingPainter struct {
	scenes    int
	frozen    int
	labels    []string
	paused    int
	victories []int
}

func (p *recordingPainter) Scene(_ *entity.World, frozen bool) {
	p.scenes++
	if frozen {
		p.frozen++
	}
}
func (p *recordingPainter) Countdown(label string, _ float64) { p.labels = append(p.labels, label) }
func (p *recordingPainter) Paused() { p.paused++ }
func (p *recordingPainter) Victory(winner int) { p.victories = append(p.victories, winner) }

type harness struct {
	sm      *StateMachine
	session *Session
	camera  *fakeCamera
	tracker *fakeTracker
	input   *input.Scripted
	sink    *fakeSink
	events  []event.Event
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	game := app.NewGame(app.Options{Width: testWidth, Height: testHeight, Seed: 7})
	h := &harness{
		camera:  &fakeCamera{},
		tracker: &fakeTracker{},
		input:   input.NewScripted(),
		sink:    &fakeSink{},
	}
	h.session = &Session{
		Game:    game,
		Camera:  h.camera,
		Tracker: h.tracker,
		Input:   h.input,
		Frames:  h.sink,
		Width:   testWidth,
		Height:  testHeight,
	}
	game.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		h.events = append(h.events, e)
	}), event.PhaseChanged, event.CountdownTick, event.MatchWon)
	h.sm = NewStateMachine(game.EventDispatcher)
	return h
}

func (h *harness) phase() component.MatchPhase {
	return h.sm.Current().Phase()
}

func (h *harness) step(t *testing.T, dt float64) {
	t.Helper()
	if err := h.sm.Update(dt); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func (h *harness) startActive(t *testing.T) {
	t.Helper()
	h.sm.SetState(NewGameState(h.sm, h.session))
}

func TestCountdownRunsFourStepsThenActivates(t *testing.T) {
	h := newHarness(t)
	h.sm.SetState(NewCountdownState(h.sm, h.session))

	painter := &recordingPainter{}
	for i := 0; i < 4; i++ {
		h.sm.Draw(painter)
		h.step(t, config.CountdownStepDuration)
	}

	if h.phase() != component.PhaseActive {
		t.Fatalf("phase = %v, want Active", h.phase())
	}
	want := []string{"3", "2", "1", "GO"}
	for i, l := range want {
		if painter.labels[i] != l {
			t.Errorf("label %d = %q, want %q", i, painter.labels[i], l)
		}
	}

	var ticks []string
	for _, e := range h.events {
		if e.Type == event.CountdownTick {
			ticks = append(ticks, e.Data.(*event.CountdownData).Label)
		}
	}
	if len(ticks) != 4 || ticks[3] != "GO" {
		t.Errorf("countdown ticks = %v", ticks)
	}

	w := h.session.Game.World
	if len(w.Objects) != 0 || w.GameTime != 0 {
		t.Errorf("simulation ran during countdown: objects=%d time=%v", len(w.Objects), w.GameTime)
	}
	if h.camera.reads != 4 || h.sink.frames != 4 {
		t.Errorf("camera reads = %d, frames shown = %d; want 4", h.camera.reads, h.sink.frames)
	}
	if h.tracker.calls != 0 {
		t.Errorf("tracker used during countdown")
	}
}

func TestActiveTicksSimulation(t *testing.T) {
	h := newHarness(t)
	h.tracker.hands = []capture.Hand{capture.SyntheticHand(0.25, 0.5)}
	h.startActive(t)

	h.step(t, 0.1)
	w := h.session.Game.World
	if w.GameTime != 0.1 {
		t.Errorf("GameTime = %v, want 0.1", w.GameTime)
	}
	if len(w.Cursors) != 1 || w.Cursors[0].X != 80 || w.Cursors[0].Y != 120 {
		t.Errorf("cursors = %+v", w.Cursors)
	}
	if len(w.Hands) != 1 {
		t.Errorf("hands = %d, want 1", len(w.Hands))
	}
	painter := &recordingPainter{}
	h.sm.Draw(painter)
	if painter.scenes != 1 || painter.frozen != 0 {
		t.Errorf("active draw = %+v", painter)
	}
}

func TestPauseFreezesSimulationAndCamera(t *testing.T) {
	h := newHarness(t)
	h.startActive(t)
	h.step(t, 0.1)
	reads := h.camera.reads
	gameTime := h.session.Game.World.GameTime

	h.input.Push(input.Signals{PauseToggle: true})
	h.step(t, 0.1)
	if h.phase() != component.PhasePaused {
		t.Fatalf("phase = %v, want Paused", h.phase())
	}
	for i := 0; i < 5; i++ {
		h.step(t, 0.2)
	}
	if h.camera.reads != reads || h.session.Game.World.GameTime != gameTime {
		t.Errorf("paused match advanced: reads %d→%d, time %v→%v", reads, h.camera.reads, gameTime, h.session.Game.World.GameTime)
	}

	painter := &recordingPainter{}
	h.sm.Draw(painter)
	if painter.paused != 1 || painter.scenes != 1 || painter.frozen != 1 {
		t.Errorf("pause draw = %+v", painter)
	}

	h.input.Push(input.Signals{PauseToggle: true})
	h.step(t, 0.1)
	if h.phase() != component.PhaseActive {
		t.Fatalf("phase = %v, want Active", h.phase())
	}
	h.step(t, 0.1)
	if h.camera.reads != reads+1 {
		t.Errorf("camera reads after resume = %d, want %d", h.camera.reads, reads+1)
	}
}

func TestQuitEndsFromEveryPhase(t *testing.T) {
	starts := map[string]func(h *harness){
		"countdown": func(h *harness) { h.sm.SetState(NewCountdownState(h.sm, h.session)) },
		"active":    func(h *harness) { h.sm.SetState(NewGameState(h.sm, h.session)) },
		"paused": func(h *harness) {
			h.sm.SetState(NewPauseState(h.sm, NewGameState(h.sm, h.session)))
		},
		"victory": func(h *harness) { h.sm.SetState(NewVictoryState(h.sm, h.session)) },
	}
	for name, start := range starts {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			start(h)
			h.input.Push(input.Signals{Quit: true})
			h.step(t, 0.1)
			if !h.sm.Finished() {
				t.Fatalf("phase = %v, want Ended", h.phase())
			}
			if h.camera.closed != 1 {
				t.Errorf("camera closed %d times, want 1", h.camera.closed)
			}
			// Повторное закрытие сессии не трогает камеру
			if err := h.session.Close(); err != nil || h.camera.closed != 1 {
				t.Errorf("second Close: err=%v closed=%d", err, h.camera.closed)
			}
		})
	}
}

func TestWinnerLeadsToVictoryThenEnded(t *testing.T) {
	h := newHarness(t)
	h.tracker.hands = []capture.Hand{capture.SyntheticHand(0.5, 0.5)}
	h.startActive(t)

	w := h.session.Game.World
	w.Players[0].Score = config.Goal - 1
	w.AddObject(&component.FallingObject{
		Position:  component.Position{X: 160, Y: 120},
		Radius:    defs.VariantApple.Def().Radius,
		VelocityY: 100,
		Variant:   defs.VariantApple,
		Score:     1,
	})

	h.step(t, 0.01)
	if h.phase() != component.PhaseVictory {
		t.Fatalf("phase = %v, want Victory", h.phase())
	}
	if w.Winner != 0 || w.Players[0].Score != config.Goal {
		t.Fatalf("winner = %d, score = %d", w.Winner, w.Players[0].Score)
	}

	painter := &recordingPainter{}
	h.sm.Draw(painter)
	if len(painter.victories) != 1 || painter.victories[0] != 0 {
		t.Errorf("victory overlay = %v", painter.victories)
	}

	h.step(t, 1.5)
	if h.phase() != component.PhaseVictory {
		t.Fatalf("left victory early: %v", h.phase())
	}
	h.step(t, 1.5)
	if !h.sm.Finished() {
		t.Fatalf("phase = %v, want Ended", h.phase())
	}
	if h.camera.closed != 1 {
		t.Errorf("camera closed %d times", h.camera.closed)
	}

	var phases []string
	for _, e := range h.events {
		if e.Type == event.PhaseChanged {
			phases = append(phases, e.Data.(*event.PhaseData).To)
		}
	}
	want := []string{
		component.PhaseActive.String(),
		component.PhaseVictory.String(),
		component.PhaseEnded.String(),
	}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, phases[i], want[i])
		}
	}
}

func TestCameraFailureIsReturned(t *testing.T) {
	h := newHarness(t)
	h.startActive(t)
	boom := errors.New("device unplugged")
	h.camera.err = boom

	err := h.sm.Update(0.1)
	if !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want wrapped %v", err, boom)
	}
}
