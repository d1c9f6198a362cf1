package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ar-catcher/internal/defs"
	"ar-catcher/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	masterVolume  = 0.6
	speakerBuffer = 100 * time.Millisecond
)

// SoundManager проигрывает реплики через общий микшер.
// Микшер читает горутина динамика, поэтому доступ к нему под мьютексом.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager создаёт менеджер без открытия устройства.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: masterVolume,
	}
}

// Initialize открывает устройство вывода и запускает микшер.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	speaker.Play(sm.lockedMixer())
	sm.initialized = true
	slog.Info("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// lockedMixer оборачивает микшер так, чтобы динамик читал его под тем же мьютексом.
func (sm *SoundManager) lockedMixer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		return sm.mixer.Stream(samples)
	})
}

// Cleanup глушит все звуки. У beep нет закрытия динамика, достаточно очистить микшер.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
	slog.Debug("audio stopped")
}

// Play ставит реплику в микшер. Без инициализации ничего не делает.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if s := CreateSound(cue, sampleRate, sm.volume); s != nil {
		sm.mixer.Add(s)
	}
}

// Subscribe подписывает менеджер на игровые события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.Caught,
		event.HazardHit,
		event.ShieldBlocked,
		event.ShieldPicked,
		event.MatchWon,
		event.CountdownTick,
	)
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := cueFor(e); ok {
		sm.Play(cue)
	}
}

func cueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.Caught:
		if data, ok := e.Data.(*event.CatchData); ok && data.Variant.Def().Class == defs.ClassBonus {
			return CueBonus, true
		}
		return CueCatch, true
	case event.HazardHit:
		return CueHazard, true
	case event.ShieldBlocked:
		return CueShieldBlock, true
	case event.ShieldPicked:
		return CueShieldPick, true
	case event.MatchWon:
		return CueVictory, true
	case event.CountdownTick:
		if data, ok := e.Data.(*event.CountdownData); ok && data.Final {
			return CueGo, true
		}
		return CueCountdown, true
	}
	return 0, false
}
