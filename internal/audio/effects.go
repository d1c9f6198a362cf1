package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue — звуковая реплика игры.
type Cue int

const (
	CueCatch Cue = iota
	CueBonus
	CueHazard
	CueShieldBlock
	CueShieldPick
	CueCountdown
	CueGo
	CueVictory
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator создаёт генератор волны заданной длительности.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — линейные атака и затухание.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope накладывает атаку и затухание на поток длительностью duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume переводит линейную громкость в effects.Volume (Log2(0) = -Inf).
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type tone struct {
	freq     float64
	wave     WaveType
	duration time.Duration
	gain     float64
}

// Рецепты реплик: тоны звучат одновременно.
var cueTones = map[Cue][]tone{
	CueCatch:       {{660, WaveSine, 90 * time.Millisecond, 0.8}, {1320, WaveSine, 90 * time.Millisecond, 0.2}},
	CueBonus:       {{880, WaveSine, 250 * time.Millisecond, 0.6}, {1320, WaveSine, 250 * time.Millisecond, 0.3}, {1760, WaveSine, 200 * time.Millisecond, 0.2}},
	CueHazard:      {{90, WaveSaw, 350 * time.Millisecond, 0.6}, {0, WaveNoise, 250 * time.Millisecond, 0.4}},
	CueShieldBlock: {{300, WaveSquare, 120 * time.Millisecond, 0.3}, {0, WaveNoise, 80 * time.Millisecond, 0.3}},
	CueShieldPick:  {{520, WaveSine, 200 * time.Millisecond, 0.5}, {780, WaveSine, 200 * time.Millisecond, 0.4}},
	CueCountdown:   {{440, WaveSine, 120 * time.Millisecond, 0.6}},
	CueGo:          {{880, WaveSine, 250 * time.Millisecond, 0.7}},
	CueVictory:     {{523, WaveSine, 900 * time.Millisecond, 0.4}, {659, WaveSine, 900 * time.Millisecond, 0.3}, {784, WaveSine, 900 * time.Millisecond, 0.3}},
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 60 * time.Millisecond
)

// CreateSound собирает поток реплики с общей громкостью volume.
func CreateSound(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	tones := cueTones[cue]
	if len(tones) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.freq, t.duration, t.wave, rate)
		parts = append(parts, newVolume(NewEnvelope(osc, t.duration, cueAttack, cueRelease, rate), t.gain))
	}
	return newVolume(beep.Mix(parts...), volume)
}
