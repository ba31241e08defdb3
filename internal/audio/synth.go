package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// voice is a single synthesized sound. freq and gain are functions of the
// elapsed time in seconds. A voice with zero length never ends.
type voice struct {
	wave  WaveType
	freq  func(t float64) float64
	gain  func(t float64) float64
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newVoice(rate beep.SampleRate, wave WaveType, length time.Duration, freq, gain func(float64) float64) *voice {
	v := &voice{
		wave: wave,
		freq: freq,
		gain: gain,
		rate: rate,
		rng:  rand.New(rand.NewSource(int64(wave) + 1)),
	}
	if length > 0 {
		v.total = rate.N(length)
	}
	return v
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.total > 0 && v.pos >= v.total {
			return i, i > 0
		}
		t := float64(v.pos) / float64(v.rate)

		var val float64
		switch v.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * v.phase)
		case WaveSquare:
			val = 1
			if v.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (v.phase - 0.5)
		case WaveNoise:
			val = v.rng.Float64()*2 - 1
		}
		val *= v.gain(t)

		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func constant(x float64) func(float64) float64 {
	return func(float64) float64 { return x }
}

// sweep glides linearly from a to b over d seconds and holds b afterwards.
func sweep(a, b, d float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= d {
			return b
		}
		return a + (b-a)*t/d
	}
}

// decay is an exponential fade starting at peak.
func decay(peak, rate float64) func(float64) float64 {
	return func(t float64) float64 { return peak * math.Exp(-t*rate) }
}

// warble oscillates around centre by depth at lfo Hz.
func warble(centre, depth, lfo float64) func(float64) float64 {
	return func(t float64) float64 { return centre + depth*math.Sin(2*math.Pi*lfo*t) }
}

func bang(rate beep.SampleRate, length time.Duration, rumble, fade float64) beep.Streamer {
	return beep.Mix(
		newVoice(rate, WaveNoise, length, constant(0), decay(0.5, fade)),
		newVoice(rate, WaveSine, length, sweep(rumble, rumble/2, length.Seconds()), decay(0.4, fade)),
	)
}

func thud(rate beep.SampleRate, freq float64) beep.Streamer {
	return newVoice(rate, WaveSquare, 90*time.Millisecond, constant(freq), decay(0.4, 25))
}

// Effect returns a fresh streamer for s. Looping sounds return endless
// streamers; everything else ends on its own. Unknown sounds return nil.
func Effect(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundFire:
		return newVoice(rate, WaveSquare, 80*time.Millisecond, sweep(1200, 400, 0.08), decay(0.25, 20))
	case core.SoundThrust:
		return newVoice(rate, WaveNoise, 0, constant(0), warble(0.12, 0.04, 6))
	case core.SoundBangSmall:
		return bang(rate, 200*time.Millisecond, 220, 14)
	case core.SoundBangMedium:
		return bang(rate, 350*time.Millisecond, 140, 9)
	case core.SoundBangLarge:
		return bang(rate, 600*time.Millisecond, 90, 6)
	case core.SoundBangShip:
		return bang(rate, 900*time.Millisecond, 70, 4)
	case core.SoundBangAlien:
		return bang(rate, 500*time.Millisecond, 180, 7)
	case core.SoundBeat1:
		return thud(rate, 62)
	case core.SoundBeat2:
		return thud(rate, 55)
	case core.SoundSaucerBig:
		return newVoice(rate, WaveSquare, 0, warble(500, 80, 5), constant(0.08))
	case core.SoundSaucerSmall:
		return newVoice(rate, WaveSquare, 0, warble(950, 150, 8), constant(0.08))
	case core.SoundMissile:
		return newVoice(rate, WaveSaw, 250*time.Millisecond, sweep(200, 800, 0.25), decay(0.3, 6))
	default:
		return nil
	}
}

// Loops reports whether s is played with Loop rather than Play.
func Loops(s core.Sound) bool {
	switch s {
	case core.SoundThrust, core.SoundSaucerBig, core.SoundSaucerSmall:
		return true
	}
	return false
}

// withVolume scales s by vol in [0, 1]. math.Log2(0) is -Inf, so zero
// becomes silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
