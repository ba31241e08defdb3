package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestEffectDefinedForEverySound(t *testing.T) {
	for s := core.Sound(0); int(s) < core.SoundCount; s++ {
		if Effect(s, sampleRate) == nil {
			t.Errorf("no effect for %v", s)
		}
	}
	if Effect(core.Sound(core.SoundCount), sampleRate) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestOneShotsEnd(t *testing.T) {
	limit := sampleRate.N(5e9) // 5s
	for s := core.Sound(0); int(s) < core.SoundCount; s++ {
		if Loops(s) {
			continue
		}
		n := drain(Effect(s, sampleRate), limit)
		if n == 0 || n >= limit {
			t.Errorf("%v streamed %d samples, want a finite non-empty effect", s, n)
		}
	}
}

func TestLoopsNeverEnd(t *testing.T) {
	limit := sampleRate.N(3e9)
	for _, s := range []core.Sound{core.SoundThrust, core.SoundSaucerBig, core.SoundSaucerSmall} {
		if !Loops(s) {
			t.Errorf("%v should loop", s)
		}
		if n := drain(Effect(s, sampleRate), limit); n < limit {
			t.Errorf("%v ended after %d samples", s, n)
		}
	}
}

func TestSamplesInRange(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVoice(sampleRate, tt.wave, 0, constant(440), constant(1))
			buf := make([][2]float64, 1000)
			n, ok := v.Stream(buf)
			if !ok || n != len(buf) {
				t.Fatalf("Stream() = %d, %v", n, ok)
			}
			for i := range n {
				if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
					t.Fatalf("sample %d = %v", i, buf[i])
				}
			}
		})
	}
}

func TestManagerWithoutDeviceIsSilent(t *testing.T) {
	m := NewManager(2)
	if m.volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", m.volume)
	}
	m.Play(core.SoundFire)
	m.Loop(core.SoundThrust)
	m.Stop(core.SoundThrust)
	m.Stop(core.SoundSaucerBig)
	m.Close()
	if len(m.loops) != 0 {
		t.Errorf("loops = %d, want none before Init", len(m.loops))
	}
}
