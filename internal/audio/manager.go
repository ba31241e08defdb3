// Package audio plays the game's sound cues through the system speaker.
// Every sound is synthesized; there are no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager implements core.SoundPlayer on top of a beep mixer.
// Until Init succeeds every call is a no-op.
type Manager struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	loops       map[core.Sound]*beep.Ctrl
	initialized bool
}

var _ core.SoundPlayer = (*Manager)(nil)

// NewManager creates a manager playing at volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		volume: min(max(volume, 0), 1),
		mixer:  &beep.Mixer{},
		loops:  make(map[core.Sound]*beep.Ctrl),
	}
}

// Init opens the speaker and starts the mixer.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	for _, ctrl := range m.loops {
		ctrl.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()
	clear(m.loops)
	speaker.Close()
	m.initialized = false
}

// Play starts a one-shot effect.
func (m *Manager) Play(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	st := Effect(s, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(withVolume(st, m.volume))
	speaker.Unlock()
}

// Loop starts s repeating until Stop. Looping an already playing sound
// does nothing.
func (m *Manager) Loop(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if ctrl, ok := m.loops[s]; ok {
		ctrl.Paused = false
		return
	}
	st := Effect(s, sampleRate)
	if st == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: withVolume(st, m.volume)}
	m.loops[s] = ctrl
	m.mixer.Add(ctrl)
}

// Stop pauses a looping sound. Stopping a sound that is not looping does
// nothing.
func (m *Manager) Stop(s core.Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctrl, ok := m.loops[s]
	if !ok || !m.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

// Open returns a ready sound player, or core.NopSound when the speaker
// cannot be opened. The returned close function is always safe to call.
func Open(logger *log.Logger, volume float64) (core.SoundPlayer, func()) {
	m := NewManager(volume)
	if err := m.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return core.NopSound{}, func() {}
	}
	return m, m.Close
}
