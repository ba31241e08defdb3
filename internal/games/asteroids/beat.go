package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// heartbeat alternates two tones and quickens after every beat until it
// reaches the fastest tempo.
type heartbeat struct {
	cfg   config.BeatConfig
	alarm *sim.Alarm
	high  bool
}

func newHeartbeat(cfg config.BeatConfig) *heartbeat {
	return &heartbeat{cfg: cfg, alarm: sim.NewAlarm(cfg.Initial)}
}

// reset returns to the initial tempo. The beat stays stopped.
func (h *heartbeat) reset() {
	h.alarm.Stop()
	h.alarm.SetInterval(h.cfg.Initial)
	h.high = false
}

// tick plays the next beat if it is due.
func (h *heartbeat) tick(w *sim.World) {
	if !h.alarm.Due(w.Now()) {
		return
	}
	if h.high {
		w.Sound.Play(core.SoundBeat2)
	} else {
		w.Sound.Play(core.SoundBeat1)
	}
	h.high = !h.high
	if d := h.alarm.Interval(); d > h.cfg.Fastest+h.cfg.Delta {
		h.alarm.SetInterval(d - h.cfg.Delta)
	}
}
