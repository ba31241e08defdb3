package core

// Sound identifies an audio cue emitted by the simulation.
// The platform decides how (or whether) to play it.
type Sound int

const (
	SoundFire Sound = iota
	SoundThrust
	SoundBangSmall
	SoundBangMedium
	SoundBangLarge
	SoundBangShip
	SoundBangAlien
	SoundBeat1
	SoundBeat2
	SoundSaucerBig
	SoundSaucerSmall
	SoundMissile
	soundCount
)

// SoundCount is the number of distinct sounds.
const SoundCount = int(soundCount)

var soundNames = [...]string{
	SoundFire:        "fire",
	SoundThrust:      "thrust",
	SoundBangSmall:   "bang-small",
	SoundBangMedium:  "bang-medium",
	SoundBangLarge:   "bang-large",
	SoundBangShip:    "bang-ship",
	SoundBangAlien:   "bang-alien",
	SoundBeat1:       "beat1",
	SoundBeat2:       "beat2",
	SoundSaucerBig:   "saucer-big",
	SoundSaucerSmall: "saucer-small",
	SoundMissile:     "missile",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// SoundPlayer receives audio triggers. Play fires a one-shot effect;
// Loop starts a repeating sound until Stop is called for it.
// Implementations must tolerate redundant Loop and Stop calls.
type SoundPlayer interface {
	Play(s Sound)
	Loop(s Sound)
	Stop(s Sound)
}

// NopSound is a SoundPlayer that discards every trigger.
type NopSound struct{}

func (NopSound) Play(Sound) {}
func (NopSound) Loop(Sound) {}
func (NopSound) Stop(Sound) {}

// SoundRecorder records triggers in order. Useful in tests and for
// replaying cues to a real player after a headless step.
type SoundRecorder struct {
	Events []SoundEvent
}

// SoundEvent is one recorded trigger.
type SoundEvent struct {
	Sound Sound
	Op    SoundOp
}

// SoundOp distinguishes the three SoundPlayer calls.
type SoundOp int

const (
	SoundOpPlay SoundOp = iota
	SoundOpLoop
	SoundOpStop
)

func (r *SoundRecorder) Play(s Sound) { r.Events = append(r.Events, SoundEvent{s, SoundOpPlay}) }
func (r *SoundRecorder) Loop(s Sound) { r.Events = append(r.Events, SoundEvent{s, SoundOpLoop}) }
func (r *SoundRecorder) Stop(s Sound) { r.Events = append(r.Events, SoundEvent{s, SoundOpStop}) }

// Count returns how many times s was played.
func (r *SoundRecorder) Count(s Sound) int {
	n := 0
	for _, e := range r.Events {
		if e.Sound == s && e.Op == SoundOpPlay {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *SoundRecorder) Reset() {
	r.Events = r.Events[:0]
}
