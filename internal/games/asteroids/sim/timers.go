package sim

import (
	"container/heap"
	"time"
)

// Clock is simulated time, advanced only by the tick loop.
type Clock struct {
	now   time.Duration
	ticks uint64
}

// Advance moves the clock forward by d and counts one tick.
func (c *Clock) Advance(d time.Duration) {
	c.now += d
	c.ticks++
}

// Now returns elapsed simulated time.
func (c *Clock) Now() time.Duration { return c.now }

// Ticks returns the number of ticks advanced.
func (c *Clock) Ticks() uint64 { return c.ticks }

// Countdown is a pending per-entity timed event.
type Countdown struct {
	Entity   Handle
	Tag      Tag
	Deadline time.Duration
	seq      uint64
}

type countdownHeap []Countdown

func (h countdownHeap) Len() int { return len(h) }
func (h countdownHeap) Less(i, j int) bool {
	if h[i].Deadline != h[j].Deadline {
		return h[i].Deadline < h[j].Deadline
	}
	return h[i].seq < h[j].seq
}
func (h countdownHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *countdownHeap) Push(x any)   { *h = append(*h, x.(Countdown)) }
func (h *countdownHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Timers holds per-entity countdowns ordered by deadline, ties broken by
// scheduling order.
type Timers struct {
	queue countdownHeap
	seq   uint64
}

// After schedules tag for entity h at now+d.
func (t *Timers) After(now time.Duration, h Handle, tag Tag, d time.Duration) {
	if h == 0 {
		return
	}
	t.seq++
	heap.Push(&t.queue, Countdown{Entity: h, Tag: tag, Deadline: now + d, seq: t.seq})
}

// Due removes and returns every countdown whose deadline is at or before now.
func (t *Timers) Due(now time.Duration) []Countdown {
	var due []Countdown
	for t.queue.Len() > 0 && t.queue[0].Deadline <= now {
		due = append(due, heap.Pop(&t.queue).(Countdown))
	}
	return due
}

// Pending returns the number of countdowns not yet fired.
func (t *Timers) Pending() int { return t.queue.Len() }

// Reset drops every pending countdown.
func (t *Timers) Reset() {
	t.queue = t.queue[:0]
}

// Alarm is a restartable process-wide repeating timer.
type Alarm struct {
	interval time.Duration
	next     time.Duration
	running  bool
}

// NewAlarm creates a stopped alarm.
func NewAlarm(interval time.Duration) *Alarm {
	return &Alarm{interval: interval}
}

// Start arms the alarm if it is not already running.
func (a *Alarm) Start(now time.Duration) {
	if a.running {
		return
	}
	a.Restart(now)
}

// Restart arms the alarm for a full interval from now.
func (a *Alarm) Restart(now time.Duration) {
	a.running = true
	a.next = now + a.interval
}

// Stop disarms the alarm.
func (a *Alarm) Stop() { a.running = false }

// Running reports whether the alarm is armed.
func (a *Alarm) Running() bool { return a.running }

// Interval returns the current period.
func (a *Alarm) Interval() time.Duration { return a.interval }

// SetInterval changes the period used from the next firing on.
func (a *Alarm) SetInterval(d time.Duration) { a.interval = d }

// Due reports whether the alarm fired by now and, if so, re-arms it one
// interval after now.
func (a *Alarm) Due(now time.Duration) bool {
	if !a.running || now < a.next {
		return false
	}
	a.next = now + a.interval
	return true
}

// Transition is the single pending deferred state change.
type Transition[T any] struct {
	target   T
	deadline time.Duration
	pending  bool
}

// Schedule replaces any pending transition with target at now+d.
func (t *Transition[T]) Schedule(now, d time.Duration, target T) {
	t.target = target
	t.deadline = now + d
	t.pending = true
}

// Poll returns the target once its deadline has passed. The transition is
// cleared before returning so the caller may schedule another.
func (t *Transition[T]) Poll(now time.Duration) (T, bool) {
	var zero T
	if !t.pending || now < t.deadline {
		return zero, false
	}
	target := t.target
	t.target = zero
	t.pending = false
	return target, true
}

// Pending returns the scheduled target, if any.
func (t *Transition[T]) Pending() (T, bool) {
	return t.target, t.pending
}

// Cancel drops the pending transition.
func (t *Transition[T]) Cancel() {
	var zero T
	t.target = zero
	t.pending = false
}
