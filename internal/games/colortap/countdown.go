package colortap

import (
	"math"
	"time"

	"github.com/vovakirdan/colortap/internal/config"
)

// Countdown is the timer state shown on the HUD.
type Countdown struct {
	Active    bool    // level uses a countdown at all
	Remaining float64 // seconds
	Running   bool
}

// CountdownTimer is the per-round countdown. Time is kept in whole
// durations so repeated ticks do not drift.
type CountdownTimer struct {
	rules     config.ColorTapConfig
	scheduler Scheduler
	onTick    func()
	onExpire  func()

	task      Task
	duration  time.Duration
	remaining time.Duration
	running   bool
}

// NewCountdownTimer creates a stopped timer. onTick runs after each plain
// decrement; onExpire runs instead when the round runs out, after the timer
// has already been refilled. Either may be nil.
func NewCountdownTimer(rules config.ColorTapConfig, scheduler Scheduler, onTick, onExpire func()) *CountdownTimer {
	return &CountdownTimer{
		rules:     rules,
		scheduler: scheduler,
		onTick:    onTick,
		onExpire:  onExpire,
	}
}

// Restart refills the timer for level and starts ticking.
// Used both when a round starts and when a click buys more time.
func (c *CountdownTimer) Restart(level int) {
	c.duration = seconds(c.rules.RoundDuration(level))
	c.remaining = c.duration
	c.arm()
}

// Pause stops ticking and keeps the remaining time.
func (c *CountdownTimer) Pause() {
	c.disarm()
}

// Resume continues from the frozen remaining time.
func (c *CountdownTimer) Resume() {
	if c.duration == 0 {
		return
	}
	c.arm()
}

// Stop freezes the timer at its current value. Used on terminal phases.
func (c *CountdownTimer) Stop() {
	c.disarm()
}

// Clear stops the timer and zeroes it.
func (c *CountdownTimer) Clear() {
	c.disarm()
	c.duration = 0
	c.remaining = 0
}

// Running reports whether the tick task is armed.
func (c *CountdownTimer) Running() bool {
	return c.running
}

// State returns the HUD view of the timer.
func (c *CountdownTimer) State() Countdown {
	return Countdown{
		Active:    c.duration > 0,
		Remaining: c.remaining.Seconds(),
		Running:   c.running,
	}
}

// arm replaces any pending tick task with a fresh one.
func (c *CountdownTimer) arm() {
	c.disarm()
	c.task = c.scheduler.Schedule(c.rules.TickPeriod(), c.tick)
	c.running = true
}

func (c *CountdownTimer) disarm() {
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
	c.running = false
}

func (c *CountdownTimer) tick() {
	next := c.remaining - c.rules.TickPeriod()
	if next > seconds(c.rules.Timer.Epsilon) {
		c.remaining = next
		if c.onTick != nil {
			c.onTick()
		}
		return
	}

	// Refill before reporting so a surviving round keeps counting.
	c.remaining = c.duration
	if c.onExpire != nil {
		c.onExpire()
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
