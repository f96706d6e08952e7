package colortap

import "time"

// Scheduler arms callbacks against a clock the caller controls.
// Callbacks run on the goroutine that drives the clock, never concurrently
// with session commands issued from that same goroutine.
type Scheduler interface {
	// Schedule runs fn every period until the returned task is cancelled.
	Schedule(period time.Duration, fn func()) Task

	// After runs fn once after d unless cancelled first.
	After(d time.Duration, fn func()) Task
}

// Task is a pending scheduled callback.
type Task interface {
	// Cancel stops future runs. Cancelling twice is a no-op.
	Cancel()
}

// StepScheduler is a deterministic Scheduler driven by simulated time.
// The platform advances it once per frame; tests advance it directly.
type StepScheduler struct {
	now   time.Duration
	tasks []*stepTask
}

type stepTask struct {
	due       time.Duration
	period    time.Duration // zero for one-shot tasks
	fn        func()
	cancelled bool
}

// Cancel implements Task.
func (t *stepTask) Cancel() {
	t.cancelled = true
}

// NewStepScheduler creates a scheduler at time zero.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{}
}

// Schedule implements Scheduler. Panics on a non-positive period.
func (s *StepScheduler) Schedule(period time.Duration, fn func()) Task {
	if period <= 0 {
		panic("colortap: schedule period must be positive")
	}
	t := &stepTask{due: s.now + period, period: period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// After implements Scheduler.
func (s *StepScheduler) After(d time.Duration, fn func()) Task {
	t := &stepTask{due: s.now + max(d, 0), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt, running every callback that falls
// due in order of due time. Callbacks may schedule or cancel tasks.
func (s *StepScheduler) Advance(dt time.Duration) {
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.period > 0 {
			next.due += next.period
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	s.now = target
	s.compact()
}

// Now returns the simulated time elapsed since creation.
func (s *StepScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of live tasks.
func (s *StepScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live task due at or before target.
// Ties go to the task scheduled first.
func (s *StepScheduler) nextDue(target time.Duration) *stepTask {
	var best *stepTask
	for _, t := range s.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

func (s *StepScheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
