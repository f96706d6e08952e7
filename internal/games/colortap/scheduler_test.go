package colortap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepSchedulerRepeating(t *testing.T) {
	s := NewStepScheduler()
	runs := 0
	s.Schedule(10*time.Millisecond, func() { runs++ })

	s.Advance(9 * time.Millisecond)
	assert.Equal(t, 0, runs)

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, runs)

	// One large step catches up on every period in between.
	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 6, runs)
	assert.Equal(t, 60*time.Millisecond, s.Now())
}

func TestStepSchedulerAfterRunsOnce(t *testing.T) {
	s := NewStepScheduler()
	runs := 0
	s.After(20*time.Millisecond, func() { runs++ })

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, s.Pending())
}

func TestStepSchedulerCancel(t *testing.T) {
	s := NewStepScheduler()
	runs := 0
	task := s.Schedule(10*time.Millisecond, func() { runs++ })

	s.Advance(30 * time.Millisecond)
	task.Cancel()
	task.Cancel()
	s.Advance(30 * time.Millisecond)

	assert.Equal(t, 3, runs)
	assert.Equal(t, 0, s.Pending())
}

func TestStepSchedulerOrder(t *testing.T) {
	s := NewStepScheduler()
	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestStepSchedulerCancelFromCallback(t *testing.T) {
	s := NewStepScheduler()
	runs := 0
	var other Task
	s.After(5*time.Millisecond, func() { other.Cancel() })
	other = s.After(10*time.Millisecond, func() { runs++ })

	s.Advance(time.Second)
	assert.Equal(t, 0, runs)
}

func TestStepSchedulerRejectsZeroPeriod(t *testing.T) {
	s := NewStepScheduler()
	assert.Panics(t, func() {
		s.Schedule(0, func() {})
	})
}
