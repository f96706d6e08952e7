package colortap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/colortap/internal/config"
)

func newTestTimer(t *testing.T) (*CountdownTimer, *StepScheduler, *int) {
	t.Helper()
	s := NewStepScheduler()
	expired := 0
	timer := NewCountdownTimer(config.DefaultColorTapConfig(), s, nil, func() { expired++ })
	return timer, s, &expired
}

func TestCountdownExpiresOnSchedule(t *testing.T) {
	tests := []struct {
		name  string
		level int
		ticks int
	}{
		{"plain duration", 3, 999},
		{"decoy duration", 4, 949},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer, s, expired := newTestTimer(t)
			timer.Restart(tt.level)

			s.Advance(time.Duration(tt.ticks-1) * 10 * time.Millisecond)
			require.Equal(t, 0, *expired)
			assert.InDelta(t, 0.02, timer.State().Remaining, 1e-9)

			s.Advance(10 * time.Millisecond)
			assert.Equal(t, 1, *expired)
		})
	}
}

func TestCountdownRefillsAfterExpiry(t *testing.T) {
	timer, s, expired := newTestTimer(t)
	timer.Restart(3)

	s.Advance(9990 * time.Millisecond)
	require.Equal(t, 1, *expired)
	assert.InDelta(t, 10.0, timer.State().Remaining, 1e-9)
	assert.True(t, timer.Running())
}

func TestCountdownPauseResume(t *testing.T) {
	timer, s, _ := newTestTimer(t)
	timer.Restart(3)

	s.Advance(2 * time.Second)
	timer.Pause()
	frozen := timer.State().Remaining
	assert.InDelta(t, 8.0, frozen, 1e-9)
	assert.Equal(t, 0, s.Pending())

	s.Advance(5 * time.Second)
	assert.Equal(t, frozen, timer.State().Remaining)

	timer.Resume()
	s.Advance(time.Second)
	assert.InDelta(t, 7.0, timer.State().Remaining, 1e-9)
}

func TestCountdownRestartNeverStacks(t *testing.T) {
	timer, s, _ := newTestTimer(t)
	for range 5 {
		timer.Restart(3)
	}
	assert.Equal(t, 1, s.Pending())

	s.Advance(time.Second)
	assert.InDelta(t, 9.0, timer.State().Remaining, 1e-9)
}

func TestCountdownClear(t *testing.T) {
	timer, s, _ := newTestTimer(t)
	timer.Restart(3)
	timer.Clear()

	assert.Equal(t, Countdown{}, timer.State())
	assert.Equal(t, 0, s.Pending())

	// Resume after clear has nothing to resume.
	timer.Resume()
	assert.False(t, timer.Running())
}
