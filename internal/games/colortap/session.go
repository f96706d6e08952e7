package colortap

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colortap/internal/config"
)

// SessionOptions configures a new Session.
type SessionOptions struct {
	Rules      config.ColorTapConfig
	Seed       int64
	StartLevel int         // first level to play; values below 1 mean level 1
	Scheduler  Scheduler   // nil uses a private StepScheduler that never advances
	Logger     *log.Logger // nil discards
}

// Session is the round-progression state machine. It owns every piece of
// game state; commands apply one complete transition and return the
// resulting snapshot. Commands that are invalid for the current phase are
// no-ops.
//
// A Session is not safe for concurrent use. Drive commands and the
// scheduler from one goroutine.
type Session struct {
	rules     config.ColorTapConfig
	logger    *log.Logger
	scheduler Scheduler

	rounds   RoundGenerator
	decoys   DecoyAssigner
	progress *ProgressTracker
	timer    *CountdownTimer

	level    int
	phase    Phase
	tiles    Tiles
	prompt   Prompt
	decoyID  int
	hasDecoy bool
	round    int
	last     Outcome

	flash     Flash
	flashTask Task

	snapshot  Snapshot
	observers []func(Snapshot)
}

// NewSession creates a session awaiting start, with the first round
// already laid out.
func NewSession(opts SessionOptions) *Session {
	rng := rand.New(rand.NewSource(opts.Seed))

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewStepScheduler()
	}

	s := &Session{
		rules:     opts.Rules,
		logger:    logger,
		scheduler: scheduler,
		rounds:    NewRoundGenerator(opts.Rules, rng),
		decoys:    NewDecoyAssigner(opts.Rules, rng),
		progress:  NewProgressTracker(opts.Rules),
		level:     max(opts.StartLevel, 1),
		phase:     PhaseAwaitingStart,
	}
	s.timer = NewCountdownTimer(opts.Rules, scheduler, s.timerTicked, s.timerExpired)

	s.newRound()
	s.snapshot = s.capture()
	return s
}

// Snapshot returns the state after the last transition.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot
}

// Subscribe registers fn to receive every published snapshot, including
// timer-driven ones.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.observers = append(s.observers, fn)
}

// StartGame begins play. Valid only while awaiting start.
func (s *Session) StartGame() Snapshot {
	if s.phase != PhaseAwaitingStart {
		return s.snapshot
	}

	s.setPhase(PhasePlaying)
	if s.rules.TimerActive(s.level) {
		s.timer.Restart(s.level)
	}
	return s.publish()
}

// ClickTile evaluates a tap on slot id. Valid only while playing; ids
// outside the board are ignored.
func (s *Session) ClickTile(id int) Snapshot {
	if s.phase != PhasePlaying || id < 0 || id >= TileCount {
		return s.snapshot
	}

	kind := OutcomeWrong
	switch {
	case s.hasDecoy && id == s.decoyID:
		kind = OutcomeDecoyHit
	case s.prompt.Matches(s.tiles[id].Color):
		kind = OutcomeCorrect
	}

	out := s.apply(kind)
	s.logger.Debug("tile clicked",
		"tile", id,
		"color", s.tiles[id].Color,
		"prompt", s.prompt.Text(),
		"outcome", kind,
		"score", out.Progress.Score,
	)

	// Any registered click buys a fresh countdown.
	if s.rules.TimerActive(s.level) {
		s.timer.Restart(s.level)
	}

	if !s.finishRound(out.Signal) {
		s.newRound()
	}
	return s.publish()
}

// TogglePause flips between playing and paused. The countdown freezes while
// paused and resumes from the same value.
func (s *Session) TogglePause() Snapshot {
	switch s.phase {
	case PhasePlaying:
		s.timer.Pause()
		s.setPhase(PhasePaused)
	case PhasePaused:
		s.setPhase(PhasePlaying)
		s.timer.Resume()
	default:
		return s.snapshot
	}
	return s.publish()
}

// AdvanceLevel moves to the next level after a completed one. Bars are
// cleared, the score carries over and play resumes immediately.
func (s *Session) AdvanceLevel() Snapshot {
	if s.phase != PhaseLevelComplete {
		return s.snapshot
	}

	s.level++
	s.progress.SoftReset()
	s.last = Outcome{}
	s.clearFlash()
	s.timer.Clear()
	s.newRound()
	s.logger.Debug("level advanced", "level", s.level, "score", s.progress.Progress().Score)

	s.setPhase(PhasePlaying)
	if s.rules.TimerActive(s.level) {
		s.timer.Restart(s.level)
	}
	return s.publish()
}

// ResetGame returns to awaiting start from any phase. With resetLevel the
// game restarts from level 1 with zero score; without it the current level
// is retried and the score kept.
func (s *Session) ResetGame(resetLevel bool) Snapshot {
	if resetLevel {
		s.level = 1
		s.progress.HardReset()
	} else {
		s.progress.SoftReset()
	}

	s.last = Outcome{}
	s.clearFlash()
	s.timer.Clear()
	s.newRound()
	s.setPhase(PhaseAwaitingStart)
	return s.publish()
}

// timerTicked publishes the decremented countdown.
func (s *Session) timerTicked() {
	s.publish()
}

// timerExpired is the countdown's expiry callback. Tiles and prompt stay as
// they are; only the bars, score and flash change.
func (s *Session) timerExpired() {
	if s.phase != PhasePlaying {
		return
	}

	out := s.apply(OutcomeTimerExpired)
	s.logger.Debug("timer expired", "level", s.level, "score", out.Progress.Score)
	s.finishRound(out.Signal)
	s.publish()
}

// apply records the outcome and starts the matching flash.
func (s *Session) apply(kind OutcomeKind) Outcome {
	out := s.progress.Apply(kind)
	s.last = out

	if kind == OutcomeCorrect {
		s.startFlash(FlashSuccess)
	} else {
		s.startFlash(FlashAlert)
	}
	return out
}

// finishRound handles a terminal signal. Returns true if the round ended.
func (s *Session) finishRound(sig Signal) bool {
	switch sig {
	case SignalLevelComplete:
		s.timer.Stop()
		s.setPhase(PhaseLevelComplete)
		return true
	case SignalGameOver:
		s.timer.Stop()
		s.hasDecoy = false
		s.decoyID = 0
		s.setPhase(PhaseGameOver)
		return true
	}
	return false
}

// newRound lays out fresh tiles, a prompt and the decoy for this level.
func (s *Session) newRound() {
	s.tiles, s.prompt = s.rounds.NewRound(s.level)
	s.decoyID, s.hasDecoy = s.decoys.Assign(s.level, s.tiles, s.prompt)
	s.round++
}

func (s *Session) startFlash(f Flash) {
	s.clearFlash()
	s.flash = f
	s.flashTask = s.scheduler.After(s.rules.FlashDuration(), func() {
		s.flashTask = nil
		s.flash = FlashNone
		s.publish()
	})
}

func (s *Session) clearFlash() {
	if s.flashTask != nil {
		s.flashTask.Cancel()
		s.flashTask = nil
	}
	s.flash = FlashNone
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.logger.Debug("phase changed", "from", s.phase, "to", p, "level", s.level)
	s.phase = p
}

// publish captures the state and notifies observers.
func (s *Session) publish() Snapshot {
	s.snapshot = s.capture()
	for _, fn := range s.observers {
		fn(s.snapshot)
	}
	return s.snapshot
}

func (s *Session) capture() Snapshot {
	return Snapshot{
		Level:       s.level,
		Phase:       s.phase,
		Tiles:       s.tiles,
		Prompt:      s.prompt,
		Progress:    s.progress.Progress(),
		Countdown:   s.timer.State(),
		Flash:       s.flash,
		Round:       s.round,
		LastOutcome: s.last,
		decoyID:     s.decoyID,
		hasDecoy:    s.hasDecoy,
	}
}
