package colortap

import "github.com/vovakirdan/colortap/internal/config"

// OutcomeKind classifies how a round ended.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeCorrect
	OutcomeWrong
	OutcomeDecoyHit
	OutcomeTimerExpired
)

// String returns a short name for logs.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeDecoyHit:
		return "decoy_hit"
	case OutcomeTimerExpired:
		return "timer_expired"
	default:
		return "unknown"
	}
}

// Signal is the terminal decision produced by an outcome.
type Signal int

const (
	SignalNone Signal = iota
	SignalLevelComplete
	SignalGameOver
)

// Progress is the scoring state shown on the HUD.
type Progress struct {
	Score     int
	Correct   int
	Incorrect int
	Warning   bool // incorrect bar is one step from game over
}

// Outcome describes one applied result and the progress it produced.
type Outcome struct {
	Kind       OutcomeKind
	ScoreDelta int
	Forgiven   bool // correct tap cleared the warning
	Progress   Progress
	Signal     Signal
}

// ProgressTracker maintains the correct/incorrect bars and the score.
type ProgressTracker struct {
	rules config.ColorTapConfig
	state Progress
}

// NewProgressTracker creates a tracker with empty bars and zero score.
func NewProgressTracker(rules config.ColorTapConfig) *ProgressTracker {
	return &ProgressTracker{rules: rules}
}

// Progress returns the current state.
func (p *ProgressTracker) Progress() Progress {
	return p.state
}

// Apply records an outcome. Exactly one bar moves per outcome, so at most one
// terminal signal can fire.
func (p *ProgressTracker) Apply(kind OutcomeKind) Outcome {
	out := Outcome{Kind: kind}
	limit := p.rules.Progress.Max
	scoring := p.rules.Scoring

	switch kind {
	case OutcomeCorrect:
		out.ScoreDelta = scoring.Correct
		if p.state.Incorrect == p.rules.Progress.ForgiveAt {
			p.state.Incorrect = p.rules.Progress.ForgiveTo
			out.Forgiven = true
		}
		p.state.Correct = min(p.state.Correct+1, limit)
	case OutcomeWrong:
		out.ScoreDelta = scoring.Wrong
		p.state.Incorrect = min(p.state.Incorrect+1, limit)
	case OutcomeDecoyHit:
		out.ScoreDelta = scoring.DecoyHit
		p.state.Incorrect = min(p.state.Incorrect+scoring.DecoyProgress, limit)
	case OutcomeTimerExpired:
		out.ScoreDelta = scoring.TimerExpired
		p.state.Incorrect = min(p.state.Incorrect+1, limit)
	default:
		out.Progress = p.state
		return out
	}

	p.state.Score += out.ScoreDelta
	p.state.Warning = p.state.Incorrect == p.rules.Progress.ForgiveAt

	switch {
	case p.state.Correct >= limit:
		out.Signal = SignalLevelComplete
	case p.state.Incorrect >= limit:
		out.Signal = SignalGameOver
	}

	out.Progress = p.state
	return out
}

// SoftReset clears both bars and the warning, keeping the score.
func (p *ProgressTracker) SoftReset() {
	p.state = Progress{Score: p.state.Score}
}

// HardReset clears everything including the score.
func (p *ProgressTracker) HardReset() {
	p.state = Progress{}
}
