package runner

// Verdict grades a finished run against the best score it started with.
type Verdict int

const (
	VerdictNone       Verdict = iota // Run still in progress
	VerdictNewBest                   // Beat the previous best
	VerdictSoClose                   // At least 80% of the previous best
	VerdictGoodEffort                // At least 50% of the previous best
	VerdictKeepTrying                // Anything lower
)

// Message returns the line shown on the game over screen.
func (v Verdict) Message() string {
	switch v {
	case VerdictNewBest:
		return "NEW HIGH SCORE! You are amazing!"
	case VerdictSoClose:
		return "So close! Just a bit more to beat the high score!"
	case VerdictGoodEffort:
		return "Good effort! Keep practicing!"
	case VerdictKeepTrying:
		return "Don't give up! You can do better!"
	default:
		return ""
	}
}

// BestSink receives new best scores. Submit must not block.
type BestSink interface {
	Submit(score int)
}

// ScoreTracker credits passed hazards and maintains the best score.
type ScoreTracker struct {
	current   int
	best      int
	startBest int // Best score when the current run began
	verdict   Verdict

	sink     BestSink
	onChange func(score int) // Score changed; pacing may need recomputing
	onCredit func(h *Hazard) // Cosmetic hook, no gameplay effect
}

// NewScoreTracker creates a tracker seeded with a previously stored best.
// A nil sink keeps the best score in memory only.
func NewScoreTracker(best int, sink BestSink) *ScoreTracker {
	if best < 0 {
		best = 0
	}
	return &ScoreTracker{
		best:      best,
		startBest: best,
		sink:      sink,
	}
}

// ResetRun zeroes the current score for a new run. Best is kept.
func (t *ScoreTracker) ResetRun() {
	t.current = 0
	t.startBest = t.best
	t.verdict = VerdictNone
}

// OnHazardPassed credits a hazard the first time it is passed.
// It reports whether the hazard was credited.
func (t *ScoreTracker) OnHazardPassed(h *Hazard) bool {
	if h == nil || h.Passed {
		return false
	}
	h.Passed = true
	t.current++

	if t.onChange != nil {
		t.onChange(t.current)
	}
	if t.onCredit != nil {
		t.onCredit(h)
	}
	return true
}

// OnGameOver finalizes the run. A new best is handed to the sink without
// waiting for it to be stored. It reports whether the best score improved.
func (t *ScoreTracker) OnGameOver() bool {
	t.verdict = grade(t.current, t.startBest)
	if t.current <= t.best {
		return false
	}
	t.best = t.current
	if t.sink != nil {
		t.sink.Submit(t.best)
	}
	return true
}

// grade compares a final score with the best the run started from.
func grade(score, prevBest int) Verdict {
	switch {
	case score > prevBest:
		return VerdictNewBest
	case prevBest == 0:
		return VerdictKeepTrying
	case float64(score) >= float64(prevBest)*0.8:
		return VerdictSoClose
	case float64(score) >= float64(prevBest)*0.5:
		return VerdictGoodEffort
	default:
		return VerdictKeepTrying
	}
}

// Current returns the score of the run in progress.
func (t *ScoreTracker) Current() int {
	return t.current
}

// Best returns the best score known to this process.
func (t *ScoreTracker) Best() int {
	return t.best
}

// Gap returns how far the current run is behind the best score.
// It is zero once the best is reached or when there is no best yet.
func (t *ScoreTracker) Gap() int {
	if t.best == 0 || t.current >= t.best {
		return 0
	}
	return t.best - t.current
}

// Verdict returns the grade of the last finished run.
func (t *ScoreTracker) Verdict() Verdict {
	return t.verdict
}
