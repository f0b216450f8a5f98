package player

import (
	"errors"
	"math"
	"sync"
)

// ErrNoActiveQuestion is returned by Submit when no question is being
// presented.
var ErrNoActiveQuestion = errors.New("no active question")

// Controller is the timeline playback controller for one viewing
// session. All state transitions go through one mutex: the polling tick
// and user answer submissions never interleave their mutations.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	questions []Question
	duration  int // seconds

	state    State
	position int
	current  *Question // presented question while PausedForQuiz

	answered map[string]bool
	attempts []Attempt
}

// NewController creates a controller over the given questions and total
// duration in seconds. Questions are sorted by timestamp so the
// earliest due question always wins.
func NewController(questions []Question, durationSeconds int, cfg Config) *Controller {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	sortQuestions(qs)

	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}

	return &Controller{
		cfg:       cfg,
		questions: qs,
		duration:  durationSeconds,
		state:     Playing,
		answered:  make(map[string]bool),
	}
}

// Advance feeds the controller a new playback position sample. When a
// question becomes due it returns that question and transitions to
// PausedForQuiz; the caller is responsible for actually pausing the
// underlying playback. Returns nil when nothing is due.
//
// A question is due when the position falls within ±Tolerance of its
// timestamp and it has not been answered this session. Answered
// questions never re-arm, even if playback rewinds through their
// timestamp; unanswered ones may trigger again after a rewind.
func (c *Controller) Advance(position int) *Question {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Playing {
		return nil
	}

	c.position = position

	// Earliest unanswered question inside the tolerance window wins.
	for i := range c.questions {
		q := &c.questions[i]
		if c.answered[q.ID] {
			continue
		}
		if abs(q.Timestamp-position) < c.cfg.Tolerance {
			qc := *q
			c.current = &qc
			c.state = PausedForQuiz
			return &qc
		}
	}

	if c.duration > 0 && position >= c.duration {
		c.state = Completed
	}
	return nil
}

// Submit records an answer for the presented question. Correctness is
// an exact match against the stored correct index; no partial credit.
// Marks the question answered, resumes Playing, and returns the
// recorded attempt.
func (c *Controller) Submit(answer int) (Attempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != PausedForQuiz || c.current == nil {
		return Attempt{}, ErrNoActiveQuestion
	}

	att := Attempt{
		QuestionID: c.current.ID,
		Answer:     answer,
		Correct:    answer == c.current.Correct,
		Position:   c.position,
	}
	c.attempts = append(c.attempts, att)
	c.answered[c.current.ID] = true
	c.current = nil
	c.state = Playing

	return att, nil
}

// Restart resets the session from any state: position 0, no attempts,
// nothing answered, Playing.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = 0
	c.attempts = nil
	c.answered = make(map[string]bool)
	c.current = nil
	c.state = Playing
}

// Score returns round(100 * correctAttempts / totalQuestions).
// Zero questions score zero.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.questions) == 0 {
		return 0
	}
	correct := 0
	for _, a := range c.attempts {
		if a.Correct {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(c.questions))))
}

// Progress returns round(100 * position / duration), clamped to [0,100].
func (c *Controller) Progress() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.duration <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(c.position) / float64(c.duration)))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Position returns the last observed playback position in seconds.
func (c *Controller) Position() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// CurrentQuestion returns the presented question, or nil when playing.
func (c *Controller) CurrentQuestion() *Question {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	qc := *c.current
	return &qc
}

// Attempts returns a copy of the recorded attempts in order.
func (c *Controller) Attempts() []Attempt {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Attempt, len(c.attempts))
	copy(out, c.attempts)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
