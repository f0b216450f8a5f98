// Package player drives the interruption protocol between continuous
// video playback and discrete quiz events: as the playback position
// advances, the controller decides when to pause for a question, records
// answer attempts, and computes the running score and progress.
package player

import (
	"fmt"
	"sort"
	"time"

	"github.com/jfuginay/courseforge-ai/internal/course"
)

// State is the controller's playback state.
type State int

const (
	// Playing means the video is (logically) advancing.
	Playing State = iota

	// PausedForQuiz means playback is held while a question is presented.
	PausedForQuiz

	// Completed means the position reached the course duration. Terminal
	// except for Restart.
	Completed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case PausedForQuiz:
		return "paused-for-quiz"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Question is a timestamped quiz question as the controller sees it.
type Question struct {
	ID          string
	Timestamp   int // seconds into the video
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// Attempt is one recorded answer submission.
type Attempt struct {
	QuestionID string
	Answer     int
	Correct    bool
	Position   int // playback position when answered
}

// Config holds the controller's tunable constants. Both were magic
// numbers in earlier revisions; they are parameters on purpose.
type Config struct {
	// Tolerance is the ± window in seconds around a question's timestamp
	// within which the question is considered due.
	Tolerance int

	// PollInterval is how often Run samples the playback position.
	PollInterval time.Duration
}

// DefaultConfig returns the standard tolerance (2s) and poll interval (1s).
func DefaultConfig() Config {
	return Config{
		Tolerance:    2,
		PollInterval: time.Second,
	}
}

// QuestionsFromCourse flattens a course into the controller's question
// list: each question inherits its segment's start timestamp and gets a
// stable positional ID.
func QuestionsFromCourse(c *course.Course) []Question {
	var out []Question
	for _, seg := range c.Segments {
		ts := seg.StartSeconds()
		for _, q := range seg.Questions {
			out = append(out, Question{
				ID:          fmt.Sprintf("q-%d", len(out)),
				Timestamp:   ts,
				Prompt:      q.Prompt,
				Options:     q.Options,
				Correct:     q.Correct,
				Explanation: q.Explanation,
			})
		}
	}
	sortQuestions(out)
	return out
}

// sortQuestions orders by timestamp, keeping insertion order for ties.
func sortQuestions(qs []Question) {
	sort.SliceStable(qs, func(i, j int) bool {
		return qs[i].Timestamp < qs[j].Timestamp
	})
}
