package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record lookup by id misses.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an insert would duplicate a unique key,
// e.g. a second progress record for one (course, session) pair.
var ErrConflict = errors.New("record already exists")

// CourseRepo manages course and question records.
type CourseRepo interface {
	// CreateCourse stores a new course, assigning ID and timestamps.
	CreateCourse(ctx context.Context, c *Course) error

	// GetCourse returns the course by id, or ErrNotFound.
	GetCourse(ctx context.Context, id string) (*Course, error)

	// ListCourses returns all courses, newest first.
	ListCourses(ctx context.Context) ([]Course, error)

	// UpdateCourse replaces the stored course, bumping UpdatedAt.
	// Returns ErrNotFound if the id is unknown.
	UpdateCourse(ctx context.Context, c *Course) error

	// CreateQuestions stores the course's questions, assigning IDs and
	// sequential order. Replaces any previously stored set.
	CreateQuestions(ctx context.Context, courseID string, qs []Question) ([]Question, error)

	// GetQuestions returns the course's questions in order. An unknown
	// course yields an empty slice, not an error.
	GetQuestions(ctx context.Context, courseID string) ([]Question, error)
}

// ProgressRepo manages per-session viewing progress.
type ProgressRepo interface {
	// CreateProgress stores a new progress record, assigning an ID.
	// A record for the same (courseID, sessionID) pair already existing
	// is ErrConflict.
	CreateProgress(ctx context.Context, p *UserProgress) error

	// GetProgress returns the record for (courseID, sessionID), or
	// ErrNotFound.
	GetProgress(ctx context.Context, courseID, sessionID string) (*UserProgress, error)

	// UpdateProgress replaces the stored record, bumping LastAccessedAt.
	UpdateProgress(ctx context.Context, p *UserProgress) error

	// AddAttempt appends an attempt to the session's record, marks the
	// question completed, and recomputes the score as
	// round(100 * correctAttempts / courseQuestionCount).
	AddAttempt(ctx context.Context, courseID, sessionID string, att QuestionAttempt) (*UserProgress, error)
}

// EventRepo provides append access to the generation event log.
type EventRepo interface {
	// AppendGeneration records a text-generation API call.
	AppendGeneration(ctx context.Context, ev GenerationEvent) error
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewSessionID returns an anonymous viewing-session identifier,
// e.g. "session_1724831000123_1a2b3c4d".
func NewSessionID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// computeScore returns round(100 * correct / total), or 0 with no questions.
func computeScore(attempts []QuestionAttempt, totalQuestions int) int {
	if totalQuestions == 0 {
		return 0
	}
	correct := 0
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
	}
	return int(float64(correct)/float64(totalQuestions)*100 + 0.5)
}

// markCompleted appends questionID to completed if not already present.
func markCompleted(completed []string, questionID string) []string {
	for _, id := range completed {
		if id == questionID {
			return completed
		}
	}
	return append(completed, questionID)
}
