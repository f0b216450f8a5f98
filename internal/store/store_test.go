package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// backends runs a subtest against every storage backend.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryStore())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		fn(t, s)
	})
}

func testCourse() *Course {
	return &Course{
		Title:       "Test Course",
		Description: "A course for testing",
		YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoID:     "dQw4w9WgXcQ",
		Duration:    600,
		Metadata: CourseMetadata{
			Language:   "en",
			Topics:     []string{"testing", "storage"},
			Difficulty: "beginner",
		},
	}
}

func testQuestions() []Question {
	return []Question{
		{Type: "multiple_choice", Timestamp: 45, Prompt: "first?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0, Explanation: "a"},
		{Type: "multiple_choice", Timestamp: 120, Prompt: "second?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Explanation: "b"},
		{Type: "multiple_choice", Timestamp: 300, Prompt: "third?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2, Explanation: "c"},
		{Type: "multiple_choice", Timestamp: 480, Prompt: "fourth?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3, Explanation: "d"},
	}
}

func TestCourseCRUD(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := testCourse()
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID == "" {
			t.Fatal("create did not assign an ID")
		}
		if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
			t.Error("create did not assign timestamps")
		}

		got, err := s.GetCourse(ctx, c.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != c.Title || got.VideoID != c.VideoID || got.Duration != c.Duration {
			t.Errorf("round trip mismatch: %+v", got)
		}
		if len(got.Metadata.Topics) != 2 || got.Metadata.Topics[0] != "testing" {
			t.Errorf("metadata round trip mismatch: %+v", got.Metadata)
		}

		got.Title = "Renamed"
		if err := s.UpdateCourse(ctx, got); err != nil {
			t.Fatalf("update: %v", err)
		}
		again, err := s.GetCourse(ctx, c.ID)
		if err != nil {
			t.Fatalf("get after update: %v", err)
		}
		if again.Title != "Renamed" {
			t.Errorf("update lost: %q", again.Title)
		}

		if _, err := s.GetCourse(ctx, "missing"); err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if err := s.UpdateCourse(ctx, &Course{ID: "missing", Title: "x"}); err != ErrNotFound {
			t.Errorf("expected ErrNotFound on update, got %v", err)
		}
	})
}

func TestListCourses(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		list, err := s.ListCourses(ctx)
		if err != nil {
			t.Fatalf("list empty store: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("expected empty list, got %d", len(list))
		}

		for i := 0; i < 3; i++ {
			c := testCourse()
			c.Title = fmt.Sprintf("Course %d", i)
			if err := s.CreateCourse(ctx, c); err != nil {
				t.Fatalf("create: %v", err)
			}
		}

		list, err = s.ListCourses(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 3 {
			t.Errorf("expected 3 courses, got %d", len(list))
		}
	})
}

func TestQuestions(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := testCourse()
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatalf("create course: %v", err)
		}

		stored, err := s.CreateQuestions(ctx, c.ID, testQuestions())
		if err != nil {
			t.Fatalf("create questions: %v", err)
		}
		if len(stored) != 4 {
			t.Fatalf("expected 4 stored questions, got %d", len(stored))
		}
		for i, q := range stored {
			if q.ID == "" {
				t.Errorf("question %d has no ID", i)
			}
			if q.CourseID != c.ID {
				t.Errorf("question %d course = %q", i, q.CourseID)
			}
			if q.Order != i {
				t.Errorf("question %d order = %d", i, q.Order)
			}
		}

		got, err := s.GetQuestions(ctx, c.ID)
		if err != nil {
			t.Fatalf("get questions: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 questions, got %d", len(got))
		}
		if got[0].Timestamp != 45 || got[3].Timestamp != 480 {
			t.Error("questions out of order")
		}
		if len(got[0].Options) != 4 || got[0].Options[3] != "d" {
			t.Errorf("options round trip mismatch: %v", got[0].Options)
		}

		// Unknown course gives an empty set, not an error.
		none, err := s.GetQuestions(ctx, "missing")
		if err != nil {
			t.Fatalf("get questions for unknown course: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("expected no questions, got %d", len(none))
		}
	})
}

func TestProgressLifecycle(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := testCourse()
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatalf("create course: %v", err)
		}
		if _, err := s.CreateQuestions(ctx, c.ID, testQuestions()); err != nil {
			t.Fatalf("create questions: %v", err)
		}

		session := NewSessionID()
		if _, err := s.GetProgress(ctx, c.ID, session); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound before create, got %v", err)
		}

		p := &UserProgress{
			CourseID:           c.ID,
			SessionID:          session,
			CompletedQuestions: []string{},
			Attempts:           []QuestionAttempt{},
		}
		if err := s.CreateProgress(ctx, p); err != nil {
			t.Fatalf("create progress: %v", err)
		}
		if p.ID == "" {
			t.Fatal("create did not assign an ID")
		}

		p.CurrentTimestamp = 90
		if err := s.UpdateProgress(ctx, p); err != nil {
			t.Fatalf("update progress: %v", err)
		}
		got, err := s.GetProgress(ctx, c.ID, session)
		if err != nil {
			t.Fatalf("get progress: %v", err)
		}
		if got.CurrentTimestamp != 90 {
			t.Errorf("current timestamp = %d, want 90", got.CurrentTimestamp)
		}
	})
}

func TestCreateProgress_DuplicateSession(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		session := NewSessionID()

		first := &UserProgress{CourseID: "c1", SessionID: session}
		if err := s.CreateProgress(ctx, first); err != nil {
			t.Fatalf("create progress: %v", err)
		}

		dup := &UserProgress{CourseID: "c1", SessionID: session}
		if err := s.CreateProgress(ctx, dup); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}

		// The first record is untouched.
		got, err := s.GetProgress(ctx, "c1", session)
		if err != nil {
			t.Fatalf("get progress: %v", err)
		}
		if got.ID != first.ID {
			t.Errorf("surviving record = %q, want %q", got.ID, first.ID)
		}
	})
}

func TestAddAttempt_ScoresAgainstAllQuestions(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := testCourse()
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatalf("create course: %v", err)
		}
		qs, err := s.CreateQuestions(ctx, c.ID, testQuestions())
		if err != nil {
			t.Fatalf("create questions: %v", err)
		}

		session := NewSessionID()
		p := &UserProgress{CourseID: c.ID, SessionID: session}
		if err := s.CreateProgress(ctx, p); err != nil {
			t.Fatalf("create progress: %v", err)
		}

		// 1 of 4 correct → 25.
		got, err := s.AddAttempt(ctx, c.ID, session, QuestionAttempt{
			QuestionID: qs[0].ID, Answer: 0, Correct: true, TimeSpent: 10,
		})
		if err != nil {
			t.Fatalf("add attempt: %v", err)
		}
		if got.Score != 25 {
			t.Errorf("score after 1/4 = %d, want 25", got.Score)
		}
		if len(got.CompletedQuestions) != 1 || got.CompletedQuestions[0] != qs[0].ID {
			t.Errorf("completed = %v", got.CompletedQuestions)
		}

		// A wrong attempt completes the question without raising the score.
		got, err = s.AddAttempt(ctx, c.ID, session, QuestionAttempt{
			QuestionID: qs[1].ID, Answer: 3, Correct: false,
		})
		if err != nil {
			t.Fatalf("add attempt: %v", err)
		}
		if got.Score != 25 {
			t.Errorf("score after wrong answer = %d, want 25", got.Score)
		}
		if len(got.CompletedQuestions) != 2 {
			t.Errorf("completed count = %d, want 2", len(got.CompletedQuestions))
		}
		if len(got.Attempts) != 2 {
			t.Errorf("attempt count = %d, want 2", len(got.Attempts))
		}

		// Repeating a question does not duplicate the completion entry.
		got, err = s.AddAttempt(ctx, c.ID, session, QuestionAttempt{
			QuestionID: qs[1].ID, Answer: 1, Correct: true,
		})
		if err != nil {
			t.Fatalf("add attempt: %v", err)
		}
		if len(got.CompletedQuestions) != 2 {
			t.Errorf("completed count after repeat = %d, want 2", len(got.CompletedQuestions))
		}
		if got.Score != 50 {
			t.Errorf("score after 2 correct of 4 = %d, want 50", got.Score)
		}

		// Unknown session.
		if _, err := s.AddAttempt(ctx, c.ID, "session_0_deadbeef", QuestionAttempt{}); err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAppendGeneration(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		err := s.AppendGeneration(ctx, GenerationEvent{
			Provider:  "mock",
			Model:     "mock",
			Purpose:   "course-gen",
			LatencyMs: 12,
			Success:   true,
		})
		if err != nil {
			t.Fatalf("append generation: %v", err)
		}
	})
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	if !strings.HasPrefix(id, "session_") {
		t.Errorf("session ID %q missing prefix", id)
	}
	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("session ID %q has %d parts, want 3", id, len(parts))
	}
	if len(parts[2]) != 8 {
		t.Errorf("session ID suffix %q should be 8 chars", parts[2])
	}
	if NewSessionID() == id {
		t.Error("session IDs should be unique")
	}
}

func TestComputeScore(t *testing.T) {
	atts := []QuestionAttempt{
		{Correct: true},
		{Correct: false},
		{Correct: true},
	}
	cases := []struct {
		total int
		want  int
	}{
		{3, 67},
		{4, 50},
		{0, 0},
	}
	for _, tc := range cases {
		if got := computeScore(atts, tc.total); got != tc.want {
			t.Errorf("computeScore(_, %d) = %d, want %d", tc.total, got, tc.want)
		}
	}
}
