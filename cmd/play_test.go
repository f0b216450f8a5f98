package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jfuginay/courseforge-ai/internal/store"
)

// seedPlayableCourse stores a short course with two questions at 2s and 5s.
func seedPlayableCourse(t *testing.T) (*store.MemoryStore, string) {
	t.Helper()
	st := store.NewMemoryStore()
	ctx := context.Background()

	c := &store.Course{Title: "Play Test", Duration: 8}
	if err := st.CreateCourse(ctx, c); err != nil {
		t.Fatalf("create course: %v", err)
	}
	_, err := st.CreateQuestions(ctx, c.ID, []store.Question{
		{Type: "multiple_choice", Timestamp: 2, Prompt: "first?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1, Explanation: "b is right"},
		{Type: "multiple_choice", Timestamp: 5, Prompt: "second?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3, Explanation: "d is right"},
	})
	if err != nil {
		t.Fatalf("create questions: %v", err)
	}
	return st, c.ID
}

func TestRunPlay_AutoAnswersEverything(t *testing.T) {
	st, id := seedPlayableCourse(t)
	var out bytes.Buffer

	err := runPlay(context.Background(), st, id, playOptions{speed: 1000, auto: true}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "first?") || !strings.Contains(text, "second?") {
		t.Errorf("questions not presented:\n%s", text)
	}
	if !strings.Contains(text, "Score: 100%") {
		t.Errorf("expected a perfect score:\n%s", text)
	}
}

func TestRunPlay_ReadsAnswersFromInput(t *testing.T) {
	st, id := seedPlayableCourse(t)
	var out bytes.Buffer

	// Wrong answer for the first question, right for the second.
	in := strings.NewReader("1\n4\n")
	err := runPlay(context.Background(), st, id, playOptions{speed: 1000}, in, &out)
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Not quite. b is right") {
		t.Errorf("wrong answer not explained:\n%s", text)
	}
	if !strings.Contains(text, "Correct!") {
		t.Errorf("right answer not acknowledged:\n%s", text)
	}
	if !strings.Contains(text, "Score: 50%") {
		t.Errorf("expected score 50:\n%s", text)
	}
}

func TestRunPlay_UnknownCourse(t *testing.T) {
	var out bytes.Buffer
	err := runPlay(context.Background(), store.NewMemoryStore(), "missing", playOptions{auto: true}, strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("expected an error for an unknown course")
	}
}
