package course

import (
	"strings"
	"testing"
)

func validCourse() *Course {
	return &Course{
		Title:       "Test Course",
		Description: "A course for testing",
		Duration:    "10 minutes",
		Segments: []Segment{
			{
				Title:     "Introduction",
				Timestamp: "00:00",
				Concepts:  []string{"basics"},
				Questions: []Question{
					{
						Type:        TypeMultipleChoice,
						Prompt:      "What is covered?",
						Options:     []string{"A", "B", "C", "D"},
						Correct:     1,
						Explanation: "B is covered.",
					},
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validCourse().Validate(); err != nil {
		t.Fatalf("valid course rejected: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Course)
		wantField string
	}{
		{"missing title", func(c *Course) { c.Title = "" }, "title"},
		{"missing description", func(c *Course) { c.Description = "" }, "description"},
		{"missing duration", func(c *Course) { c.Duration = "" }, "duration"},
		{"no segments", func(c *Course) { c.Segments = nil }, "segments"},
		{"segment missing title", func(c *Course) { c.Segments[0].Title = "" }, "segments[0].title"},
		{"segment missing timestamp", func(c *Course) { c.Segments[0].Timestamp = "" }, "segments[0].timestamp"},
		{"no concepts", func(c *Course) { c.Segments[0].Concepts = nil }, "segments[0].concepts"},
		{"no questions", func(c *Course) { c.Segments[0].Questions = nil }, "segments[0].questions"},
		{"missing prompt", func(c *Course) { c.Segments[0].Questions[0].Prompt = "" }, "segments[0].questions[0].question"},
		{"three options", func(c *Course) { c.Segments[0].Questions[0].Options = []string{"A", "B", "C"} }, "segments[0].questions[0].options"},
		{"five options", func(c *Course) { c.Segments[0].Questions[0].Options = append(c.Segments[0].Questions[0].Options, "E") }, "segments[0].questions[0].options"},
		{"correct too high", func(c *Course) { c.Segments[0].Questions[0].Correct = 4 }, "segments[0].questions[0].correct"},
		{"correct negative", func(c *Course) { c.Segments[0].Questions[0].Correct = -1 }, "segments[0].questions[0].correct"},
		{"missing explanation", func(c *Course) { c.Segments[0].Questions[0].Explanation = "" }, "segments[0].questions[0].explanation"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCourse()
			tc.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("expected field %q, got %q", tc.wantField, verr.Field)
			}
			if !strings.Contains(err.Error(), tc.wantField) {
				t.Errorf("error message %q does not name the field", err.Error())
			}
		})
	}
}

func TestQuestionCount(t *testing.T) {
	c := validCourse()
	c.Segments = append(c.Segments, Segment{
		Title:     "Second",
		Timestamp: "05:00",
		Concepts:  []string{"more"},
		Questions: []Question{
			{Prompt: "q1", Options: []string{"A", "B", "C", "D"}, Correct: 0, Explanation: "x"},
			{Prompt: "q2", Options: []string{"A", "B", "C", "D"}, Correct: 0, Explanation: "x"},
		},
	})
	if got := c.QuestionCount(); got != 3 {
		t.Errorf("QuestionCount = %d, want 3", got)
	}
}

func TestSegmentStartSeconds(t *testing.T) {
	s := Segment{Timestamp: "05:30"}
	if got := s.StartSeconds(); got != 330 {
		t.Errorf("StartSeconds = %d, want 330", got)
	}
	s.Timestamp = "bogus"
	if got := s.StartSeconds(); got != 0 {
		t.Errorf("StartSeconds for bogus timestamp = %d, want 0", got)
	}
}
